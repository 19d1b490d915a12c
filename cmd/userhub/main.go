package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nvoskov/userhub/internal/common/bootstrap"
	"github.com/nvoskov/userhub/internal/common/constants"
	"github.com/nvoskov/userhub/internal/common/logger"
)

func main() {
	bootstrap.Run(run)
}

func run(app *bootstrap.App) error {
	ctx := context.WithValue(context.Background(), constants.TraceIDKey, uuid.NewString())

	ann := app.Users.CreateUser(ctx, "Ann", "ann@example.com")
	bob := app.Users.CreateUser(ctx, "Bob", "bob@example.com")

	if user, ok := app.Repo.GetByID(ann.ID); ok {
		app.Log.WithFields(ctx, logger.Fields{
			"user_id": user.ID,
		}).Infof("found %s <%s>", user.Name, user.Email)
	}

	if _, ok := app.Repo.GetByID(99); !ok {
		app.Log.WithFields(ctx, logger.Fields{
			"user_id": 99,
		}).Info("lookup missed")
	}

	lookupCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	user, ok, err := app.Repo.GetByIDAsync(lookupCtx, bob.ID)
	if err != nil {
		return err
	}
	if ok {
		app.Log.WithFields(ctx, logger.Fields{
			"user_id": user.ID,
		}).Infof("async lookup returned %s <%s>", user.Name, user.Email)
	}

	return nil
}
