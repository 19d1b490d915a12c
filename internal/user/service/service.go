package service

import (
	"context"

	"github.com/nvoskov/userhub/internal/common/logger"
	"github.com/nvoskov/userhub/internal/observability/metrics"
	"github.com/nvoskov/userhub/internal/user/domain"
	"github.com/nvoskov/userhub/internal/user/repository"
)

// UserService creates users and writes them through its repository. It is
// the sole writer of the repository for its lifetime.
type UserService struct {
	repo *repository.MemRepository
	log  *logger.Logger
}

func NewUserService(repo *repository.MemRepository, log *logger.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// CreateUser builds a user with the next generated identifier, stores it,
// and returns the created value. It cannot fail.
func (s *UserService) CreateUser(ctx context.Context, name, email string) domain.User {
	user := domain.User{
		ID:    s.nextID(),
		Name:  name,
		Email: email,
	}

	s.repo.Add(user)
	metrics.UsersCreatedTotal.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"user_id": user.ID,
		"action":  "user_created",
	}).Infof("created user %q", user.Name)

	return user
}

// nextID derives the identifier from the current store size. Entries added
// outside CreateUser, or any removal, can make size+1 collide with an
// occupied identifier, and Add then overwrites silently.
func (s *UserService) nextID() domain.ID {
	return domain.ID(s.repo.Len() + 1)
}
