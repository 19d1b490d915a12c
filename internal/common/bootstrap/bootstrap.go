package bootstrap

import (
	"fmt"
	"os"

	"github.com/nvoskov/userhub/internal/common/clock"
	"github.com/nvoskov/userhub/internal/common/config"
	"github.com/nvoskov/userhub/internal/common/logger"
	"github.com/nvoskov/userhub/internal/user/repository"
	"github.com/nvoskov/userhub/internal/user/service"
)

// App wires the logger, config, store, and user service for an executable
// entry point. Repo is exposed for reads; writes go through Users only.
type App struct {
	Log    *logger.Logger
	Config config.Config
	Repo   *repository.MemRepository
	Users  *service.UserService
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogDir, cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	repo := repository.NewMemRepository(
		clock.NewRealClock(),
		clock.NewRealSleeper(),
		cfg.AsyncLookupDelay,
	)

	return &App{
		Log:    log,
		Config: cfg,
		Repo:   repo,
		Users:  service.NewUserService(repo, log),
	}, nil
}

func Run(run func(app *App) error) {
	app, err := NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	if err := run(app); err != nil {
		app.Log.Fatalf("run failed: %v", err)
	}
}
