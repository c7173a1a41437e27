package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	"github.com/skillup-platform/skillup-backend/internal/db"
	apihttp "github.com/skillup-platform/skillup-backend/internal/http"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *apihttp.Server
	Router   *gin.Engine
	Cfg      Config
	Repos    *repos.Set
	Services Services
	Mediator *mediator.Mediator

	ctx    context.Context
	cancel context.CancelFunc
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg := LoadConfig()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	reposet := repos.NewSet(theDB, log)

	serviceset, err := wireServices(theDB, log, cfg, reposet)
	if err != nil {
		log.Sync()
		return nil, err
	}
	if err := registerPipelines(serviceset.JobRegistry, theDB, log, reposet, serviceset); err != nil {
		log.Sync()
		return nil, err
	}

	m := wireMediator(theDB, log, cfg, reposet, serviceset)
	srv := wireServer(log, cfg, m, serviceset)

	return &App{
		Log:      log,
		DB:       theDB,
		Server:   srv,
		Router:   srv.Engine,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Mediator: m,
	}, nil
}

// Start launches the background job worker. The worker and the HTTP server
// share one lifetime: cancelling parent, or calling Close, stops both.
func (a *App) Start(parent context.Context) {
	if a == nil || a.cancel != nil {
		return
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	a.ctx = ctx
	a.cancel = cancel

	if a.Services.JobWorker != nil {
		a.Services.JobWorker.Start(ctx)
	}
}

// Run blocks serving HTTP until the app lifetime ends, then drains
// in-flight requests.
func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Server.Run(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
