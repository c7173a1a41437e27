package app

import (
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	aift "github.com/skillup-platform/skillup-backend/internal/features/ai"
	assessft "github.com/skillup-platform/skillup-backend/internal/features/assessments"
	authft "github.com/skillup-platform/skillup-backend/internal/features/auth"
	contentft "github.com/skillup-platform/skillup-backend/internal/features/content"
	dashft "github.com/skillup-platform/skillup-backend/internal/features/dashboard"
	filesft "github.com/skillup-platform/skillup-backend/internal/features/files"
	lpft "github.com/skillup-platform/skillup-backend/internal/features/learningpaths"
	notifft "github.com/skillup-platform/skillup-backend/internal/features/notifications"
	progressft "github.com/skillup-platform/skillup-backend/internal/features/progress"
	resourceft "github.com/skillup-platform/skillup-backend/internal/features/resources"
	usersft "github.com/skillup-platform/skillup-backend/internal/features/users"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

// wireMediator registers every command and query handler. Duplicate
// registration panics, so this runs once at boot.
func wireMediator(db *gorm.DB, log *logger.Logger, cfg Config, rs *repos.Set, svcs Services) *mediator.Mediator {
	log.Info("Wiring mediator handlers...")
	m := mediator.New()

	authft.Register(m, authft.Deps{
		DB:         db,
		Log:        log,
		Repos:      rs,
		Tokens:     svcs.Tokens,
		Email:      svcs.Email,
		AppBaseURL: cfg.AppBaseURL,
		RefreshTTL: cfg.RefreshTokenTTL,
		VerifyTTL:  cfg.VerifyTokenTTL,
		ResetTTL:   cfg.ResetTokenTTL,
	})
	usersft.Register(m, usersft.Deps{DB: db, Log: log, Repos: rs})
	lpft.Register(m, lpft.Deps{DB: db, Log: log, Repos: rs, Cache: svcs.Cache, Notify: svcs.Notify})
	contentft.Register(m, contentft.Deps{DB: db, Log: log, Repos: rs})
	progressft.Register(m, progressft.Deps{DB: db, Log: log, Repos: rs, Notify: svcs.Notify})
	assessft.Register(m, assessft.Deps{DB: db, Log: log, Repos: rs})
	resourceft.Register(m, resourceft.Deps{DB: db, Log: log, Repos: rs})
	filesft.Register(m, filesft.Deps{
		DB:             db,
		Log:            log,
		Repos:          rs,
		Storage:        svcs.Storage,
		Notify:         svcs.Notify,
		MaxFileSize:    cfg.MaxFileSize,
		MaxUserStorage: cfg.MaxUserStorage,
	})
	notifft.Register(m, notifft.Deps{DB: db, Log: log, Repos: rs})
	dashft.Register(m, dashft.Deps{DB: db, Log: log, Repos: rs, Cache: svcs.Cache})
	aift.Register(m, aift.Deps{DB: db, Log: log, Repos: rs, AI: svcs.AI})

	return m
}
