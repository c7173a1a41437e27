package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	"github.com/skillup-platform/skillup-backend/internal/jobs/runtime"
	"github.com/skillup-platform/skillup-backend/internal/jobs/worker"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/platform/sendgrid"
	"github.com/skillup-platform/skillup-backend/internal/services"
)

type Services struct {
	Tokens  services.TokenService
	Cache   services.CacheService
	Email   services.EmailService
	Storage services.StorageService
	AI      services.AIService
	Notify  services.NotificationService

	JobRegistry *runtime.Registry
	JobWorker   *worker.Worker
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, rs *repos.Set) (Services, error) {
	log.Info("Wiring services...")

	tokens, err := services.NewTokenService(log, cfg.JWTSecretKey, cfg.JWTIssuer, cfg.AccessTokenTTL)
	if err != nil {
		return Services{}, fmt.Errorf("init token service: %w", err)
	}

	var cache services.CacheService
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		cache = services.NewRedisCache(client, log, cfg.CachePrefix)
	} else {
		log.Info("REDIS_ADDR not set, using in-process cache")
		cache = services.NewMemoryCache()
	}

	var email services.EmailService
	if cfg.SendgridAPIKey != "" {
		email = services.NewSendgridEmail(sendgrid.NewClient(cfg.SendgridAPIKey), log, cfg.EmailFrom, cfg.EmailFromName)
	} else {
		log.Info("SENDGRID_API_KEY not set, email delivery disabled")
		email = services.NewNoopEmail(log)
	}

	storage, err := services.NewLocalStorage(cfg.UploadDir, log)
	if err != nil {
		return Services{}, fmt.Errorf("init storage: %w", err)
	}

	ai := services.NewStubAI(log)
	notify := services.NewNotificationService(log, rs.Notification, rs.Settings)

	registry := runtime.NewRegistry()
	jobWorker := worker.NewWorker(db, log, rs.JobRuns, registry)

	return Services{
		Tokens:      tokens,
		Cache:       cache,
		Email:       email,
		Storage:     storage,
		AI:          ai,
		Notify:      notify,
		JobRegistry: registry,
		JobWorker:   jobWorker,
	}, nil
}
