package app

import (
	apihttp "github.com/skillup-platform/skillup-backend/internal/http"
	httpH "github.com/skillup-platform/skillup-backend/internal/http/handlers"
	httpMW "github.com/skillup-platform/skillup-backend/internal/http/middleware"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, m *mediator.Mediator, svcs Services) *apihttp.Server {
	log.Info("Wiring HTTP layer...")
	return apihttp.NewServer(cfg.Addr, apihttp.RouterConfig{
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,

		AuthMiddleware: httpMW.NewAuthMiddleware(log, svcs.Tokens),

		HealthHandler:       httpH.NewHealthHandler(),
		AuthHandler:         httpH.NewAuthHandler(m),
		UserHandler:         httpH.NewUserHandler(m),
		LearningPathHandler: httpH.NewLearningPathHandler(m),
		ContentHandler:      httpH.NewContentHandler(m),
		AssessmentHandler:   httpH.NewAssessmentHandler(m),
		ResourceHandler:     httpH.NewResourceHandler(m),
		FileHandler:         httpH.NewFileHandler(log, m),
		NotificationHandler: httpH.NewNotificationHandler(m),
		DashboardHandler:    httpH.NewDashboardHandler(m),
		AIHandler:           httpH.NewAIHandler(m),
	})
}
