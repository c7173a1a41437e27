package http

import (
	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	httpH "github.com/skillup-platform/skillup-backend/internal/http/handlers"
	httpMW "github.com/skillup-platform/skillup-backend/internal/http/middleware"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler       *httpH.HealthHandler
	AuthHandler         *httpH.AuthHandler
	UserHandler         *httpH.UserHandler
	LearningPathHandler *httpH.LearningPathHandler
	ContentHandler      *httpH.ContentHandler
	AssessmentHandler   *httpH.AssessmentHandler
	ResourceHandler     *httpH.ResourceHandler
	FileHandler         *httpH.FileHandler
	NotificationHandler *httpH.NotificationHandler
	DashboardHandler    *httpH.DashboardHandler
	AIHandler           *httpH.AIHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	admin := string(types.RoleAdmin)
	creator := string(types.RoleCreator)

	r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := r.Group("/api")

	// Auth (public)
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)
	api.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	api.POST("/auth/logout", cfg.AuthHandler.Logout)
	api.POST("/auth/verify-email", cfg.AuthHandler.VerifyEmail)
	api.POST("/auth/forgot-password", cfg.AuthHandler.ForgotPassword)
	api.POST("/auth/reset-password", cfg.AuthHandler.ResetPassword)

	// Public catalog; identity is attached when present so listings can
	// include private state for staff and enrollment info for students.
	catalog := api.Group("/")
	catalog.Use(cfg.AuthMiddleware.OptionalAuth())
	catalog.GET("/learning-paths", cfg.LearningPathHandler.List)
	catalog.GET("/learning-paths/:id", cfg.LearningPathHandler.Get)
	catalog.GET("/assessments", cfg.AssessmentHandler.List)
	catalog.GET("/assessments/:id", cfg.AssessmentHandler.Get)
	catalog.GET("/resources", cfg.ResourceHandler.List)
	catalog.GET("/resources/:id", cfg.ResourceHandler.Get)

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Account
	protected.POST("/auth/change-password", cfg.AuthHandler.ChangePassword)
	protected.GET("/me", cfg.UserHandler.GetMe)
	protected.PUT("/me", cfg.UserHandler.UpdateMe)
	protected.GET("/me/profile", cfg.UserHandler.GetProfile)
	protected.PUT("/me/profile", cfg.UserHandler.UpsertProfile)

	// Learning paths
	protected.POST("/learning-paths/:id/enroll", cfg.LearningPathHandler.Enroll)
	protected.GET("/me/learning-paths", cfg.LearningPathHandler.MyPaths)
	protected.PUT("/learning-paths/:id/enrollment", cfg.LearningPathHandler.UpdateEnrollmentStatus)
	protected.GET("/learning-paths/:id/contents", cfg.ContentHandler.ListByPath)
	protected.GET("/learning-paths/:id/progress", cfg.ContentHandler.PathProgress)

	// Content and progress
	protected.GET("/contents/:id", cfg.ContentHandler.Get)
	protected.POST("/contents/:id/complete", cfg.ContentHandler.Complete)
	protected.POST("/contents/:id/time-spent", cfg.ContentHandler.RecordTimeSpent)

	// Assessments
	protected.POST("/assessments/:id/submit", cfg.AssessmentHandler.Submit)
	protected.GET("/me/assessment-results", cfg.AssessmentHandler.MyResults)
	protected.GET("/assessment-results/:id", cfg.AssessmentHandler.GetResult)
	protected.GET("/assessment-results/:id/feedback-status", cfg.AIHandler.FeedbackStatus)

	// Resources
	protected.POST("/resources/:id/download", cfg.ResourceHandler.Download)

	// Files
	protected.POST("/files", cfg.FileHandler.Upload)
	protected.GET("/files", cfg.FileHandler.ListMine)
	protected.GET("/files/shared", cfg.FileHandler.ListShared)
	protected.GET("/files/:id/download", cfg.FileHandler.Download)
	protected.POST("/files/:id/share", cfg.FileHandler.Share)
	protected.DELETE("/files/:id/share/:userId", cfg.FileHandler.RevokeShare)
	protected.DELETE("/files/:id", cfg.FileHandler.Delete)

	// Notifications
	protected.GET("/notifications", cfg.NotificationHandler.List)
	protected.GET("/notifications/unread-count", cfg.NotificationHandler.UnreadCount)
	protected.PUT("/notifications/read-all", cfg.NotificationHandler.MarkAllRead)
	protected.PUT("/notifications/:id/read", cfg.NotificationHandler.MarkRead)
	protected.DELETE("/notifications/:id", cfg.NotificationHandler.Delete)
	protected.GET("/notifications/settings", cfg.NotificationHandler.GetSettings)
	protected.PUT("/notifications/settings", cfg.NotificationHandler.UpdateSettings)

	// Dashboard and AI
	protected.GET("/dashboard", cfg.DashboardHandler.Student)
	protected.POST("/ai/career-advice", cfg.AIHandler.CareerAdvice)
	protected.GET("/ai/recommendations", cfg.AIHandler.Recommendations)
	protected.GET("/me/jobs", cfg.AIHandler.MyJobs)

	// Authoring (creator or admin)
	authoring := protected.Group("/")
	authoring.Use(cfg.AuthMiddleware.RequireRole(creator, admin))
	authoring.GET("/dashboard/creator", cfg.DashboardHandler.CreatorStats)
	authoring.POST("/learning-paths", cfg.LearningPathHandler.Create)
	authoring.PUT("/learning-paths/:id", cfg.LearningPathHandler.Update)
	authoring.DELETE("/learning-paths/:id", cfg.LearningPathHandler.Delete)
	authoring.POST("/learning-paths/:id/contents", cfg.ContentHandler.Create)
	authoring.PUT("/contents/:id", cfg.ContentHandler.Update)
	authoring.DELETE("/contents/:id", cfg.ContentHandler.Delete)
	authoring.POST("/assessments", cfg.AssessmentHandler.Create)
	authoring.PUT("/assessments/:id", cfg.AssessmentHandler.Update)
	authoring.DELETE("/assessments/:id", cfg.AssessmentHandler.Delete)
	authoring.POST("/resources", cfg.ResourceHandler.Create)
	authoring.PUT("/resources/:id", cfg.ResourceHandler.Update)

	// Admin
	adminGroup := protected.Group("/admin")
	adminGroup.Use(cfg.AuthMiddleware.RequireRole(admin))
	adminGroup.GET("/users", cfg.UserHandler.ListUsers)
	adminGroup.GET("/users/:id", cfg.UserHandler.GetUser)
	adminGroup.PUT("/users/:id/role", cfg.UserHandler.SetUserRole)
	adminGroup.PUT("/users/:id/active", cfg.UserHandler.SetUserActive)
	adminGroup.GET("/stats", cfg.DashboardHandler.AdminStats)
	adminGroup.POST("/notifications/broadcast", cfg.NotificationHandler.Broadcast)
	adminGroup.DELETE("/resources/:id", cfg.ResourceHandler.Delete)

	return r
}
