package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

// NotificationService writes in-app notifications, honoring each user's
// per-category settings. A failed notification write never fails the
// operation that triggered it.
type NotificationService interface {
	Notify(ctx context.Context, tx *gorm.DB, n *types.Notification)
}

type notificationService struct {
	log           *logger.Logger
	notifications repos.NotificationRepo
	settings      repos.NotificationSettingsRepo
}

func NewNotificationService(
	log *logger.Logger,
	notifications repos.NotificationRepo,
	settings repos.NotificationSettingsRepo,
) NotificationService {
	return &notificationService{
		log:           log.With("service", "NotificationService"),
		notifications: notifications,
		settings:      settings,
	}
}

func (s *notificationService) Notify(ctx context.Context, tx *gorm.DB, n *types.Notification) {
	if n == nil || n.UserID == uuid.Nil {
		return
	}

	settings, err := s.settings.GetByUserID(ctx, tx, n.UserID)
	if err != nil {
		s.log.Warn("Failed to load notification settings", "user_id", n.UserID, "error", err)
	}
	if settings != nil && !allowed(settings, n.Type) {
		return
	}

	if _, err := s.notifications.Create(ctx, tx, n); err != nil {
		s.log.Warn("Failed to create notification", "user_id", n.UserID, "type", n.Type, "error", err)
	}
}

func allowed(settings *types.NotificationSettings, t types.NotificationType) bool {
	switch t {
	case "learning":
		return settings.LearningReminders
	case "assessment":
		return settings.AssessmentNotifications
	case "system":
		return settings.SystemUpdates
	default:
		return true
	}
}
