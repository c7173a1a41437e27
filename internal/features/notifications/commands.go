package notifications

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type ListNotificationsQuery struct {
	UnreadOnly bool `json:"unread_only"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
}

type UnreadCountQuery struct{}

type MarkReadCommand struct {
	NotificationID uuid.UUID `json:"notification_id" validate:"required"`
}

type MarkAllReadCommand struct{}

type DeleteNotificationCommand struct {
	NotificationID uuid.UUID `json:"notification_id" validate:"required"`
}

type GetSettingsQuery struct{}

type UpdateSettingsCommand struct {
	EmailNotifications      *bool `json:"email_notifications"`
	PushNotifications       *bool `json:"push_notifications"`
	LearningReminders       *bool `json:"learning_reminders"`
	AssessmentNotifications *bool `json:"assessment_notifications"`
	SystemUpdates           *bool `json:"system_updates"`
	MarketingEmails         *bool `json:"marketing_emails"`
}

// BroadcastCommand queues a fan-out job that notifies every active user,
// optionally restricted to one role.
type BroadcastCommand struct {
	Title   string `json:"title" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=2000"`
	Type    string `json:"type" validate:"required,oneof=system learning assessment achievement reminder"`
	Role    string `json:"role" validate:"omitempty,oneof=student content_creator admin"`
}

type NotificationPage = result.Page[*types.Notification]
