package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Type string

const (
	TypeSystem      Type = "system"
	TypeLearning    Type = "learning"
	TypeAssessment  Type = "assessment"
	TypeAchievement Type = "achievement"
	TypeReminder    Type = "reminder"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSystem, TypeLearning, TypeAssessment, TypeAchievement, TypeReminder:
		return true
	default:
		return false
	}
}

type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Title      string     `gorm:"not null;column:title" json:"title"`
	Message    string     `gorm:"not null;column:message" json:"message"`
	Type       Type       `gorm:"not null;column:type" json:"type"`
	IsRead     bool       `gorm:"not null;default:false;index;column:is_read" json:"is_read"`
	ReadAt     *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	ActionURL  string     `gorm:"column:action_url" json:"action_url,omitempty"`
	ActionText string     `gorm:"column:action_text" json:"action_text,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Notification) TableName() string { return "notification" }

type Settings struct {
	ID                      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	EmailNotifications      bool      `gorm:"not null;default:true;column:email_notifications" json:"email_notifications"`
	PushNotifications       bool      `gorm:"not null;default:true;column:push_notifications" json:"push_notifications"`
	LearningReminders       bool      `gorm:"not null;default:true;column:learning_reminders" json:"learning_reminders"`
	AssessmentNotifications bool      `gorm:"not null;default:true;column:assessment_notifications" json:"assessment_notifications"`
	SystemUpdates           bool      `gorm:"not null;default:true;column:system_updates" json:"system_updates"`
	MarketingEmails         bool      `gorm:"not null;default:false;column:marketing_emails" json:"marketing_emails"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Settings) TableName() string { return "notification_settings" }
