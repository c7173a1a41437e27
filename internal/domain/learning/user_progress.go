package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProgress tracks one user's state on one content item. Unique per
// (user, content) pair; repeated completion updates the existing row.
type UserProgress struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_progress_pair;column:user_id" json:"user_id"`
	ContentID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_progress_pair;column:content_id" json:"content_id"`
	IsCompleted        bool       `gorm:"not null;default:false;column:is_completed" json:"is_completed"`
	ProgressPercentage int        `gorm:"not null;default:0;column:progress_percentage" json:"progress_percentage"`
	TimeSpentMinutes   int        `gorm:"not null;default:0;column:time_spent_minutes" json:"time_spent_minutes"`
	CompletedAt        *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserProgress) TableName() string { return "user_progress" }
