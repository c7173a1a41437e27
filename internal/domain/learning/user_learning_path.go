package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PathStatus string

const (
	PathStatusNotStarted PathStatus = "not_started"
	PathStatusInProgress PathStatus = "in_progress"
	PathStatusCompleted  PathStatus = "completed"
	PathStatusPaused     PathStatus = "paused"
)

// UserLearningPath is an enrollment record. The composite unique index is the
// real duplicate-enrollment guarantee; handlers also check before insert so the
// caller gets a readable conflict message instead of a constraint error.
type UserLearningPath struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_learning_path_pair;column:user_id" json:"user_id"`
	LearningPathID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_learning_path_pair;column:learning_path_id" json:"learning_path_id"`
	Status             PathStatus `gorm:"not null;default:not_started;column:status" json:"status"`
	ProgressPercentage int        `gorm:"not null;default:0;column:progress_percentage" json:"progress_percentage"`
	EnrolledAt         time.Time  `gorm:"not null;default:now();column:enrolled_at" json:"enrolled_at"`
	CompletedAt        *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserLearningPath) TableName() string { return "user_learning_path" }
