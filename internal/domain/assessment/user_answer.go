package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserAnswer struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	QuestionID         uuid.UUID `gorm:"type:uuid;not null;index;column:question_id" json:"question_id"`
	AssessmentResultID uuid.UUID `gorm:"type:uuid;not null;index;column:assessment_result_id" json:"assessment_result_id"`
	Answer             string    `gorm:"column:answer" json:"answer"`
	IsCorrect          bool      `gorm:"not null;default:false;column:is_correct" json:"is_correct"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserAnswer) TableName() string { return "user_answer" }
