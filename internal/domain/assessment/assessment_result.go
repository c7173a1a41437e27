package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentResult is one submission attempt. The row is created with a zero
// score before grading runs, then updated with the final score, so an attempt
// is durably recorded even if grading dies midway.
type AssessmentResult struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	AssessmentID     uuid.UUID `gorm:"type:uuid;not null;index;column:assessment_id" json:"assessment_id"`
	Score            int       `gorm:"not null;default:0;column:score" json:"score"`
	MaxScore         int       `gorm:"not null;default:0;column:max_score" json:"max_score"`
	TotalQuestions   int       `gorm:"not null;default:0;column:total_questions" json:"total_questions"`
	CorrectAnswers   int       `gorm:"not null;default:0;column:correct_answers" json:"correct_answers"`
	TimeSpentMinutes int       `gorm:"not null;default:0;column:time_spent_minutes" json:"time_spent_minutes"`
	IsPassed         bool      `gorm:"not null;default:false;column:is_passed" json:"is_passed"`
	CompletedAt      time.Time `gorm:"not null;default:now();column:completed_at" json:"completed_at"`
	Feedback         string    `gorm:"column:feedback" json:"feedback,omitempty"`
	AIFeedback       string    `gorm:"column:ai_feedback" json:"ai_feedback,omitempty"`

	Answers []UserAnswer `gorm:"foreignKey:AssessmentResultID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AssessmentResult) TableName() string { return "assessment_result" }
