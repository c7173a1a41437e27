package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeShortAnswer    QuestionType = "short_answer"
	QuestionTypeEssay          QuestionType = "essay"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeShortAnswer, QuestionTypeEssay:
		return true
	default:
		return false
	}
}

// Question holds the correct answer as plain text; grading compares the
// submitted answer to it trimmed and case-insensitively.
type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AssessmentID  uuid.UUID                   `gorm:"type:uuid;not null;index;column:assessment_id" json:"assessment_id"`
	QuestionText  string                      `gorm:"not null;column:question_text" json:"question_text"`
	QuestionType  QuestionType                `gorm:"not null;column:question_type" json:"question_type"`
	Options       datatypes.JSONSlice[string] `gorm:"column:options" json:"options"`
	CorrectAnswer string                      `gorm:"not null;column:correct_answer" json:"-"`
	Explanation   string                      `gorm:"column:explanation" json:"explanation,omitempty"`
	Points        int                         `gorm:"not null;default:1;column:points" json:"points"`
	DisplayOrder  int                         `gorm:"not null;default:0;index;column:display_order" json:"display_order"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Question) TableName() string { return "question" }
