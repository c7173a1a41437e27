package assessments

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type QuestionInput struct {
	QuestionText  string   `json:"question_text" validate:"required,max=2000"`
	QuestionType  string   `json:"question_type" validate:"required,oneof=multiple_choice true_false short_answer essay"`
	Options       []string `json:"options" validate:"omitempty,dive,max=500"`
	CorrectAnswer string   `json:"correct_answer" validate:"required,max=2000"`
	Explanation   string   `json:"explanation" validate:"omitempty,max=2000"`
	Points        int      `json:"points" validate:"min=1,max=100"`
	DisplayOrder  int      `json:"display_order" validate:"min=0"`
}

type CreateAssessmentCommand struct {
	Title            string          `json:"title" validate:"required,max=300"`
	Description      string          `json:"description" validate:"omitempty,max=5000"`
	Category         string          `json:"category" validate:"omitempty,max=100"`
	AssessmentType   string          `json:"assessment_type" validate:"required,oneof=skill_assessment knowledge_test personality_test career_assessment"`
	TimeLimitMinutes int             `json:"time_limit_minutes" validate:"min=0"`
	PassingScore     int             `json:"passing_score" validate:"min=0"`
	LearningPathID   *uuid.UUID      `json:"learning_path_id"`
	Questions        []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

type UpdateAssessmentCommand struct {
	AssessmentID     uuid.UUID  `json:"assessment_id" validate:"required"`
	Title            *string    `json:"title" validate:"omitempty,max=300"`
	Description      *string    `json:"description" validate:"omitempty,max=5000"`
	Category         *string    `json:"category" validate:"omitempty,max=100"`
	TimeLimitMinutes *int       `json:"time_limit_minutes" validate:"omitempty,min=0"`
	PassingScore     *int       `json:"passing_score" validate:"omitempty,min=0"`
	IsActive         *bool      `json:"is_active"`
	LearningPathID   *uuid.UUID `json:"learning_path_id"`
}

type DeleteAssessmentCommand struct {
	AssessmentID uuid.UUID `json:"assessment_id" validate:"required"`
}

type GetAssessmentQuery struct {
	AssessmentID uuid.UUID `json:"assessment_id" validate:"required"`
}

type ListAssessmentsQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type AnswerInput struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Answer     string    `json:"answer" validate:"max=5000"`
}

type SubmitAssessmentCommand struct {
	AssessmentID     uuid.UUID     `json:"assessment_id" validate:"required"`
	TimeSpentMinutes int           `json:"time_spent_minutes" validate:"min=0"`
	Answers          []AnswerInput `json:"answers" validate:"dive"`
}

type MyResultsQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type GetResultQuery struct {
	ResultID uuid.UUID `json:"result_id" validate:"required"`
}

// Aliases keep handler registrations readable.
type AssessmentPage = result.Page[*types.Assessment]
type ResultPage = result.Page[*types.AssessmentResult]
