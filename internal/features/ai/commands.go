package ai

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type CareerAdviceQuery struct {
	Specialization string `json:"specialization" validate:"required,max=200"`
	CareerGoals    string `json:"career_goals" validate:"omitempty,max=2000"`
}

type CareerAdvice struct {
	Advice string `json:"advice"`
}

// FeedbackStatusQuery reports the latest feedback-generation job for one
// assessment result.
type FeedbackStatusQuery struct {
	ResultID uuid.UUID `json:"result_id" validate:"required"`
}

type MyJobsQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// RecommendPathsQuery suggests active paths matching the caller's profile
// interests and skills. Limit defaults to 5.
type RecommendPathsQuery struct {
	Limit int `json:"limit" validate:"min=0,max=20"`
}

type JobPage = result.Page[*types.JobRun]
