package learningpaths

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

type CreatePathCommand struct {
	Title              string   `json:"title" validate:"required,max=300"`
	Description        string   `json:"description" validate:"omitempty,max=5000"`
	ImageURL           string   `json:"image_url" validate:"omitempty,url"`
	Category           string   `json:"category" validate:"required,max=100"`
	DifficultyLevel    string   `json:"difficulty_level" validate:"required,oneof=beginner intermediate advanced"`
	EstimatedHours     int      `json:"estimated_hours" validate:"min=0"`
	Prerequisites      []string `json:"prerequisites" validate:"omitempty,dive,max=300"`
	LearningObjectives []string `json:"learning_objectives" validate:"omitempty,dive,max=300"`
	DisplayOrder       int      `json:"display_order"`
}

type UpdatePathCommand struct {
	PathID             uuid.UUID `json:"path_id" validate:"required"`
	Title              *string   `json:"title" validate:"omitempty,max=300"`
	Description        *string   `json:"description" validate:"omitempty,max=5000"`
	ImageURL           *string   `json:"image_url" validate:"omitempty,url"`
	Category           *string   `json:"category" validate:"omitempty,max=100"`
	DifficultyLevel    *string   `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedHours     *int      `json:"estimated_hours" validate:"omitempty,min=0"`
	Prerequisites      []string  `json:"prerequisites" validate:"omitempty,dive,max=300"`
	LearningObjectives []string  `json:"learning_objectives" validate:"omitempty,dive,max=300"`
	DisplayOrder       *int      `json:"display_order"`
	IsActive           *bool     `json:"is_active"`
}

type DeletePathCommand struct {
	PathID uuid.UUID `json:"path_id" validate:"required"`
}

type GetPathQuery struct {
	PathID uuid.UUID `json:"path_id" validate:"required"`
}

type ListPathsQuery struct {
	Category   string `json:"category" validate:"omitempty,max=100"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

type EnrollCommand struct {
	PathID uuid.UUID `json:"path_id" validate:"required"`
}

type MyPathsQuery struct{}

type UpdateEnrollmentStatusCommand struct {
	PathID uuid.UUID `json:"path_id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=in_progress paused"`
}

// PathDetail is a path plus per-caller enrollment state.
type PathDetail struct {
	Path          *types.LearningPath     `json:"path"`
	Enrollment    *types.UserLearningPath `json:"enrollment,omitempty"`
	EnrolledCount int64                   `json:"enrolled_count"`
}

// EnrolledPath pairs an enrollment with its path for the my-paths listing.
type EnrolledPath struct {
	Enrollment *types.UserLearningPath `json:"enrollment"`
	Path       *types.LearningPath     `json:"path"`
}
