package progress

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

type CompleteContentCommand struct {
	ContentID uuid.UUID `json:"content_id" validate:"required"`
}

type UpdateTimeSpentCommand struct {
	ContentID uuid.UUID `json:"content_id" validate:"required"`
	Minutes   int       `json:"minutes" validate:"required,min=1,max=1440"`
}

type PathProgressQuery struct {
	PathID uuid.UUID `json:"path_id" validate:"required"`
}

// CompletionResult reports the per-content row plus the recomputed
// enrollment after a completion.
type CompletionResult struct {
	Progress      *types.UserProgress     `json:"progress"`
	Enrollment    *types.UserLearningPath `json:"enrollment"`
	PathCompleted bool                    `json:"path_completed"`
}

// PathProgress summarizes one enrollment: overall percentage plus the state
// of every content item in the path.
type PathProgress struct {
	Enrollment     *types.UserLearningPath `json:"enrollment"`
	TotalContents  int                     `json:"total_contents"`
	CompletedCount int                     `json:"completed_count"`
	Items          []*ContentProgress      `json:"items"`
}

type ContentProgress struct {
	Content  *types.Content      `json:"content"`
	Progress *types.UserProgress `json:"progress,omitempty"`
}
