package content

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

type CreateContentCommand struct {
	PathID          uuid.UUID `json:"path_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=300"`
	Description     string    `json:"description" validate:"omitempty,max=5000"`
	ContentType     string    `json:"content_type" validate:"required,oneof=video document article quiz"`
	VideoURL        string    `json:"video_url" validate:"omitempty,url"`
	DocumentURL     string    `json:"document_url" validate:"omitempty,url"`
	TextContent     string    `json:"text_content"`
	DurationMinutes int       `json:"duration_minutes" validate:"min=0"`
	DisplayOrder    int       `json:"display_order" validate:"min=0"`
	IsRequired      *bool     `json:"is_required"`
}

type UpdateContentCommand struct {
	ContentID       uuid.UUID `json:"content_id" validate:"required"`
	Title           *string   `json:"title" validate:"omitempty,max=300"`
	Description     *string   `json:"description" validate:"omitempty,max=5000"`
	ContentType     *string   `json:"content_type" validate:"omitempty,oneof=video document article quiz"`
	VideoURL        *string   `json:"video_url" validate:"omitempty,url"`
	DocumentURL     *string   `json:"document_url" validate:"omitempty,url"`
	TextContent     *string   `json:"text_content"`
	DurationMinutes *int      `json:"duration_minutes" validate:"omitempty,min=0"`
	DisplayOrder    *int      `json:"display_order" validate:"omitempty,min=0"`
	IsRequired      *bool     `json:"is_required"`
}

type DeleteContentCommand struct {
	ContentID uuid.UUID `json:"content_id" validate:"required"`
}

type GetContentQuery struct {
	ContentID uuid.UUID `json:"content_id" validate:"required"`
}

type ListPathContentQuery struct {
	PathID uuid.UUID `json:"path_id" validate:"required"`
}

// ContentWithProgress merges a content item with the caller's progress row,
// if any.
type ContentWithProgress struct {
	Content  *types.Content      `json:"content"`
	Progress *types.UserProgress `json:"progress,omitempty"`
}

// ContentDetail adds next/previous navigation by display order within the
// owning path.
type ContentDetail struct {
	Content    *types.Content      `json:"content"`
	Progress   *types.UserProgress `json:"progress,omitempty"`
	PreviousID *uuid.UUID          `json:"previous_id,omitempty"`
	NextID     *uuid.UUID          `json:"next_id,omitempty"`
}
