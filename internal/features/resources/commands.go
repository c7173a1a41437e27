package resources

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type CreateResourceCommand struct {
	Title           string   `json:"title" validate:"required,max=300"`
	Description     string   `json:"description" validate:"omitempty,max=5000"`
	ResourceType    string   `json:"resource_type" validate:"required,oneof=cv_template cover_letter_template interview_questions career_guide skill_template"`
	Category        string   `json:"category" validate:"omitempty,max=100"`
	FileURL         string   `json:"file_url" validate:"omitempty,url"`
	TemplateContent string   `json:"template_content"`
	Tags            []string `json:"tags" validate:"omitempty,dive,max=100"`
}

type UpdateResourceCommand struct {
	ResourceID      uuid.UUID `json:"resource_id" validate:"required"`
	Title           *string   `json:"title" validate:"omitempty,max=300"`
	Description     *string   `json:"description" validate:"omitempty,max=5000"`
	Category        *string   `json:"category" validate:"omitempty,max=100"`
	FileURL         *string   `json:"file_url" validate:"omitempty,url"`
	TemplateContent *string   `json:"template_content"`
	Tags            []string  `json:"tags" validate:"omitempty,dive,max=100"`
	IsActive        *bool     `json:"is_active"`
}

type DeleteResourceCommand struct {
	ResourceID uuid.UUID `json:"resource_id" validate:"required"`
}

type GetResourceQuery struct {
	ResourceID uuid.UUID `json:"resource_id" validate:"required"`
}

type ListResourcesQuery struct {
	Type     string `json:"type" validate:"omitempty,oneof=cv_template cover_letter_template interview_questions career_guide skill_template"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// DownloadResourceCommand bumps the download counter and returns the
// resource so the transport layer can redirect or stream it.
type DownloadResourceCommand struct {
	ResourceID uuid.UUID `json:"resource_id" validate:"required"`
}

type ResourcePage = result.Page[*types.Resource]
