package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResourceType string

const (
	ResourceTypeCVTemplate          ResourceType = "cv_template"
	ResourceTypeCoverLetterTemplate ResourceType = "cover_letter_template"
	ResourceTypeInterviewQuestions  ResourceType = "interview_questions"
	ResourceTypeCareerGuide         ResourceType = "career_guide"
	ResourceTypeSkillTemplate       ResourceType = "skill_template"
)

func (r ResourceType) Valid() bool {
	switch r {
	case ResourceTypeCVTemplate, ResourceTypeCoverLetterTemplate,
		ResourceTypeInterviewQuestions, ResourceTypeCareerGuide, ResourceTypeSkillTemplate:
		return true
	default:
		return false
	}
}

// Resource is a downloadable template or guide from the shared library.
type Resource struct {
	ID              uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string                      `gorm:"not null;column:title" json:"title"`
	Description     string                      `gorm:"column:description" json:"description"`
	ResourceType    ResourceType                `gorm:"not null;index;column:resource_type" json:"resource_type"`
	Category        string                      `gorm:"index;column:category" json:"category"`
	FileURL         string                      `gorm:"column:file_url" json:"file_url,omitempty"`
	TemplateContent string                      `gorm:"column:template_content" json:"template_content,omitempty"`
	Tags            datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	IsActive        bool                        `gorm:"not null;default:true;column:is_active" json:"is_active"`
	DownloadCount   int                         `gorm:"not null;default:0;column:download_count" json:"download_count"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Resource) TableName() string { return "resource" }
