package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentType string

const (
	ContentTypeVideo    ContentType = "video"
	ContentTypeDocument ContentType = "document"
	ContentTypeArticle  ContentType = "article"
	ContentTypeQuiz     ContentType = "quiz"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeVideo, ContentTypeDocument, ContentTypeArticle, ContentTypeQuiz:
		return true
	default:
		return false
	}
}

// Content is a single consumable unit inside a learning path. DisplayOrder
// drives next/previous navigation.
type Content struct {
	ID              uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LearningPathID  uuid.UUID   `gorm:"type:uuid;not null;index;column:learning_path_id" json:"learning_path_id"`
	Title           string      `gorm:"not null;column:title" json:"title"`
	Description     string      `gorm:"column:description" json:"description"`
	ContentType     ContentType `gorm:"not null;column:content_type" json:"content_type"`
	VideoURL        string      `gorm:"column:video_url" json:"video_url,omitempty"`
	DocumentURL     string      `gorm:"column:document_url" json:"document_url,omitempty"`
	TextContent     string      `gorm:"column:text_content" json:"text_content,omitempty"`
	DurationMinutes int         `gorm:"not null;default:0;column:duration_minutes" json:"duration_minutes"`
	DisplayOrder    int         `gorm:"not null;default:0;index;column:display_order" json:"display_order"`
	IsRequired      bool        `gorm:"not null;default:true;column:is_required" json:"is_required"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Content) TableName() string { return "content" }
