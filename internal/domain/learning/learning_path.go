package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

type LearningPath struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title              string                      `gorm:"not null;column:title" json:"title"`
	Description        string                      `gorm:"column:description" json:"description"`
	ImageURL           string                      `gorm:"column:image_url" json:"image_url,omitempty"`
	Category           string                      `gorm:"index;column:category" json:"category"`
	DifficultyLevel    DifficultyLevel             `gorm:"not null;index;column:difficulty_level" json:"difficulty_level"`
	EstimatedHours     int                         `gorm:"not null;default:0;column:estimated_hours" json:"estimated_hours"`
	Prerequisites      datatypes.JSONSlice[string] `gorm:"column:prerequisites" json:"prerequisites"`
	LearningObjectives datatypes.JSONSlice[string] `gorm:"column:learning_objectives" json:"learning_objectives"`
	IsActive           bool                        `gorm:"not null;default:true;index;column:is_active" json:"is_active"`
	DisplayOrder       int                         `gorm:"not null;default:0;column:display_order" json:"display_order"`
	CreatedBy          uuid.UUID                   `gorm:"type:uuid;index;column:created_by" json:"created_by"`

	Contents []Content `gorm:"foreignKey:LearningPathID;constraint:OnDelete:CASCADE" json:"contents,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LearningPath) TableName() string { return "learning_path" }
