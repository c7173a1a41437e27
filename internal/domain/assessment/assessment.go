package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentType string

const (
	TypeSkillAssessment  AssessmentType = "skill_assessment"
	TypeKnowledgeTest    AssessmentType = "knowledge_test"
	TypePersonalityTest  AssessmentType = "personality_test"
	TypeCareerAssessment AssessmentType = "career_assessment"
)

func (t AssessmentType) Valid() bool {
	switch t {
	case TypeSkillAssessment, TypeKnowledgeTest, TypePersonalityTest, TypeCareerAssessment:
		return true
	default:
		return false
	}
}

// Assessment is a scored set of questions, optionally attached to a learning
// path. PassingScore is the stored threshold compared against the raw summed
// score of a submission, not against a percentage of the maximum.
type Assessment struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title            string         `gorm:"not null;column:title" json:"title"`
	Description      string         `gorm:"column:description" json:"description"`
	Category         string         `gorm:"index;column:category" json:"category"`
	AssessmentType   AssessmentType `gorm:"not null;column:assessment_type" json:"assessment_type"`
	TimeLimitMinutes int            `gorm:"not null;default:0;column:time_limit_minutes" json:"time_limit_minutes"`
	PassingScore     int            `gorm:"not null;default:0;column:passing_score" json:"passing_score"`
	IsActive         bool           `gorm:"not null;default:true;index;column:is_active" json:"is_active"`
	LearningPathID   *uuid.UUID     `gorm:"type:uuid;index;column:learning_path_id" json:"learning_path_id,omitempty"`
	CreatedBy        uuid.UUID      `gorm:"type:uuid;index;column:created_by" json:"created_by"`

	Questions []Question `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Assessment) TableName() string { return "assessment" }
