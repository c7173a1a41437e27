package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserProfile struct {
	ID                uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	Bio               string                      `gorm:"column:bio" json:"bio,omitempty"`
	LinkedInURL       string                      `gorm:"column:linkedin_url" json:"linkedin_url,omitempty"`
	GitHubURL         string                      `gorm:"column:github_url" json:"github_url,omitempty"`
	PortfolioURL      string                      `gorm:"column:portfolio_url" json:"portfolio_url,omitempty"`
	ProfilePictureURL string                      `gorm:"column:profile_picture_url" json:"profile_picture_url,omitempty"`
	Skills            datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills"`
	Interests         datatypes.JSONSlice[string] `gorm:"column:interests" json:"interests"`
	Certifications    datatypes.JSONSlice[string] `gorm:"column:certifications" json:"certifications"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserProfile) TableName() string { return "user_profile" }
