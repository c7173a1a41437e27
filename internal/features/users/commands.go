package users

import (
	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

type GetMeQuery struct{}

type UpdateMeCommand struct {
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=30"`
	Specialization *string `json:"specialization" validate:"omitempty,max=200"`
	StudyYear      *int    `json:"study_year" validate:"omitempty,min=1,max=10"`
	CareerGoals    *string `json:"career_goals" validate:"omitempty,max=2000"`
}

type UpsertProfileCommand struct {
	Bio               *string  `json:"bio" validate:"omitempty,max=2000"`
	LinkedInURL       *string  `json:"linkedin_url" validate:"omitempty,url"`
	GitHubURL         *string  `json:"github_url" validate:"omitempty,url"`
	PortfolioURL      *string  `json:"portfolio_url" validate:"omitempty,url"`
	ProfilePictureURL *string  `json:"profile_picture_url" validate:"omitempty,url"`
	Skills            []string `json:"skills" validate:"omitempty,dive,max=100"`
	Interests         []string `json:"interests" validate:"omitempty,dive,max=100"`
	Certifications    []string `json:"certifications" validate:"omitempty,dive,max=200"`
}

type GetProfileQuery struct{}

// Me bundles the account row with its optional profile.
type Me struct {
	User    *types.User        `json:"user"`
	Profile *types.UserProfile `json:"profile,omitempty"`
}

// Admin-only operations.

type ListUsersQuery struct {
	Role     string `json:"role" validate:"omitempty,oneof=student content_creator admin"`
	Search   string `json:"search" validate:"omitempty,max=200"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

type GetUserQuery struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type SetUserRoleCommand struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=student content_creator admin"`
}

type SetUserActiveCommand struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Active bool      `json:"active"`
}
