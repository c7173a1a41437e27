package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleCreator Role = "content_creator"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCreator, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName       string     `gorm:"not null;column:first_name" json:"first_name"`
	LastName        string     `gorm:"not null;column:last_name" json:"last_name"`
	Email           string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash    string     `gorm:"not null;column:password_hash" json:"-"`
	PhoneNumber     string     `gorm:"column:phone_number" json:"phone_number,omitempty"`
	Specialization  string     `gorm:"column:specialization" json:"specialization,omitempty"`
	StudyYear       *int       `gorm:"column:study_year" json:"study_year,omitempty"`
	CareerGoals     string     `gorm:"column:career_goals" json:"career_goals,omitempty"`
	Role            Role       `gorm:"not null;default:student;index;column:role" json:"role"`
	IsEmailVerified bool       `gorm:"not null;default:false;column:is_email_verified" json:"is_email_verified"`
	IsActive        bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	LastLoginAt     *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
