package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenKind string

const (
	TokenKindRefresh           TokenKind = "refresh"
	TokenKindEmailVerification TokenKind = "email_verification"
	TokenKindPasswordReset     TokenKind = "password_reset"
)

// UserToken stores opaque server-side tokens: refresh tokens plus one-shot
// email-verification and password-reset tokens.
type UserToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Kind      TokenKind `gorm:"not null;index;column:kind" json:"kind"`
	Token     string    `gorm:"not null;uniqueIndex;column:token" json:"-"`
	ExpiresAt time.Time `gorm:"not null;column:expires_at" json:"expires_at"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserToken) TableName() string { return "user_token" }

func (t *UserToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
