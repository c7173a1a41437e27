package files

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessLevel string

const (
	AccessRead  AccessLevel = "read"
	AccessWrite AccessLevel = "write"
)

type FileUpload struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FileName         string    `gorm:"not null;uniqueIndex;column:file_name" json:"file_name"`
	OriginalFileName string    `gorm:"not null;column:original_file_name" json:"original_file_name"`
	FilePath         string    `gorm:"not null;column:file_path" json:"-"`
	ContentType      string    `gorm:"column:content_type" json:"content_type"`
	FileSize         int64     `gorm:"not null;default:0;column:file_size" json:"file_size"`
	Category         string    `gorm:"index;column:category" json:"category,omitempty"`
	Description      string    `gorm:"column:description" json:"description,omitempty"`
	IsPublic         bool      `gorm:"not null;default:false;column:is_public" json:"is_public"`
	UploadedBy       uuid.UUID `gorm:"type:uuid;not null;index;column:uploaded_by" json:"uploaded_by"`

	Shares []FileShare `gorm:"foreignKey:FileUploadID;constraint:OnDelete:CASCADE" json:"shares,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (FileUpload) TableName() string { return "file_upload" }

type FileShare struct {
	ID               uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FileUploadID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_file_share_pair;column:file_upload_id" json:"file_upload_id"`
	SharedWithUserID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_file_share_pair;column:shared_with_user_id" json:"shared_with_user_id"`
	SharedBy         uuid.UUID   `gorm:"type:uuid;not null;column:shared_by" json:"shared_by"`
	AccessLevel      AccessLevel `gorm:"not null;default:read;column:access_level" json:"access_level"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (FileShare) TableName() string { return "file_share" }
