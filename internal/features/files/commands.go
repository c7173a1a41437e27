package files

import (
	"io"

	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

// UploadFileCommand carries the multipart stream from the transport layer.
// Size is the declared length; the stored size is whatever was actually
// written.
type UploadFileCommand struct {
	OriginalFileName string    `json:"original_file_name" validate:"required,max=255"`
	ContentType      string    `json:"content_type" validate:"omitempty,max=255"`
	Size             int64     `json:"size" validate:"min=0"`
	Category         string    `json:"category" validate:"omitempty,max=100"`
	Description      string    `json:"description" validate:"omitempty,max=2000"`
	IsPublic         bool      `json:"is_public"`
	Body             io.Reader `json:"-"`
}

type DownloadFileCommand struct {
	FileID uuid.UUID `json:"file_id" validate:"required"`
}

// FileStream is what the transport layer needs to serve the bytes.
type FileStream struct {
	File   *types.FileUpload
	Reader io.ReadSeekCloser
}

type ListMyFilesQuery struct {
	Category string `json:"category" validate:"omitempty,max=100"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

type ListSharedFilesQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type ShareFileCommand struct {
	FileID      uuid.UUID `json:"file_id" validate:"required"`
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	AccessLevel string    `json:"access_level" validate:"omitempty,oneof=read write"`
}

type RevokeShareCommand struct {
	FileID uuid.UUID `json:"file_id" validate:"required"`
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type DeleteFileCommand struct {
	FileID uuid.UUID `json:"file_id" validate:"required"`
}

type FilePage = result.Page[*types.FileUpload]
