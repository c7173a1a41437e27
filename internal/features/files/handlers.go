package files

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	domfiles "github.com/skillup-platform/skillup-backend/internal/domain/files"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/result"
	"github.com/skillup-platform/skillup-backend/internal/services"
)

type Deps struct {
	DB      *gorm.DB
	Log     *logger.Logger
	Repos   *repos.Set
	Storage services.StorageService
	Notify  services.NotificationService

	// MaxFileSize caps a single upload; MaxUserStorage caps a user's total
	// stored bytes. Zero disables the respective check.
	MaxFileSize    int64
	MaxUserStorage int64
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "files")
	base := &deps{Deps: d}
	mediator.MustRegister[UploadFileCommand, *types.FileUpload](m, &uploadFileHandler{base})
	mediator.MustRegister[DownloadFileCommand, *FileStream](m, &downloadFileHandler{base})
	mediator.MustRegister[ListMyFilesQuery, FilePage](m, &listMyFilesHandler{base})
	mediator.MustRegister[ListSharedFilesQuery, FilePage](m, &listSharedFilesHandler{base})
	mediator.MustRegister[ShareFileCommand, *types.FileShare](m, &shareFileHandler{base})
	mediator.MustRegister[RevokeShareCommand, bool](m, &revokeShareHandler{base})
	mediator.MustRegister[DeleteFileCommand, bool](m, &deleteFileHandler{base})
}

// canRead reports whether rc may read the file: owner, admin, public, or an
// explicit share.
func (d *deps) canRead(ctx context.Context, rc ctxutil.RequestContext, f *types.FileUpload) (bool, error) {
	if f.IsPublic || f.UploadedBy == rc.UserID || rc.Role == string(types.RoleAdmin) {
		return true, nil
	}
	if !rc.Authenticated() {
		return false, nil
	}
	share, err := d.Repos.Files.GetShare(ctx, nil, f.ID, rc.UserID)
	if err != nil {
		return false, err
	}
	return share != nil, nil
}

type uploadFileHandler struct{ *deps }

func (h *uploadFileHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UploadFileCommand) result.Result[*types.FileUpload] {
	if !rc.Authenticated() {
		return result.Failure[*types.FileUpload]("unauthorized")
	}
	if cmd.Body == nil {
		return result.Failure[*types.FileUpload]("empty upload body")
	}
	if h.MaxFileSize > 0 && cmd.Size > h.MaxFileSize {
		return result.Failure[*types.FileUpload]("file exceeds the maximum allowed size")
	}
	if h.MaxUserStorage > 0 {
		used, err := h.Repos.Files.SumSizeByUser(ctx, nil, rc.UserID)
		if err != nil {
			h.Log.Error("Failed to check storage usage", "error", err)
			return result.Failure[*types.FileUpload]("failed to upload file")
		}
		if used+cmd.Size > h.MaxUserStorage {
			return result.Failure[*types.FileUpload]("storage quota exceeded")
		}
	}

	storedName := uuid.NewString() + filepath.Ext(cmd.OriginalFileName)
	path, size, err := h.Storage.Save(storedName, cmd.Body)
	if err != nil {
		h.Log.Error("Failed to write upload to storage", "error", err)
		return result.Failure[*types.FileUpload]("failed to upload file")
	}

	f := &types.FileUpload{
		FileName:         storedName,
		OriginalFileName: cmd.OriginalFileName,
		FilePath:         path,
		ContentType:      cmd.ContentType,
		FileSize:         size,
		Category:         cmd.Category,
		Description:      cmd.Description,
		IsPublic:         cmd.IsPublic,
		UploadedBy:       rc.UserID,
	}
	created, err := h.Repos.Files.Create(ctx, nil, f)
	if err != nil {
		h.Log.Error("Failed to record upload", "error", err)
		if derr := h.Storage.Delete(path); derr != nil {
			h.Log.Warn("Failed to remove orphaned upload", "path", path, "error", derr)
		}
		return result.Failure[*types.FileUpload]("failed to upload file")
	}
	return result.Ok(created)
}

type downloadFileHandler struct{ *deps }

func (h *downloadFileHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DownloadFileCommand) result.Result[*FileStream] {
	f, err := h.Repos.Files.GetByID(ctx, nil, cmd.FileID)
	if err != nil {
		h.Log.Error("Failed to load file", "error", err)
		return result.Failure[*FileStream]("failed to download file")
	}
	if f == nil {
		return result.NotFound[*FileStream]("file")
	}
	ok, err := h.canRead(ctx, rc, f)
	if err != nil {
		h.Log.Error("Failed to check file access", "file_id", f.ID, "error", err)
		return result.Failure[*FileStream]("failed to download file")
	}
	if !ok {
		return result.Failure[*FileStream]("forbidden")
	}

	r, err := h.Storage.Open(f.FilePath)
	if err != nil {
		h.Log.Error("Failed to open stored file", "file_id", f.ID, "error", err)
		return result.Failure[*FileStream]("failed to download file")
	}
	return result.Ok(&FileStream{File: f, Reader: r})
}

type listMyFilesHandler struct{ *deps }

func (h *listMyFilesHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q ListMyFilesQuery) result.Result[FilePage] {
	if !rc.Authenticated() {
		return result.Failure[FilePage]("unauthorized")
	}
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	items, total, err := h.Repos.Files.List(ctx, nil, repos.FileFilter{
		Category:   q.Category,
		UploadedBy: rc.UserID,
	}, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list files", "error", err)
		return result.Failure[FilePage]("failed to list files")
	}
	return result.Ok(result.NewPage(items, total, page, pageSize))
}

type listSharedFilesHandler struct{ *deps }

func (h *listSharedFilesHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q ListSharedFilesQuery) result.Result[FilePage] {
	if !rc.Authenticated() {
		return result.Failure[FilePage]("unauthorized")
	}
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	items, total, err := h.Repos.Files.ListSharedWith(ctx, nil, rc.UserID, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list shared files", "error", err)
		return result.Failure[FilePage]("failed to list shared files")
	}
	return result.Ok(result.NewPage(items, total, page, pageSize))
}

type shareFileHandler struct{ *deps }

func (h *shareFileHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd ShareFileCommand) result.Result[*types.FileShare] {
	if !rc.Authenticated() {
		return result.Failure[*types.FileShare]("unauthorized")
	}
	f, err := h.Repos.Files.GetByID(ctx, nil, cmd.FileID)
	if err != nil {
		h.Log.Error("Failed to load file", "error", err)
		return result.Failure[*types.FileShare]("failed to share file")
	}
	if f == nil {
		return result.NotFound[*types.FileShare]("file")
	}
	if f.UploadedBy != rc.UserID && rc.Role != string(types.RoleAdmin) {
		return result.Failure[*types.FileShare]("forbidden")
	}
	if cmd.UserID == f.UploadedBy {
		return result.Failure[*types.FileShare]("cannot share a file with its owner")
	}
	target, err := h.Repos.Users.GetByID(ctx, nil, cmd.UserID)
	if err != nil {
		h.Log.Error("Failed to load target user", "error", err)
		return result.Failure[*types.FileShare]("failed to share file")
	}
	if target == nil {
		return result.NotFound[*types.FileShare]("user")
	}

	level := domfiles.AccessLevel(cmd.AccessLevel)
	if level == "" {
		level = domfiles.AccessRead
	}
	share, err := h.Repos.Files.UpsertShare(ctx, nil, &types.FileShare{
		FileUploadID:     cmd.FileID,
		SharedWithUserID: cmd.UserID,
		SharedBy:         rc.UserID,
		AccessLevel:      level,
	})
	if err != nil {
		h.Log.Error("Failed to upsert file share", "file_id", cmd.FileID, "error", err)
		return result.Failure[*types.FileShare]("failed to share file")
	}

	h.Notify.Notify(ctx, nil, &types.Notification{
		UserID:  cmd.UserID,
		Title:   "File shared with you",
		Message: fmt.Sprintf("%q was shared with you.", f.OriginalFileName),
		Type:    "system",
	})
	return result.Ok(share)
}

type revokeShareHandler struct{ *deps }

func (h *revokeShareHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd RevokeShareCommand) result.Result[bool] {
	if !rc.Authenticated() {
		return result.Failure[bool]("unauthorized")
	}
	f, err := h.Repos.Files.GetByID(ctx, nil, cmd.FileID)
	if err != nil {
		h.Log.Error("Failed to load file", "error", err)
		return result.Failure[bool]("failed to revoke share")
	}
	if f == nil {
		return result.NotFound[bool]("file")
	}
	if f.UploadedBy != rc.UserID && rc.Role != string(types.RoleAdmin) {
		return result.Failure[bool]("forbidden")
	}
	if err := h.Repos.Files.DeleteShare(ctx, nil, cmd.FileID, cmd.UserID); err != nil {
		h.Log.Error("Failed to delete file share", "file_id", cmd.FileID, "error", err)
		return result.Failure[bool]("failed to revoke share")
	}
	return result.Ok(true)
}

type deleteFileHandler struct{ *deps }

func (h *deleteFileHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DeleteFileCommand) result.Result[bool] {
	if !rc.Authenticated() {
		return result.Failure[bool]("unauthorized")
	}
	f, err := h.Repos.Files.GetByID(ctx, nil, cmd.FileID)
	if err != nil {
		h.Log.Error("Failed to load file", "error", err)
		return result.Failure[bool]("failed to delete file")
	}
	if f == nil {
		return result.NotFound[bool]("file")
	}
	if f.UploadedBy != rc.UserID && rc.Role != string(types.RoleAdmin) {
		return result.Failure[bool]("forbidden")
	}

	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return h.Repos.Files.Delete(ctx, tx, cmd.FileID)
	})
	if err != nil {
		h.Log.Error("Failed to delete file record", "file_id", cmd.FileID, "error", err)
		return result.Failure[bool]("failed to delete file")
	}
	if err := h.Storage.Delete(f.FilePath); err != nil {
		h.Log.Warn("Failed to remove stored file", "path", f.FilePath, "error", err)
	}
	return result.Ok(true)
}
