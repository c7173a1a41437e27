package files

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type FileFilter struct {
	Category   string
	UploadedBy uuid.UUID
	PublicOnly bool
}

type FileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, f *types.FileUpload) (*types.FileUpload, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.FileUpload, error)
	GetByFileName(ctx context.Context, tx *gorm.DB, fileName string) (*types.FileUpload, error)
	List(ctx context.Context, tx *gorm.DB, f FileFilter, page, pageSize int) ([]*types.FileUpload, int64, error)
	ListSharedWith(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page, pageSize int) ([]*types.FileUpload, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	SumSizeByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)

	UpsertShare(ctx context.Context, tx *gorm.DB, s *types.FileShare) (*types.FileShare, error)
	GetShare(ctx context.Context, tx *gorm.DB, fileID, userID uuid.UUID) (*types.FileShare, error)
	DeleteShare(ctx context.Context, tx *gorm.DB, fileID, userID uuid.UUID) error
	DeleteSharesForFile(ctx context.Context, tx *gorm.DB, fileID uuid.UUID) error
}

type fileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFileRepo(db *gorm.DB, baseLog *logger.Logger) FileRepo {
	return &fileRepo{db: db, log: baseLog.With("repo", "FileRepo")}
}

func (r *fileRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *fileRepo) Create(ctx context.Context, tx *gorm.DB, f *types.FileUpload) (*types.FileUpload, error) {
	if err := r.handle(tx).WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *fileRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.FileUpload, error) {
	var f types.FileUpload
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&f).Error
	if err != nil {
		return nil, err
	}
	if f.ID == uuid.Nil {
		return nil, nil
	}
	return &f, nil
}

func (r *fileRepo) GetByFileName(ctx context.Context, tx *gorm.DB, fileName string) (*types.FileUpload, error) {
	var f types.FileUpload
	err := r.handle(tx).WithContext(ctx).Where("file_name = ?", fileName).Limit(1).Find(&f).Error
	if err != nil {
		return nil, err
	}
	if f.ID == uuid.Nil {
		return nil, nil
	}
	return &f, nil
}

func (r *fileRepo) List(ctx context.Context, tx *gorm.DB, f FileFilter, page, pageSize int) ([]*types.FileUpload, int64, error) {
	q := r.handle(tx).WithContext(ctx).Model(&types.FileUpload{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.UploadedBy != uuid.Nil {
		q = q.Where("uploaded_by = ?", f.UploadedBy)
	}
	if f.PublicOnly {
		q = q.Where("is_public = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.FileUpload
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *fileRepo) ListSharedWith(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page, pageSize int) ([]*types.FileUpload, int64, error) {
	q := r.handle(tx).WithContext(ctx).
		Model(&types.FileUpload{}).
		Joins("JOIN file_share ON file_share.file_upload_id = file_upload.id AND file_share.deleted_at IS NULL").
		Where("file_share.shared_with_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.FileUpload
	err := q.Order("file_upload.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *fileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.FileUpload{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *fileRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	h := r.handle(tx).WithContext(ctx)
	if err := h.Where("file_upload_id = ?", id).Delete(&types.FileShare{}).Error; err != nil {
		return err
	}
	return h.Where("id = ?", id).Delete(&types.FileUpload{}).Error
}

func (r *fileRepo) SumSizeByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.FileUpload{}).
		Where("uploaded_by = ?", userID).
		Select("COALESCE(SUM(file_size), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *fileRepo) UpsertShare(ctx context.Context, tx *gorm.DB, s *types.FileShare) (*types.FileShare, error) {
	err := r.handle(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "file_upload_id"}, {Name: "shared_with_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"access_level", "shared_by", "updated_at"}),
		}).
		Create(s).Error
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *fileRepo) GetShare(ctx context.Context, tx *gorm.DB, fileID, userID uuid.UUID) (*types.FileShare, error) {
	var s types.FileShare
	err := r.handle(tx).WithContext(ctx).
		Where("file_upload_id = ? AND shared_with_user_id = ?", fileID, userID).
		Limit(1).Find(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == uuid.Nil {
		return nil, nil
	}
	return &s, nil
}

func (r *fileRepo) DeleteShare(ctx context.Context, tx *gorm.DB, fileID, userID uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("file_upload_id = ? AND shared_with_user_id = ?", fileID, userID).
		Delete(&types.FileShare{}).Error
}

func (r *fileRepo) DeleteSharesForFile(ctx context.Context, tx *gorm.DB, fileID uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("file_upload_id = ?", fileID).
		Delete(&types.FileShare{}).Error
}
