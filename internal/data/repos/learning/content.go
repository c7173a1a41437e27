package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type ContentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, c *types.Content) (*types.Content, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Content, error)
	ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.Content, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	CountByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) (int64, error)
}

type contentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	return &contentRepo{db: db, log: baseLog.With("repo", "ContentRepo")}
}

func (r *contentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *contentRepo) Create(ctx context.Context, tx *gorm.DB, c *types.Content) (*types.Content, error) {
	if err := r.handle(tx).WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Content, error) {
	var c types.Content
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == uuid.Nil {
		return nil, nil
	}
	return &c, nil
}

func (r *contentRepo) ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.Content, error) {
	var out []*types.Content
	err := r.handle(tx).WithContext(ctx).
		Where("learning_path_id = ?", pathID).
		Order("display_order ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.Content{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *contentRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Content{}).Error
}

func (r *contentRepo) CountByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.Content{}).
		Where("learning_path_id = ?", pathID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
