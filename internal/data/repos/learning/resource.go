package learning

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type ResourceFilter struct {
	Type       types.ResourceType
	Category   string
	ActiveOnly bool
}

type ResourceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, res *types.Resource) (*types.Resource, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error)
	List(ctx context.Context, tx *gorm.DB, f ResourceFilter, page, pageSize int) ([]*types.Resource, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	IncrementDownloadCount(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type resourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
	return &resourceRepo{db: db, log: baseLog.With("repo", "ResourceRepo")}
}

func (r *resourceRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *resourceRepo) Create(ctx context.Context, tx *gorm.DB, res *types.Resource) (*types.Resource, error) {
	if err := r.handle(tx).WithContext(ctx).Create(res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error) {
	var res types.Resource
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&res).Error
	if err != nil {
		return nil, err
	}
	if res.ID == uuid.Nil {
		return nil, nil
	}
	return &res, nil
}

func (r *resourceRepo) List(ctx context.Context, tx *gorm.DB, f ResourceFilter, page, pageSize int) ([]*types.Resource, int64, error) {
	q := r.handle(tx).WithContext(ctx).Model(&types.Resource{})
	if f.Type != "" {
		q = q.Where("resource_type = ?", f.Type)
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(c))
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.Resource
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *resourceRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.Resource{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *resourceRepo) IncrementDownloadCount(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Model(&types.Resource{}).
		Where("id = ?", id).
		Update("download_count", gorm.Expr("download_count + 1")).Error
}

func (r *resourceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Resource{}).Error
}
