package assessment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, a *types.Assessment) (*types.Assessment, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Assessment, error)
	GetWithQuestions(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Assessment, error)
	ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.Assessment, error)
	List(ctx context.Context, tx *gorm.DB, activeOnly bool, page, pageSize int) ([]*types.Assessment, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountByCreator(ctx context.Context, tx *gorm.DB, createdBy uuid.UUID) (int64, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (r *assessmentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, a *types.Assessment) (*types.Assessment, error) {
	if err := r.handle(tx).WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Assessment, error) {
	var a types.Assessment
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == uuid.Nil {
		return nil, nil
	}
	return &a, nil
}

func (r *assessmentRepo) GetWithQuestions(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Assessment, error) {
	var a types.Assessment
	err := r.handle(tx).WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("id = ?", id).Limit(1).Find(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == uuid.Nil {
		return nil, nil
	}
	return &a, nil
}

func (r *assessmentRepo) ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.Assessment, error) {
	var out []*types.Assessment
	err := r.handle(tx).WithContext(ctx).
		Where("learning_path_id = ?", pathID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *assessmentRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool, page, pageSize int) ([]*types.Assessment, int64, error) {
	q := r.handle(tx).WithContext(ctx).Model(&types.Assessment{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.Assessment
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *assessmentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.Assessment{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *assessmentRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	h := r.handle(tx).WithContext(ctx)
	if err := h.Where("assessment_id = ?", id).Delete(&types.Question{}).Error; err != nil {
		return err
	}
	return h.Where("id = ?", id).Delete(&types.Assessment{}).Error
}

func (r *assessmentRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).Model(&types.Assessment{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *assessmentRepo) CountByCreator(ctx context.Context, tx *gorm.DB, createdBy uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.Assessment{}).
		Where("created_by = ?", createdBy).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
