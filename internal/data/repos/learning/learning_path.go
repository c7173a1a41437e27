package learning

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

// PathFilter narrows List results. Zero values mean "no filter".
type PathFilter struct {
	Category   string
	Difficulty types.DifficultyLevel
	ActiveOnly bool
	CreatedBy  uuid.UUID
}

type LearningPathRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lp *types.LearningPath) (*types.LearningPath, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPath, error)
	GetWithContents(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPath, error)
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	List(ctx context.Context, tx *gorm.DB, f PathFilter, page, pageSize int) ([]*types.LearningPath, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB, f PathFilter) (int64, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	return &learningPathRepo{db: db, log: baseLog.With("repo", "LearningPathRepo")}
}

func (r *learningPathRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *learningPathRepo) Create(ctx context.Context, tx *gorm.DB, lp *types.LearningPath) (*types.LearningPath, error) {
	if err := r.handle(tx).WithContext(ctx).Create(lp).Error; err != nil {
		return nil, err
	}
	return lp, nil
}

func (r *learningPathRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPath, error) {
	var lp types.LearningPath
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&lp).Error
	if err != nil {
		return nil, err
	}
	if lp.ID == uuid.Nil {
		return nil, nil
	}
	return &lp, nil
}

func (r *learningPathRepo) GetWithContents(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPath, error) {
	var lp types.LearningPath
	err := r.handle(tx).WithContext(ctx).
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("id = ?", id).Limit(1).Find(&lp).Error
	if err != nil {
		return nil, err
	}
	if lp.ID == uuid.Nil {
		return nil, nil
	}
	return &lp, nil
}

func (r *learningPathRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.LearningPath{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *learningPathRepo) applyFilter(q *gorm.DB, f PathFilter) *gorm.DB {
	if c := strings.TrimSpace(f.Category); c != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(c))
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty_level = ?", f.Difficulty)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.CreatedBy != uuid.Nil {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	return q
}

func (r *learningPathRepo) List(ctx context.Context, tx *gorm.DB, f PathFilter, page, pageSize int) ([]*types.LearningPath, int64, error) {
	q := r.applyFilter(r.handle(tx).WithContext(ctx).Model(&types.LearningPath{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.LearningPath
	err := q.Order("display_order ASC, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *learningPathRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.LearningPath{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *learningPathRepo) SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) error {
	return r.UpdateFields(ctx, tx, id, map[string]any{"is_active": active})
}

// Delete soft-deletes the path and its contents; enrollments keep their rows
// so history survives.
func (r *learningPathRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	h := r.handle(tx).WithContext(ctx)
	if err := h.Where("learning_path_id = ?", id).Delete(&types.Content{}).Error; err != nil {
		return err
	}
	return h.Where("id = ?", id).Delete(&types.LearningPath{}).Error
}

func (r *learningPathRepo) Count(ctx context.Context, tx *gorm.DB, f PathFilter) (int64, error) {
	var count int64
	q := r.applyFilter(r.handle(tx).WithContext(ctx).Model(&types.LearningPath{}), f)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
