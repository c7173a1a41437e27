package learning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type EnrollmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, e *types.UserLearningPath) (*types.UserLearningPath, error)
	GetPair(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*types.UserLearningPath, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserLearningPath, error)
	ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.UserLearningPath, error)
	UpdateProgress(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.PathStatus, pct int, completedAt *time.Time) error
	CountByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) (int64, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status types.PathStatus) (int64, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountByPathCreator(ctx context.Context, tx *gorm.DB, createdBy uuid.UUID) (int64, error)
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	return &enrollmentRepo{db: db, log: baseLog.With("repo", "EnrollmentRepo")}
}

func (r *enrollmentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *enrollmentRepo) Create(ctx context.Context, tx *gorm.DB, e *types.UserLearningPath) (*types.UserLearningPath, error) {
	if err := r.handle(tx).WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (r *enrollmentRepo) GetPair(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*types.UserLearningPath, error) {
	var e types.UserLearningPath
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND learning_path_id = ?", userID, pathID).
		Limit(1).Find(&e).Error
	if err != nil {
		return nil, err
	}
	if e.ID == uuid.Nil {
		return nil, nil
	}
	return &e, nil
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserLearningPath, error) {
	var out []*types.UserLearningPath
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *enrollmentRepo) ListByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.UserLearningPath, error) {
	var out []*types.UserLearningPath
	err := r.handle(tx).WithContext(ctx).
		Where("learning_path_id = ?", pathID).
		Order("enrolled_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *enrollmentRepo) UpdateProgress(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.PathStatus, pct int, completedAt *time.Time) error {
	return r.handle(tx).WithContext(ctx).
		Model(&types.UserLearningPath{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              status,
			"progress_percentage": pct,
			"completed_at":        completedAt,
		}).Error
}

func (r *enrollmentRepo) CountByPath(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.UserLearningPath{}).
		Where("learning_path_id = ?", pathID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *enrollmentRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.UserLearningPath{}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByPathCreator counts enrollments across every path the given user
// created, regardless of enrollment status.
func (r *enrollmentRepo) CountByPathCreator(ctx context.Context, tx *gorm.DB, createdBy uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.UserLearningPath{}).
		Joins("JOIN learning_path ON learning_path.id = user_learning_path.learning_path_id").
		Where("learning_path.created_by = ?", createdBy).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *enrollmentRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status types.PathStatus) (int64, error) {
	var count int64
	q := r.handle(tx).WithContext(ctx).
		Model(&types.UserLearningPath{}).
		Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
