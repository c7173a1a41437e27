package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type ProgressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, p *types.UserProgress) (*types.UserProgress, error)
	GetPair(ctx context.Context, tx *gorm.DB, userID, contentID uuid.UUID) (*types.UserProgress, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	ListByUserAndContents(ctx context.Context, tx *gorm.DB, userID uuid.UUID, contentIDs []uuid.UUID) ([]*types.UserProgress, error)
	CountCompletedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	SumTimeSpentByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	return &progressRepo{db: db, log: baseLog.With("repo", "ProgressRepo")}
}

func (r *progressRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *progressRepo) Create(ctx context.Context, tx *gorm.DB, p *types.UserProgress) (*types.UserProgress, error) {
	if err := r.handle(tx).WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *progressRepo) GetPair(ctx context.Context, tx *gorm.DB, userID, contentID uuid.UUID) (*types.UserProgress, error) {
	var p types.UserProgress
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Limit(1).Find(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, nil
	}
	return &p, nil
}

func (r *progressRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.UserProgress{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *progressRepo) ListByUserAndContents(ctx context.Context, tx *gorm.DB, userID uuid.UUID, contentIDs []uuid.UUID) ([]*types.UserProgress, error) {
	var out []*types.UserProgress
	if len(contentIDs) == 0 {
		return out, nil
	}
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND content_id IN ?", userID, contentIDs).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *progressRepo) CountCompletedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.UserProgress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *progressRepo) SumTimeSpentByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.UserProgress{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(time_spent_minutes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
