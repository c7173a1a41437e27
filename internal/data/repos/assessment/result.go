package assessment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type ResultRepo interface {
	Create(ctx context.Context, tx *gorm.DB, res *types.AssessmentResult) (*types.AssessmentResult, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AssessmentResult, error)
	GetWithAnswers(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AssessmentResult, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page, pageSize int) ([]*types.AssessmentResult, int64, error)
	ListByUserAndAssessment(ctx context.Context, tx *gorm.DB, userID, assessmentID uuid.UUID) ([]*types.AssessmentResult, error)
	BestScoreByUser(ctx context.Context, tx *gorm.DB, userID, assessmentID uuid.UUID) (*types.AssessmentResult, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	CountPassedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	AverageScoreByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (float64, error)
}

type resultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResultRepo(db *gorm.DB, baseLog *logger.Logger) ResultRepo {
	return &resultRepo{db: db, log: baseLog.With("repo", "ResultRepo")}
}

func (r *resultRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *resultRepo) Create(ctx context.Context, tx *gorm.DB, res *types.AssessmentResult) (*types.AssessmentResult, error) {
	if err := r.handle(tx).WithContext(ctx).Create(res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resultRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AssessmentResult, error) {
	var res types.AssessmentResult
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&res).Error
	if err != nil {
		return nil, err
	}
	if res.ID == uuid.Nil {
		return nil, nil
	}
	return &res, nil
}

func (r *resultRepo) GetWithAnswers(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AssessmentResult, error) {
	var res types.AssessmentResult
	err := r.handle(tx).WithContext(ctx).
		Preload("Answers").
		Where("id = ?", id).Limit(1).Find(&res).Error
	if err != nil {
		return nil, err
	}
	if res.ID == uuid.Nil {
		return nil, nil
	}
	return &res, nil
}

func (r *resultRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, page, pageSize int) ([]*types.AssessmentResult, int64, error) {
	q := r.handle(tx).WithContext(ctx).
		Model(&types.AssessmentResult{}).
		Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.AssessmentResult
	err := q.Order("completed_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *resultRepo) ListByUserAndAssessment(ctx context.Context, tx *gorm.DB, userID, assessmentID uuid.UUID) ([]*types.AssessmentResult, error) {
	var out []*types.AssessmentResult
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Order("completed_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resultRepo) BestScoreByUser(ctx context.Context, tx *gorm.DB, userID, assessmentID uuid.UUID) (*types.AssessmentResult, error) {
	var res types.AssessmentResult
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Order("score DESC").
		Limit(1).Find(&res).Error
	if err != nil {
		return nil, err
	}
	if res.ID == uuid.Nil {
		return nil, nil
	}
	return &res, nil
}

func (r *resultRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.AssessmentResult{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *resultRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.AssessmentResult{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *resultRepo) CountPassedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.AssessmentResult{}).
		Where("user_id = ? AND is_passed = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *resultRepo) AverageScoreByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (float64, error) {
	var avg float64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.AssessmentResult{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}
