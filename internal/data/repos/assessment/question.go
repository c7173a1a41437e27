package assessment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type QuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, q *types.Question) (*types.Question, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, qs []*types.Question) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Question, error)
	ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.Question, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	CountByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) (int64, error)
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return &questionRepo{db: db, log: baseLog.With("repo", "QuestionRepo")}
}

func (r *questionRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *questionRepo) Create(ctx context.Context, tx *gorm.DB, q *types.Question) (*types.Question, error) {
	if err := r.handle(tx).WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *questionRepo) CreateBatch(ctx context.Context, tx *gorm.DB, qs []*types.Question) error {
	if len(qs) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).Create(qs).Error
}

func (r *questionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Question, error) {
	var q types.Question
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&q).Error
	if err != nil {
		return nil, err
	}
	if q.ID == uuid.Nil {
		return nil, nil
	}
	return &q, nil
}

func (r *questionRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.Question, error) {
	var out []*types.Question
	err := r.handle(tx).WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("display_order ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.Question{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *questionRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).Where("id = ?", id).Delete(&types.Question{}).Error
}

func (r *questionRepo) CountByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.Question{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
