package assessment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type AnswerRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, answers []*types.UserAnswer) error
	ListByResult(ctx context.Context, tx *gorm.DB, resultID uuid.UUID) ([]*types.UserAnswer, error)
}

type answerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return &answerRepo{db: db, log: baseLog.With("repo", "AnswerRepo")}
}

func (r *answerRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *answerRepo) CreateBatch(ctx context.Context, tx *gorm.DB, answers []*types.UserAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).Create(answers).Error
}

func (r *answerRepo) ListByResult(ctx context.Context, tx *gorm.DB, resultID uuid.UUID) ([]*types.UserAnswer, error) {
	var out []*types.UserAnswer
	err := r.handle(tx).WithContext(ctx).
		Where("assessment_result_id = ?", resultID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
