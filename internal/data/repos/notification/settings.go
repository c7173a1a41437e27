package notification

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type SettingsRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.NotificationSettings, error)
	Upsert(ctx context.Context, tx *gorm.DB, s *types.NotificationSettings) (*types.NotificationSettings, error)
}

type settingsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSettingsRepo(db *gorm.DB, baseLog *logger.Logger) SettingsRepo {
	return &settingsRepo{db: db, log: baseLog.With("repo", "NotificationSettingsRepo")}
}

func (r *settingsRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *settingsRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.NotificationSettings, error) {
	var s types.NotificationSettings
	err := r.handle(tx).WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == uuid.Nil {
		return nil, nil
	}
	return &s, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, tx *gorm.DB, s *types.NotificationSettings) (*types.NotificationSettings, error) {
	err := r.handle(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email_notifications", "push_notifications",
				"learning_reminders", "assessment_notifications",
				"system_updates", "marketing_emails",
				"updated_at",
			}),
		}).
		Create(s).Error
	if err != nil {
		return nil, err
	}
	return s, nil
}
