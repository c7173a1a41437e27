package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type NotificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, n *types.Notification) (*types.Notification, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, ns []*types.Notification) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notification, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]*types.Notification, int64, error)
	CountUnread(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, tx *gorm.DB, userID uuid.UUID, at time.Time) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteOlderThan(ctx context.Context, tx *gorm.DB, cutoff time.Time) (int64, error)
}

type notificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	return &notificationRepo{db: db, log: baseLog.With("repo", "NotificationRepo")}
}

func (r *notificationRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *notificationRepo) Create(ctx context.Context, tx *gorm.DB, n *types.Notification) (*types.Notification, error) {
	if err := r.handle(tx).WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (r *notificationRepo) CreateBatch(ctx context.Context, tx *gorm.DB, ns []*types.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).CreateInBatches(ns, 200).Error
}

func (r *notificationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notification, error) {
	var n types.Notification
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&n).Error
	if err != nil {
		return nil, err
	}
	if n.ID == uuid.Nil {
		return nil, nil
	}
	return &n, nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]*types.Notification, int64, error) {
	q := r.handle(tx).WithContext(ctx).
		Model(&types.Notification{}).
		Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.Notification
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *notificationRepo) CountUnread(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error {
	return r.handle(tx).WithContext(ctx).
		Model(&types.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_read": true, "read_at": at}).Error
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, tx *gorm.DB, userID uuid.UUID, at time.Time) (int64, error) {
	res := r.handle(tx).WithContext(ctx).
		Model(&types.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}

func (r *notificationRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).Where("id = ?", id).Delete(&types.Notification{}).Error
}

func (r *notificationRepo) DeleteOlderThan(ctx context.Context, tx *gorm.DB, cutoff time.Time) (int64, error) {
	res := r.handle(tx).WithContext(ctx).
		Where("created_at < ? AND is_read = ?", cutoff, true).
		Delete(&types.Notification{})
	return res.RowsAffected, res.Error
}
