package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, u *types.User) (*types.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	List(ctx context.Context, tx *gorm.DB, role types.Role, search string, page, pageSize int) ([]*types.User, int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
	UpdatePassword(ctx context.Context, tx *gorm.DB, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error
	SetEmailVerified(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	SetRole(ctx context.Context, tx *gorm.DB, id uuid.UUID, role types.Role) error
	SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) error
	CountByRole(ctx context.Context, tx *gorm.DB, role types.Role) (int64, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, u *types.User) (*types.User, error) {
	if err := r.handle(tx).WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
	var u types.User
	err := r.handle(tx).WithContext(ctx).Where("id = ?", id).Limit(1).Find(&u).Error
	if err != nil {
		return nil, err
	}
	if u.ID == uuid.Nil {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	var u types.User
	err := r.handle(tx).WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Limit(1).Find(&u).Error
	if err != nil {
		return nil, err
	}
	if u.ID == uuid.Nil {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := r.handle(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepo) List(ctx context.Context, tx *gorm.DB, role types.Role, search string, page, pageSize int) ([]*types.User, int64, error) {
	q := r.handle(tx).WithContext(ctx).Model(&types.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.User
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *userRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.handle(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *userRepo) UpdatePassword(ctx context.Context, tx *gorm.DB, id uuid.UUID, passwordHash string) error {
	return r.UpdateFields(ctx, tx, id, map[string]any{"password_hash": passwordHash})
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error {
	return r.UpdateFields(ctx, tx, id, map[string]any{"last_login_at": at})
}

func (r *userRepo) SetEmailVerified(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.UpdateFields(ctx, tx, id, map[string]any{"is_email_verified": true})
}

func (r *userRepo) SetRole(ctx context.Context, tx *gorm.DB, id uuid.UUID, role types.Role) error {
	return r.UpdateFields(ctx, tx, id, map[string]any{"role": role})
}

func (r *userRepo) SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) error {
	return r.UpdateFields(ctx, tx, id, map[string]any{"is_active": active})
}

func (r *userRepo) CountByRole(ctx context.Context, tx *gorm.DB, role types.Role) (int64, error) {
	var count int64
	q := r.handle(tx).WithContext(ctx).Model(&types.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
