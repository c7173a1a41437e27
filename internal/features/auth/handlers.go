package auth

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/result"
	"github.com/skillup-platform/skillup-backend/internal/services"
)

type Deps struct {
	DB         *gorm.DB
	Log        *logger.Logger
	Repos      *repos.Set
	Tokens     services.TokenService
	Email      services.EmailService
	AppBaseURL string
	RefreshTTL time.Duration
	VerifyTTL  time.Duration
	ResetTTL   time.Duration
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "auth")
	base := &deps{Deps: d}
	mediator.MustRegister[RegisterCommand, *TokenPair](m, &registerHandler{base})
	mediator.MustRegister[LoginCommand, *TokenPair](m, &loginHandler{base})
	mediator.MustRegister[RefreshCommand, *TokenPair](m, &refreshHandler{base})
	mediator.MustRegister[LogoutCommand, bool](m, &logoutHandler{base})
	mediator.MustRegister[VerifyEmailCommand, bool](m, &verifyEmailHandler{base})
	mediator.MustRegister[ForgotPasswordCommand, bool](m, &forgotPasswordHandler{base})
	mediator.MustRegister[ResetPasswordCommand, bool](m, &resetPasswordHandler{base})
	mediator.MustRegister[ChangePasswordCommand, bool](m, &changePasswordHandler{base})
}

func (d *deps) issueTokenPair(ctx context.Context, tx *gorm.DB, u *types.User) (*TokenPair, error) {
	access, err := d.Tokens.IssueAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}
	refresh, err := d.Tokens.NewOpaqueToken()
	if err != nil {
		return nil, err
	}
	_, err = d.Repos.Tokens.Create(ctx, tx, &types.UserToken{
		UserID:    u.ID,
		Kind:      types.TokenKindRefresh,
		Token:     refresh,
		ExpiresAt: time.Now().Add(d.RefreshTTL),
	})
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(d.Tokens.AccessTTL().Seconds()),
		User:         u,
	}, nil
}

type registerHandler struct{ *deps }

func (h *registerHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, cmd RegisterCommand) result.Result[*TokenPair] {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	exists, err := h.Repos.Users.EmailExists(ctx, nil, email)
	if err != nil {
		h.Log.Error("Failed to check email", "error", err)
		return result.Failure[*TokenPair]("failed to register")
	}
	if exists {
		return result.Failure[*TokenPair]("email already registered")
	}

	hash, err := h.Tokens.HashPassword(cmd.Password)
	if err != nil {
		h.Log.Error("Failed to hash password", "error", err)
		return result.Failure[*TokenPair]("failed to register")
	}

	var pair *TokenPair
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u := &types.User{
			FirstName:    strings.TrimSpace(cmd.FirstName),
			LastName:     strings.TrimSpace(cmd.LastName),
			Email:        email,
			PasswordHash: hash,
			Role:         types.RoleStudent,
			IsActive:     true,
		}
		if _, err := h.Repos.Users.Create(ctx, tx, u); err != nil {
			return err
		}

		verify, err := h.Tokens.NewOpaqueToken()
		if err != nil {
			return err
		}
		if _, err := h.Repos.Tokens.Create(ctx, tx, &types.UserToken{
			UserID:    u.ID,
			Kind:      types.TokenKindEmailVerification,
			Token:     verify,
			ExpiresAt: time.Now().Add(h.VerifyTTL),
		}); err != nil {
			return err
		}

		// Best effort; registration succeeds even if the mail provider is down.
		verifyURL := h.AppBaseURL + "/verify-email?token=" + verify
		if err := h.Email.SendEmailVerification(ctx, u.Email, u.FirstName, verifyURL); err != nil {
			h.Log.Warn("Failed to send verification email", "user_id", u.ID, "error", err)
		}

		pair, err = h.issueTokenPair(ctx, tx, u)
		return err
	})
	if err != nil {
		h.Log.Error("Registration failed", "error", err)
		return result.Failure[*TokenPair]("failed to register")
	}
	return result.Ok(pair)
}

type loginHandler struct{ *deps }

func (h *loginHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, cmd LoginCommand) result.Result[*TokenPair] {
	u, err := h.Repos.Users.GetByEmail(ctx, nil, cmd.Email)
	if err != nil {
		h.Log.Error("Failed to load user for login", "error", err)
		return result.Failure[*TokenPair]("failed to log in")
	}
	if u == nil || !h.Tokens.CheckPassword(u.PasswordHash, cmd.Password) {
		return result.Failure[*TokenPair]("invalid email or password")
	}
	if !u.IsActive {
		return result.Failure[*TokenPair]("account is deactivated")
	}

	var pair *TokenPair
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := h.Repos.Users.UpdateLastLogin(ctx, tx, u.ID, time.Now()); err != nil {
			return err
		}
		pair, err = h.issueTokenPair(ctx, tx, u)
		return err
	})
	if err != nil {
		h.Log.Error("Login failed", "user_id", u.ID, "error", err)
		return result.Failure[*TokenPair]("failed to log in")
	}
	return result.Ok(pair)
}

type refreshHandler struct{ *deps }

func (h *refreshHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, cmd RefreshCommand) result.Result[*TokenPair] {
	stored, err := h.Repos.Tokens.GetByToken(ctx, nil, types.TokenKindRefresh, cmd.RefreshToken)
	if err != nil {
		h.Log.Error("Failed to load refresh token", "error", err)
		return result.Failure[*TokenPair]("failed to refresh")
	}
	if stored == nil || stored.Expired(time.Now()) {
		return result.Failure[*TokenPair]("invalid or expired refresh token")
	}

	u, err := h.Repos.Users.GetByID(ctx, nil, stored.UserID)
	if err != nil {
		h.Log.Error("Failed to load user for refresh", "error", err)
		return result.Failure[*TokenPair]("failed to refresh")
	}
	if u == nil || !u.IsActive {
		return result.Failure[*TokenPair]("invalid or expired refresh token")
	}

	var pair *TokenPair
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Rotation: the presented token is consumed either way.
		if err := h.Repos.Tokens.DeleteByID(ctx, tx, stored.ID); err != nil {
			return err
		}
		pair, err = h.issueTokenPair(ctx, tx, u)
		return err
	})
	if err != nil {
		h.Log.Error("Refresh failed", "user_id", u.ID, "error", err)
		return result.Failure[*TokenPair]("failed to refresh")
	}
	return result.Ok(pair)
}

type logoutHandler struct{ *deps }

func (h *logoutHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, cmd LogoutCommand) result.Result[bool] {
	stored, err := h.Repos.Tokens.GetByToken(ctx, nil, types.TokenKindRefresh, cmd.RefreshToken)
	if err != nil {
		h.Log.Error("Failed to load refresh token for logout", "error", err)
		return result.Failure[bool]("failed to log out")
	}
	if stored == nil {
		// Already gone; logout is idempotent.
		return result.Ok(true)
	}
	if err := h.Repos.Tokens.DeleteByID(ctx, nil, stored.ID); err != nil {
		h.Log.Error("Failed to delete refresh token", "error", err)
		return result.Failure[bool]("failed to log out")
	}
	return result.Ok(true)
}

type verifyEmailHandler struct{ *deps }

func (h *verifyEmailHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, cmd VerifyEmailCommand) result.Result[bool] {
	stored, err := h.Repos.Tokens.GetByToken(ctx, nil, types.TokenKindEmailVerification, cmd.Token)
	if err != nil {
		h.Log.Error("Failed to load verification token", "error", err)
		return result.Failure[bool]("failed to verify email")
	}
	if stored == nil || stored.Expired(time.Now()) {
		return result.Failure[bool]("invalid or expired verification token")
	}

	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := h.Repos.Users.SetEmailVerified(ctx, tx, stored.UserID); err != nil {
			return err
		}
		return h.Repos.Tokens.DeleteByID(ctx, tx, stored.ID)
	})
	if err != nil {
		h.Log.Error("Email verification failed", "user_id", stored.UserID, "error", err)
		return result.Failure[bool]("failed to verify email")
	}

	if u, err := h.Repos.Users.GetByID(ctx, nil, stored.UserID); err == nil && u != nil {
		if err := h.Email.SendWelcome(ctx, u.Email, u.FirstName); err != nil {
			h.Log.Warn("Failed to send welcome email", "user_id", u.ID, "error", err)
		}
	}
	return result.Ok(true)
}

type forgotPasswordHandler struct{ *deps }

func (h *forgotPasswordHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, cmd ForgotPasswordCommand) result.Result[bool] {
	u, err := h.Repos.Users.GetByEmail(ctx, nil, cmd.Email)
	if err != nil {
		h.Log.Error("Failed to load user for password reset", "error", err)
		return result.Failure[bool]("failed to request password reset")
	}
	if u == nil {
		// Do not reveal whether the address exists.
		return result.Ok(true)
	}

	reset, err := h.Tokens.NewOpaqueToken()
	if err != nil {
		h.Log.Error("Failed to mint reset token", "error", err)
		return result.Failure[bool]("failed to request password reset")
	}
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := h.Repos.Tokens.DeleteForUser(ctx, tx, u.ID, types.TokenKindPasswordReset); err != nil {
			return err
		}
		_, err := h.Repos.Tokens.Create(ctx, tx, &types.UserToken{
			UserID:    u.ID,
			Kind:      types.TokenKindPasswordReset,
			Token:     reset,
			ExpiresAt: time.Now().Add(h.ResetTTL),
		})
		return err
	})
	if err != nil {
		h.Log.Error("Failed to store reset token", "user_id", u.ID, "error", err)
		return result.Failure[bool]("failed to request password reset")
	}

	resetURL := h.AppBaseURL + "/reset-password?token=" + reset
	if err := h.Email.SendPasswordReset(ctx, u.Email, u.FirstName, resetURL); err != nil {
		h.Log.Warn("Failed to send reset email", "user_id", u.ID, "error", err)
	}
	return result.Ok(true)
}

type resetPasswordHandler struct{ *deps }

func (h *resetPasswordHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, cmd ResetPasswordCommand) result.Result[bool] {
	stored, err := h.Repos.Tokens.GetByToken(ctx, nil, types.TokenKindPasswordReset, cmd.Token)
	if err != nil {
		h.Log.Error("Failed to load reset token", "error", err)
		return result.Failure[bool]("failed to reset password")
	}
	if stored == nil || stored.Expired(time.Now()) {
		return result.Failure[bool]("invalid or expired reset token")
	}

	hash, err := h.Tokens.HashPassword(cmd.NewPassword)
	if err != nil {
		h.Log.Error("Failed to hash password", "error", err)
		return result.Failure[bool]("failed to reset password")
	}

	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := h.Repos.Users.UpdatePassword(ctx, tx, stored.UserID, hash); err != nil {
			return err
		}
		if err := h.Repos.Tokens.DeleteByID(ctx, tx, stored.ID); err != nil {
			return err
		}
		// All sessions end when the password changes.
		return h.Repos.Tokens.DeleteForUser(ctx, tx, stored.UserID, types.TokenKindRefresh)
	})
	if err != nil {
		h.Log.Error("Password reset failed", "user_id", stored.UserID, "error", err)
		return result.Failure[bool]("failed to reset password")
	}
	return result.Ok(true)
}

type changePasswordHandler struct{ *deps }

func (h *changePasswordHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd ChangePasswordCommand) result.Result[bool] {
	if !rc.Authenticated() {
		return result.Failure[bool]("unauthorized")
	}
	u, err := h.Repos.Users.GetByID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load user", "error", err)
		return result.Failure[bool]("failed to change password")
	}
	if u == nil {
		return result.NotFound[bool]("user")
	}
	if !h.Tokens.CheckPassword(u.PasswordHash, cmd.CurrentPassword) {
		return result.Failure[bool]("current password is incorrect")
	}

	hash, err := h.Tokens.HashPassword(cmd.NewPassword)
	if err != nil {
		h.Log.Error("Failed to hash password", "error", err)
		return result.Failure[bool]("failed to change password")
	}
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := h.Repos.Users.UpdatePassword(ctx, tx, u.ID, hash); err != nil {
			return err
		}
		return h.Repos.Tokens.DeleteForUser(ctx, tx, u.ID, types.TokenKindRefresh)
	})
	if err != nil {
		h.Log.Error("Password change failed", "user_id", u.ID, "error", err)
		return result.Failure[bool]("failed to change password")
	}
	return result.Ok(true)
}
