package users

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type Deps struct {
	DB    *gorm.DB
	Log   *logger.Logger
	Repos *repos.Set
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "users")
	base := &deps{Deps: d}
	mediator.MustRegister[GetMeQuery, *Me](m, &getMeHandler{base})
	mediator.MustRegister[UpdateMeCommand, *types.User](m, &updateMeHandler{base})
	mediator.MustRegister[UpsertProfileCommand, *types.UserProfile](m, &upsertProfileHandler{base})
	mediator.MustRegister[GetProfileQuery, *types.UserProfile](m, &getProfileHandler{base})
	mediator.MustRegister[ListUsersQuery, result.Page[*types.User]](m, &listUsersHandler{base})
	mediator.MustRegister[GetUserQuery, *types.User](m, &getUserHandler{base})
	mediator.MustRegister[SetUserRoleCommand, bool](m, &setUserRoleHandler{base})
	mediator.MustRegister[SetUserActiveCommand, bool](m, &setUserActiveHandler{base})
}

type getMeHandler struct{ *deps }

func (h *getMeHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ GetMeQuery) result.Result[*Me] {
	if !rc.Authenticated() {
		return result.Failure[*Me]("unauthorized")
	}
	u, err := h.Repos.Users.GetByID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load user", "error", err)
		return result.Failure[*Me]("failed to load account")
	}
	if u == nil {
		return result.NotFound[*Me]("user")
	}
	profile, err := h.Repos.Profiles.GetByUserID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load profile", "error", err)
		return result.Failure[*Me]("failed to load account")
	}
	return result.Ok(&Me{User: u, Profile: profile})
}

type updateMeHandler struct{ *deps }

func (h *updateMeHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdateMeCommand) result.Result[*types.User] {
	if !rc.Authenticated() {
		return result.Failure[*types.User]("unauthorized")
	}

	updates := map[string]any{}
	if cmd.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*cmd.FirstName)
	}
	if cmd.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*cmd.LastName)
	}
	if cmd.PhoneNumber != nil {
		updates["phone_number"] = strings.TrimSpace(*cmd.PhoneNumber)
	}
	if cmd.Specialization != nil {
		updates["specialization"] = strings.TrimSpace(*cmd.Specialization)
	}
	if cmd.StudyYear != nil {
		updates["study_year"] = *cmd.StudyYear
	}
	if cmd.CareerGoals != nil {
		updates["career_goals"] = strings.TrimSpace(*cmd.CareerGoals)
	}

	if len(updates) > 0 {
		if err := h.Repos.Users.UpdateFields(ctx, nil, rc.UserID, updates); err != nil {
			h.Log.Error("Failed to update user", "user_id", rc.UserID, "error", err)
			return result.Failure[*types.User]("failed to update account")
		}
	}

	u, err := h.Repos.Users.GetByID(ctx, nil, rc.UserID)
	if err != nil || u == nil {
		h.Log.Error("Failed to reload user", "user_id", rc.UserID, "error", err)
		return result.Failure[*types.User]("failed to update account")
	}
	return result.Ok(u)
}

type upsertProfileHandler struct{ *deps }

func (h *upsertProfileHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpsertProfileCommand) result.Result[*types.UserProfile] {
	if !rc.Authenticated() {
		return result.Failure[*types.UserProfile]("unauthorized")
	}

	existing, err := h.Repos.Profiles.GetByUserID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load profile", "user_id", rc.UserID, "error", err)
		return result.Failure[*types.UserProfile]("failed to update profile")
	}

	p := existing
	if p == nil {
		p = &types.UserProfile{UserID: rc.UserID}
	}
	if cmd.Bio != nil {
		p.Bio = strings.TrimSpace(*cmd.Bio)
	}
	if cmd.LinkedInURL != nil {
		p.LinkedInURL = *cmd.LinkedInURL
	}
	if cmd.GitHubURL != nil {
		p.GitHubURL = *cmd.GitHubURL
	}
	if cmd.PortfolioURL != nil {
		p.PortfolioURL = *cmd.PortfolioURL
	}
	if cmd.ProfilePictureURL != nil {
		p.ProfilePictureURL = *cmd.ProfilePictureURL
	}
	if cmd.Skills != nil {
		p.Skills = cmd.Skills
	}
	if cmd.Interests != nil {
		p.Interests = cmd.Interests
	}
	if cmd.Certifications != nil {
		p.Certifications = cmd.Certifications
	}

	saved, err := h.Repos.Profiles.Upsert(ctx, nil, p)
	if err != nil {
		h.Log.Error("Failed to upsert profile", "user_id", rc.UserID, "error", err)
		return result.Failure[*types.UserProfile]("failed to update profile")
	}
	return result.Ok(saved)
}

type getProfileHandler struct{ *deps }

func (h *getProfileHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ GetProfileQuery) result.Result[*types.UserProfile] {
	if !rc.Authenticated() {
		return result.Failure[*types.UserProfile]("unauthorized")
	}
	p, err := h.Repos.Profiles.GetByUserID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load profile", "user_id", rc.UserID, "error", err)
		return result.Failure[*types.UserProfile]("failed to load profile")
	}
	if p == nil {
		return result.NotFound[*types.UserProfile]("profile")
	}
	return result.Ok(p)
}

type listUsersHandler struct{ *deps }

func (h *listUsersHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q ListUsersQuery) result.Result[result.Page[*types.User]] {
	if rc.Role != string(types.RoleAdmin) {
		return result.Failure[result.Page[*types.User]]("forbidden")
	}
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	users, total, err := h.Repos.Users.List(ctx, nil, types.Role(q.Role), q.Search, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list users", "error", err)
		return result.Failure[result.Page[*types.User]]("failed to list users")
	}
	return result.Ok(result.NewPage(users, total, page, pageSize))
}

type getUserHandler struct{ *deps }

func (h *getUserHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q GetUserQuery) result.Result[*types.User] {
	if rc.Role != string(types.RoleAdmin) {
		return result.Failure[*types.User]("forbidden")
	}
	u, err := h.Repos.Users.GetByID(ctx, nil, q.UserID)
	if err != nil {
		h.Log.Error("Failed to load user", "error", err)
		return result.Failure[*types.User]("failed to load user")
	}
	if u == nil {
		return result.NotFound[*types.User]("user")
	}
	return result.Ok(u)
}

type setUserRoleHandler struct{ *deps }

func (h *setUserRoleHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd SetUserRoleCommand) result.Result[bool] {
	if rc.Role != string(types.RoleAdmin) {
		return result.Failure[bool]("forbidden")
	}
	exists, err := h.Repos.Users.Exists(ctx, nil, cmd.UserID)
	if err != nil {
		h.Log.Error("Failed to check user", "error", err)
		return result.Failure[bool]("failed to update role")
	}
	if !exists {
		return result.NotFound[bool]("user")
	}
	if err := h.Repos.Users.SetRole(ctx, nil, cmd.UserID, types.Role(cmd.Role)); err != nil {
		h.Log.Error("Failed to set role", "user_id", cmd.UserID, "error", err)
		return result.Failure[bool]("failed to update role")
	}
	return result.Ok(true)
}

type setUserActiveHandler struct{ *deps }

func (h *setUserActiveHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd SetUserActiveCommand) result.Result[bool] {
	if rc.Role != string(types.RoleAdmin) {
		return result.Failure[bool]("forbidden")
	}
	if cmd.UserID == rc.UserID && !cmd.Active {
		return result.Failure[bool]("cannot deactivate your own account")
	}
	exists, err := h.Repos.Users.Exists(ctx, nil, cmd.UserID)
	if err != nil {
		h.Log.Error("Failed to check user", "error", err)
		return result.Failure[bool]("failed to update account status")
	}
	if !exists {
		return result.NotFound[bool]("user")
	}
	if err := h.Repos.Users.SetActive(ctx, nil, cmd.UserID, cmd.Active); err != nil {
		h.Log.Error("Failed to set active flag", "user_id", cmd.UserID, "error", err)
		return result.Failure[bool]("failed to update account status")
	}
	return result.Ok(true)
}
