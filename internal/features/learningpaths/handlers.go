package learningpaths

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/result"
	"github.com/skillup-platform/skillup-backend/internal/services"
)

const listCacheTTL = 2 * time.Minute

type Deps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Repos  *repos.Set
	Cache  services.CacheService
	Notify services.NotificationService
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "learningpaths")
	base := &deps{Deps: d}
	mediator.MustRegister[CreatePathCommand, *types.LearningPath](m, &createPathHandler{base})
	mediator.MustRegister[UpdatePathCommand, *types.LearningPath](m, &updatePathHandler{base})
	mediator.MustRegister[DeletePathCommand, bool](m, &deletePathHandler{base})
	mediator.MustRegister[GetPathQuery, *PathDetail](m, &getPathHandler{base})
	mediator.MustRegister[ListPathsQuery, result.Page[*types.LearningPath]](m, &listPathsHandler{base})
	mediator.MustRegister[EnrollCommand, *types.UserLearningPath](m, &enrollHandler{base})
	mediator.MustRegister[MyPathsQuery, []*EnrolledPath](m, &myPathsHandler{base})
	mediator.MustRegister[UpdateEnrollmentStatusCommand, *types.UserLearningPath](m, &updateEnrollmentStatusHandler{base})
}

func canManagePaths(rc ctxutil.RequestContext) bool {
	return rc.Role == string(types.RoleAdmin) || rc.Role == string(types.RoleCreator)
}

func (d *deps) invalidateListCache(ctx context.Context) {
	// Paged cache keys are unenumerable; bump the generation instead.
	if err := d.Cache.Delete(ctx, "paths:generation"); err != nil {
		d.Log.Warn("Failed to invalidate path list cache", "error", err)
	}
}

func (d *deps) listCacheKey(ctx context.Context, q ListPathsQuery, page, pageSize int) string {
	var gen int64
	found, err := d.Cache.Get(ctx, "paths:generation", &gen)
	if err != nil || !found {
		gen = time.Now().UnixNano()
		_ = d.Cache.Set(ctx, "paths:generation", gen, 0)
	}
	return fmt.Sprintf("paths:list:%d:%s:%s:%d:%d", gen, q.Category, q.Difficulty, page, pageSize)
}

type createPathHandler struct{ *deps }

func (h *createPathHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd CreatePathCommand) result.Result[*types.LearningPath] {
	if !canManagePaths(rc) {
		return result.Failure[*types.LearningPath]("forbidden")
	}

	p := &types.LearningPath{
		Title:              strings.TrimSpace(cmd.Title),
		Description:        cmd.Description,
		ImageURL:           cmd.ImageURL,
		Category:           strings.TrimSpace(cmd.Category),
		DifficultyLevel:    types.DifficultyLevel(cmd.DifficultyLevel),
		EstimatedHours:     cmd.EstimatedHours,
		Prerequisites:      datatypes.JSONSlice[string](cmd.Prerequisites),
		LearningObjectives: datatypes.JSONSlice[string](cmd.LearningObjectives),
		IsActive:           true,
		DisplayOrder:       cmd.DisplayOrder,
		CreatedBy:          rc.UserID,
	}
	created, err := h.Repos.Paths.Create(ctx, nil, p)
	if err != nil {
		h.Log.Error("Failed to create learning path", "error", err)
		return result.Failure[*types.LearningPath]("failed to create learning path")
	}
	h.invalidateListCache(ctx)
	return result.Ok(created)
}

type updatePathHandler struct{ *deps }

func (h *updatePathHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdatePathCommand) result.Result[*types.LearningPath] {
	if !canManagePaths(rc) {
		return result.Failure[*types.LearningPath]("forbidden")
	}
	existing, err := h.Repos.Paths.GetByID(ctx, nil, cmd.PathID)
	if err != nil {
		h.Log.Error("Failed to load learning path", "error", err)
		return result.Failure[*types.LearningPath]("failed to update learning path")
	}
	if existing == nil {
		return result.NotFound[*types.LearningPath]("learning path")
	}
	if rc.Role != string(types.RoleAdmin) && existing.CreatedBy != rc.UserID {
		return result.Failure[*types.LearningPath]("forbidden")
	}

	updates := map[string]any{}
	if cmd.Title != nil {
		updates["title"] = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		updates["description"] = *cmd.Description
	}
	if cmd.ImageURL != nil {
		updates["image_url"] = *cmd.ImageURL
	}
	if cmd.Category != nil {
		updates["category"] = strings.TrimSpace(*cmd.Category)
	}
	if cmd.DifficultyLevel != nil {
		updates["difficulty_level"] = *cmd.DifficultyLevel
	}
	if cmd.EstimatedHours != nil {
		updates["estimated_hours"] = *cmd.EstimatedHours
	}
	if cmd.Prerequisites != nil {
		updates["prerequisites"] = datatypes.JSONSlice[string](cmd.Prerequisites)
	}
	if cmd.LearningObjectives != nil {
		updates["learning_objectives"] = datatypes.JSONSlice[string](cmd.LearningObjectives)
	}
	if cmd.DisplayOrder != nil {
		updates["display_order"] = *cmd.DisplayOrder
	}
	if cmd.IsActive != nil {
		updates["is_active"] = *cmd.IsActive
	}

	if err := h.Repos.Paths.UpdateFields(ctx, nil, cmd.PathID, updates); err != nil {
		h.Log.Error("Failed to update learning path", "path_id", cmd.PathID, "error", err)
		return result.Failure[*types.LearningPath]("failed to update learning path")
	}
	h.invalidateListCache(ctx)

	updated, err := h.Repos.Paths.GetByID(ctx, nil, cmd.PathID)
	if err != nil || updated == nil {
		h.Log.Error("Failed to reload learning path", "path_id", cmd.PathID, "error", err)
		return result.Failure[*types.LearningPath]("failed to update learning path")
	}
	return result.Ok(updated)
}

type deletePathHandler struct{ *deps }

func (h *deletePathHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DeletePathCommand) result.Result[bool] {
	if !canManagePaths(rc) {
		return result.Failure[bool]("forbidden")
	}
	existing, err := h.Repos.Paths.GetByID(ctx, nil, cmd.PathID)
	if err != nil {
		h.Log.Error("Failed to load learning path", "error", err)
		return result.Failure[bool]("failed to delete learning path")
	}
	if existing == nil {
		return result.NotFound[bool]("learning path")
	}
	if rc.Role != string(types.RoleAdmin) && existing.CreatedBy != rc.UserID {
		return result.Failure[bool]("forbidden")
	}

	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return h.Repos.Paths.Delete(ctx, tx, cmd.PathID)
	})
	if err != nil {
		h.Log.Error("Failed to delete learning path", "path_id", cmd.PathID, "error", err)
		return result.Failure[bool]("failed to delete learning path")
	}
	h.invalidateListCache(ctx)
	return result.Ok(true)
}

type getPathHandler struct{ *deps }

func (h *getPathHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q GetPathQuery) result.Result[*PathDetail] {
	p, err := h.Repos.Paths.GetWithContents(ctx, nil, q.PathID)
	if err != nil {
		h.Log.Error("Failed to load learning path", "error", err)
		return result.Failure[*PathDetail]("failed to load learning path")
	}
	if p == nil || (!p.IsActive && !canManagePaths(rc)) {
		return result.NotFound[*PathDetail]("learning path")
	}

	detail := &PathDetail{Path: p}
	if count, err := h.Repos.Enrollments.CountByPath(ctx, nil, p.ID); err == nil {
		detail.EnrolledCount = count
	}
	if rc.Authenticated() {
		if e, err := h.Repos.Enrollments.GetPair(ctx, nil, rc.UserID, p.ID); err == nil {
			detail.Enrollment = e
		}
	}
	return result.Ok(detail)
}

type listPathsHandler struct{ *deps }

func (h *listPathsHandler) Handle(ctx context.Context, _ ctxutil.RequestContext, q ListPathsQuery) result.Result[result.Page[*types.LearningPath]] {
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)

	key := h.listCacheKey(ctx, q, page, pageSize)
	var cached result.Page[*types.LearningPath]
	if found, err := h.Cache.Get(ctx, key, &cached); err == nil && found {
		return result.Ok(cached)
	}

	f := repos.PathFilter{
		Category:   q.Category,
		Difficulty: types.DifficultyLevel(q.Difficulty),
		ActiveOnly: true,
	}
	paths, total, err := h.Repos.Paths.List(ctx, nil, f, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list learning paths", "error", err)
		return result.Failure[result.Page[*types.LearningPath]]("failed to list learning paths")
	}

	pageOut := result.NewPage(paths, total, page, pageSize)
	if err := h.Cache.Set(ctx, key, pageOut, listCacheTTL); err != nil {
		h.Log.Warn("Failed to cache path list", "error", err)
	}
	return result.Ok(pageOut)
}

type enrollHandler struct{ *deps }

func (h *enrollHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd EnrollCommand) result.Result[*types.UserLearningPath] {
	if !rc.Authenticated() {
		return result.Failure[*types.UserLearningPath]("unauthorized")
	}
	p, err := h.Repos.Paths.GetByID(ctx, nil, cmd.PathID)
	if err != nil {
		h.Log.Error("Failed to load learning path", "error", err)
		return result.Failure[*types.UserLearningPath]("failed to enroll")
	}
	if p == nil || !p.IsActive {
		return result.NotFound[*types.UserLearningPath]("learning path")
	}

	// Pre-check for a readable message; the unique index still backstops races.
	existing, err := h.Repos.Enrollments.GetPair(ctx, nil, rc.UserID, cmd.PathID)
	if err != nil {
		h.Log.Error("Failed to check enrollment", "error", err)
		return result.Failure[*types.UserLearningPath]("failed to enroll")
	}
	if existing != nil {
		return result.Failure[*types.UserLearningPath]("already enrolled in this learning path")
	}

	e := &types.UserLearningPath{
		UserID:         rc.UserID,
		LearningPathID: cmd.PathID,
		Status:         types.PathStatusNotStarted,
		EnrolledAt:     time.Now(),
	}
	created, err := h.Repos.Enrollments.Create(ctx, nil, e)
	if err != nil {
		h.Log.Error("Failed to create enrollment", "path_id", cmd.PathID, "error", err)
		return result.Failure[*types.UserLearningPath]("failed to enroll")
	}

	h.Notify.Notify(ctx, nil, &types.Notification{
		UserID:  rc.UserID,
		Title:   "Enrolled in learning path",
		Message: fmt.Sprintf("You are enrolled in %q. Start with the first content item.", p.Title),
		Type:    "learning",
	})
	return result.Ok(created)
}

type myPathsHandler struct{ *deps }

func (h *myPathsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ MyPathsQuery) result.Result[[]*EnrolledPath] {
	if !rc.Authenticated() {
		return result.Failure[[]*EnrolledPath]("unauthorized")
	}
	enrollments, err := h.Repos.Enrollments.ListByUser(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to list enrollments", "error", err)
		return result.Failure[[]*EnrolledPath]("failed to load your learning paths")
	}

	out := make([]*EnrolledPath, 0, len(enrollments))
	for _, e := range enrollments {
		p, err := h.Repos.Paths.GetByID(ctx, nil, e.LearningPathID)
		if err != nil {
			h.Log.Error("Failed to load path for enrollment", "path_id", e.LearningPathID, "error", err)
			return result.Failure[[]*EnrolledPath]("failed to load your learning paths")
		}
		if p == nil {
			continue
		}
		out = append(out, &EnrolledPath{Enrollment: e, Path: p})
	}
	return result.Ok(out)
}

type updateEnrollmentStatusHandler struct{ *deps }

func (h *updateEnrollmentStatusHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdateEnrollmentStatusCommand) result.Result[*types.UserLearningPath] {
	if !rc.Authenticated() {
		return result.Failure[*types.UserLearningPath]("unauthorized")
	}
	e, err := h.Repos.Enrollments.GetPair(ctx, nil, rc.UserID, cmd.PathID)
	if err != nil {
		h.Log.Error("Failed to load enrollment", "error", err)
		return result.Failure[*types.UserLearningPath]("failed to update enrollment")
	}
	if e == nil {
		return result.NotFound[*types.UserLearningPath]("enrollment")
	}
	if e.Status == types.PathStatusCompleted {
		return result.Failure[*types.UserLearningPath]("learning path already completed")
	}

	status := types.PathStatus(cmd.Status)
	if err := h.Repos.Enrollments.UpdateProgress(ctx, nil, e.ID, status, e.ProgressPercentage, nil); err != nil {
		h.Log.Error("Failed to update enrollment status", "enrollment_id", e.ID, "error", err)
		return result.Failure[*types.UserLearningPath]("failed to update enrollment")
	}
	e.Status = status
	return result.Ok(e)
}
