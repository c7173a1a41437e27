package resources

import (
	"context"
	"strings"

	"gorm.io/datatypes"
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
	d.Log = d.Log.With("feature", "resources")
	base := &deps{Deps: d}
	mediator.MustRegister[CreateResourceCommand, *types.Resource](m, &createResourceHandler{base})
	mediator.MustRegister[UpdateResourceCommand, *types.Resource](m, &updateResourceHandler{base})
	mediator.MustRegister[DeleteResourceCommand, bool](m, &deleteResourceHandler{base})
	mediator.MustRegister[GetResourceQuery, *types.Resource](m, &getResourceHandler{base})
	mediator.MustRegister[ListResourcesQuery, ResourcePage](m, &listResourcesHandler{base})
	mediator.MustRegister[DownloadResourceCommand, *types.Resource](m, &downloadResourceHandler{base})
}

func canManage(rc ctxutil.RequestContext) bool {
	return rc.Role == string(types.RoleAdmin) || rc.Role == string(types.RoleCreator)
}

type createResourceHandler struct{ *deps }

func (h *createResourceHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd CreateResourceCommand) result.Result[*types.Resource] {
	if !canManage(rc) {
		return result.Failure[*types.Resource]("forbidden")
	}
	res := &types.Resource{
		Title:           strings.TrimSpace(cmd.Title),
		Description:     cmd.Description,
		ResourceType:    types.ResourceType(cmd.ResourceType),
		Category:        strings.TrimSpace(cmd.Category),
		FileURL:         cmd.FileURL,
		TemplateContent: cmd.TemplateContent,
		Tags:            datatypes.JSONSlice[string](cmd.Tags),
		IsActive:        true,
	}
	created, err := h.Repos.Resources.Create(ctx, nil, res)
	if err != nil {
		h.Log.Error("Failed to create resource", "error", err)
		return result.Failure[*types.Resource]("failed to create resource")
	}
	return result.Ok(created)
}

type updateResourceHandler struct{ *deps }

func (h *updateResourceHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdateResourceCommand) result.Result[*types.Resource] {
	if !canManage(rc) {
		return result.Failure[*types.Resource]("forbidden")
	}
	existing, err := h.Repos.Resources.GetByID(ctx, nil, cmd.ResourceID)
	if err != nil {
		h.Log.Error("Failed to load resource", "error", err)
		return result.Failure[*types.Resource]("failed to update resource")
	}
	if existing == nil {
		return result.NotFound[*types.Resource]("resource")
	}

	updates := map[string]any{}
	if cmd.Title != nil {
		updates["title"] = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		updates["description"] = *cmd.Description
	}
	if cmd.Category != nil {
		updates["category"] = strings.TrimSpace(*cmd.Category)
	}
	if cmd.FileURL != nil {
		updates["file_url"] = *cmd.FileURL
	}
	if cmd.TemplateContent != nil {
		updates["template_content"] = *cmd.TemplateContent
	}
	if cmd.Tags != nil {
		updates["tags"] = datatypes.JSONSlice[string](cmd.Tags)
	}
	if cmd.IsActive != nil {
		updates["is_active"] = *cmd.IsActive
	}

	if err := h.Repos.Resources.UpdateFields(ctx, nil, cmd.ResourceID, updates); err != nil {
		h.Log.Error("Failed to update resource", "resource_id", cmd.ResourceID, "error", err)
		return result.Failure[*types.Resource]("failed to update resource")
	}
	updated, err := h.Repos.Resources.GetByID(ctx, nil, cmd.ResourceID)
	if err != nil || updated == nil {
		h.Log.Error("Failed to reload resource", "resource_id", cmd.ResourceID, "error", err)
		return result.Failure[*types.Resource]("failed to update resource")
	}
	return result.Ok(updated)
}

type deleteResourceHandler struct{ *deps }

func (h *deleteResourceHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DeleteResourceCommand) result.Result[bool] {
	if rc.Role != string(types.RoleAdmin) {
		return result.Failure[bool]("forbidden")
	}
	existing, err := h.Repos.Resources.GetByID(ctx, nil, cmd.ResourceID)
	if err != nil {
		h.Log.Error("Failed to load resource", "error", err)
		return result.Failure[bool]("failed to delete resource")
	}
	if existing == nil {
		return result.NotFound[bool]("resource")
	}
	if err := h.Repos.Resources.Delete(ctx, nil, cmd.ResourceID); err != nil {
		h.Log.Error("Failed to delete resource", "resource_id", cmd.ResourceID, "error", err)
		return result.Failure[bool]("failed to delete resource")
	}
	return result.Ok(true)
}

type getResourceHandler struct{ *deps }

func (h *getResourceHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q GetResourceQuery) result.Result[*types.Resource] {
	res, err := h.Repos.Resources.GetByID(ctx, nil, q.ResourceID)
	if err != nil {
		h.Log.Error("Failed to load resource", "error", err)
		return result.Failure[*types.Resource]("failed to load resource")
	}
	if res == nil || (!res.IsActive && !canManage(rc)) {
		return result.NotFound[*types.Resource]("resource")
	}
	return result.Ok(res)
}

type listResourcesHandler struct{ *deps }

func (h *listResourcesHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q ListResourcesQuery) result.Result[ResourcePage] {
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	f := repos.ResourceFilter{
		Type:       types.ResourceType(q.Type),
		Category:   q.Category,
		ActiveOnly: !canManage(rc),
	}
	items, total, err := h.Repos.Resources.List(ctx, nil, f, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list resources", "error", err)
		return result.Failure[ResourcePage]("failed to list resources")
	}
	return result.Ok(result.NewPage(items, total, page, pageSize))
}

type downloadResourceHandler struct{ *deps }

func (h *downloadResourceHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DownloadResourceCommand) result.Result[*types.Resource] {
	if !rc.Authenticated() {
		return result.Failure[*types.Resource]("unauthorized")
	}
	res, err := h.Repos.Resources.GetByID(ctx, nil, cmd.ResourceID)
	if err != nil {
		h.Log.Error("Failed to load resource", "error", err)
		return result.Failure[*types.Resource]("failed to download resource")
	}
	if res == nil || !res.IsActive {
		return result.NotFound[*types.Resource]("resource")
	}
	if err := h.Repos.Resources.IncrementDownloadCount(ctx, nil, cmd.ResourceID); err != nil {
		h.Log.Warn("Failed to bump download count", "resource_id", cmd.ResourceID, "error", err)
	} else {
		res.DownloadCount++
	}
	return result.Ok(res)
}
