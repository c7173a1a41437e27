package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
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
	d.Log = d.Log.With("feature", "content")
	base := &deps{Deps: d}
	mediator.MustRegister[CreateContentCommand, *types.Content](m, &createContentHandler{base})
	mediator.MustRegister[UpdateContentCommand, *types.Content](m, &updateContentHandler{base})
	mediator.MustRegister[DeleteContentCommand, bool](m, &deleteContentHandler{base})
	mediator.MustRegister[GetContentQuery, *ContentDetail](m, &getContentHandler{base})
	mediator.MustRegister[ListPathContentQuery, []*ContentWithProgress](m, &listPathContentHandler{base})
}

// canEditPath loads the path and checks the caller may modify its contents.
func (d *deps) canEditPath(ctx context.Context, rc ctxutil.RequestContext, pathID uuid.UUID) (*types.LearningPath, string) {
	if rc.Role != string(types.RoleAdmin) && rc.Role != string(types.RoleCreator) {
		return nil, "forbidden"
	}
	p, err := d.Repos.Paths.GetByID(ctx, nil, pathID)
	if err != nil {
		d.Log.Error("Failed to load learning path", "path_id", pathID, "error", err)
		return nil, "failed to load learning path"
	}
	if p == nil {
		return nil, "learning path not found"
	}
	if rc.Role != string(types.RoleAdmin) && p.CreatedBy != rc.UserID {
		return nil, "forbidden"
	}
	return p, ""
}

type createContentHandler struct{ *deps }

func (h *createContentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd CreateContentCommand) result.Result[*types.Content] {
	if _, msg := h.canEditPath(ctx, rc, cmd.PathID); msg != "" {
		return result.Failure[*types.Content](msg)
	}

	required := true
	if cmd.IsRequired != nil {
		required = *cmd.IsRequired
	}
	c := &types.Content{
		LearningPathID:  cmd.PathID,
		Title:           strings.TrimSpace(cmd.Title),
		Description:     cmd.Description,
		ContentType:     types.ContentType(cmd.ContentType),
		VideoURL:        cmd.VideoURL,
		DocumentURL:     cmd.DocumentURL,
		TextContent:     cmd.TextContent,
		DurationMinutes: cmd.DurationMinutes,
		DisplayOrder:    cmd.DisplayOrder,
		IsRequired:      required,
	}
	created, err := h.Repos.Contents.Create(ctx, nil, c)
	if err != nil {
		h.Log.Error("Failed to create content", "path_id", cmd.PathID, "error", err)
		return result.Failure[*types.Content]("failed to create content")
	}
	return result.Ok(created)
}

type updateContentHandler struct{ *deps }

func (h *updateContentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdateContentCommand) result.Result[*types.Content] {
	existing, err := h.Repos.Contents.GetByID(ctx, nil, cmd.ContentID)
	if err != nil {
		h.Log.Error("Failed to load content", "error", err)
		return result.Failure[*types.Content]("failed to update content")
	}
	if existing == nil {
		return result.NotFound[*types.Content]("content")
	}
	if _, msg := h.canEditPath(ctx, rc, existing.LearningPathID); msg != "" {
		return result.Failure[*types.Content](msg)
	}

	updates := map[string]any{}
	if cmd.Title != nil {
		updates["title"] = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		updates["description"] = *cmd.Description
	}
	if cmd.ContentType != nil {
		updates["content_type"] = *cmd.ContentType
	}
	if cmd.VideoURL != nil {
		updates["video_url"] = *cmd.VideoURL
	}
	if cmd.DocumentURL != nil {
		updates["document_url"] = *cmd.DocumentURL
	}
	if cmd.TextContent != nil {
		updates["text_content"] = *cmd.TextContent
	}
	if cmd.DurationMinutes != nil {
		updates["duration_minutes"] = *cmd.DurationMinutes
	}
	if cmd.DisplayOrder != nil {
		updates["display_order"] = *cmd.DisplayOrder
	}
	if cmd.IsRequired != nil {
		updates["is_required"] = *cmd.IsRequired
	}

	if err := h.Repos.Contents.UpdateFields(ctx, nil, cmd.ContentID, updates); err != nil {
		h.Log.Error("Failed to update content", "content_id", cmd.ContentID, "error", err)
		return result.Failure[*types.Content]("failed to update content")
	}
	updated, err := h.Repos.Contents.GetByID(ctx, nil, cmd.ContentID)
	if err != nil || updated == nil {
		h.Log.Error("Failed to reload content", "content_id", cmd.ContentID, "error", err)
		return result.Failure[*types.Content]("failed to update content")
	}
	return result.Ok(updated)
}

type deleteContentHandler struct{ *deps }

func (h *deleteContentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DeleteContentCommand) result.Result[bool] {
	existing, err := h.Repos.Contents.GetByID(ctx, nil, cmd.ContentID)
	if err != nil {
		h.Log.Error("Failed to load content", "error", err)
		return result.Failure[bool]("failed to delete content")
	}
	if existing == nil {
		return result.NotFound[bool]("content")
	}
	if _, msg := h.canEditPath(ctx, rc, existing.LearningPathID); msg != "" {
		return result.Failure[bool](msg)
	}

	if err := h.Repos.Contents.Delete(ctx, nil, cmd.ContentID); err != nil {
		h.Log.Error("Failed to delete content", "content_id", cmd.ContentID, "error", err)
		return result.Failure[bool]("failed to delete content")
	}
	return result.Ok(true)
}

type getContentHandler struct{ *deps }

func (h *getContentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q GetContentQuery) result.Result[*ContentDetail] {
	if !rc.Authenticated() {
		return result.Failure[*ContentDetail]("unauthorized")
	}
	c, err := h.Repos.Contents.GetByID(ctx, nil, q.ContentID)
	if err != nil {
		h.Log.Error("Failed to load content", "error", err)
		return result.Failure[*ContentDetail]("failed to load content")
	}
	if c == nil {
		return result.NotFound[*ContentDetail]("content")
	}

	detail := &ContentDetail{Content: c}
	if p, err := h.Repos.Progress.GetPair(ctx, nil, rc.UserID, c.ID); err == nil {
		detail.Progress = p
	}

	siblings, err := h.Repos.Contents.ListByPath(ctx, nil, c.LearningPathID)
	if err != nil {
		h.Log.Error("Failed to list path contents", "path_id", c.LearningPathID, "error", err)
		return result.Failure[*ContentDetail]("failed to load content")
	}
	for i, s := range siblings {
		if s.ID != c.ID {
			continue
		}
		if i > 0 {
			id := siblings[i-1].ID
			detail.PreviousID = &id
		}
		if i < len(siblings)-1 {
			id := siblings[i+1].ID
			detail.NextID = &id
		}
		break
	}
	return result.Ok(detail)
}

type listPathContentHandler struct{ *deps }

func (h *listPathContentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q ListPathContentQuery) result.Result[[]*ContentWithProgress] {
	if !rc.Authenticated() {
		return result.Failure[[]*ContentWithProgress]("unauthorized")
	}
	p, err := h.Repos.Paths.GetByID(ctx, nil, q.PathID)
	if err != nil {
		h.Log.Error("Failed to load learning path", "error", err)
		return result.Failure[[]*ContentWithProgress]("failed to load path content")
	}
	if p == nil {
		return result.NotFound[[]*ContentWithProgress]("learning path")
	}

	contents, err := h.Repos.Contents.ListByPath(ctx, nil, q.PathID)
	if err != nil {
		h.Log.Error("Failed to list path contents", "path_id", q.PathID, "error", err)
		return result.Failure[[]*ContentWithProgress]("failed to load path content")
	}

	ids := make([]uuid.UUID, 0, len(contents))
	for _, c := range contents {
		ids = append(ids, c.ID)
	}
	byContent := map[uuid.UUID]*types.UserProgress{}
	if len(ids) > 0 {
		rows, err := h.Repos.Progress.ListByUserAndContents(ctx, nil, rc.UserID, ids)
		if err != nil {
			h.Log.Error("Failed to load progress rows", "error", err)
			return result.Failure[[]*ContentWithProgress]("failed to load path content")
		}
		for _, r := range rows {
			byContent[r.ContentID] = r
		}
	}

	out := make([]*ContentWithProgress, 0, len(contents))
	for _, c := range contents {
		out = append(out, &ContentWithProgress{Content: c, Progress: byContent[c.ID]})
	}
	return result.Ok(out)
}
