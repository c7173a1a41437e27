package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
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
	DB     *gorm.DB
	Log    *logger.Logger
	Repos  *repos.Set
	Notify services.NotificationService
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "progress")
	base := &deps{Deps: d}
	mediator.MustRegister[CompleteContentCommand, *CompletionResult](m, &completeContentHandler{base})
	mediator.MustRegister[UpdateTimeSpentCommand, *types.UserProgress](m, &updateTimeSpentHandler{base})
	mediator.MustRegister[PathProgressQuery, *PathProgress](m, &pathProgressHandler{base})
}

type completeContentHandler struct{ *deps }

func (h *completeContentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd CompleteContentCommand) result.Result[*CompletionResult] {
	if !rc.Authenticated() {
		return result.Failure[*CompletionResult]("unauthorized")
	}
	c, err := h.Repos.Contents.GetByID(ctx, nil, cmd.ContentID)
	if err != nil {
		h.Log.Error("Failed to load content", "error", err)
		return result.Failure[*CompletionResult]("failed to record progress")
	}
	if c == nil {
		return result.NotFound[*CompletionResult]("content")
	}
	enrollment, err := h.Repos.Enrollments.GetPair(ctx, nil, rc.UserID, c.LearningPathID)
	if err != nil {
		h.Log.Error("Failed to load enrollment", "error", err)
		return result.Failure[*CompletionResult]("failed to record progress")
	}
	if enrollment == nil {
		return result.Failure[*CompletionResult]("not enrolled in this learning path")
	}

	var (
		row       *types.UserProgress
		completed bool
		pathName  string
	)
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		row, err = h.Repos.Progress.GetPair(ctx, tx, rc.UserID, cmd.ContentID)
		if err != nil {
			return err
		}
		if row == nil {
			row, err = h.Repos.Progress.Create(ctx, tx, &types.UserProgress{
				UserID:             rc.UserID,
				ContentID:          cmd.ContentID,
				IsCompleted:        true,
				ProgressPercentage: 100,
				CompletedAt:        &now,
			})
			if err != nil {
				return err
			}
		} else if !row.IsCompleted {
			if err := h.Repos.Progress.UpdateFields(ctx, tx, row.ID, map[string]any{
				"is_completed":        true,
				"progress_percentage": 100,
				"completed_at":        now,
			}); err != nil {
				return err
			}
			row.IsCompleted = true
			row.ProgressPercentage = 100
			row.CompletedAt = &now
		}

		pct, err := h.pathPercentage(ctx, tx, rc.UserID, c.LearningPathID)
		if err != nil {
			return err
		}

		status := enrollment.Status
		var completedAt *time.Time
		if pct >= 100 {
			status = types.PathStatusCompleted
			completed = enrollment.Status != types.PathStatusCompleted
			if enrollment.CompletedAt == nil {
				completedAt = &now
			}
		} else if status == types.PathStatusNotStarted {
			status = types.PathStatusInProgress
		}
		if err := h.Repos.Enrollments.UpdateProgress(ctx, tx, enrollment.ID, status, pct, completedAt); err != nil {
			return err
		}
		enrollment.Status = status
		enrollment.ProgressPercentage = pct
		if completedAt != nil {
			enrollment.CompletedAt = completedAt
		}
		return nil
	})
	if err != nil {
		h.Log.Error("Failed to record progress", "content_id", cmd.ContentID, "error", err)
		return result.Failure[*CompletionResult]("failed to record progress")
	}

	if completed {
		if p, err := h.Repos.Paths.GetByID(ctx, nil, c.LearningPathID); err == nil && p != nil {
			pathName = p.Title
		}
		h.Notify.Notify(ctx, nil, &types.Notification{
			UserID:  rc.UserID,
			Title:   "Learning path completed",
			Message: fmt.Sprintf("Congratulations, you completed %q.", pathName),
			Type:    "learning",
		})
	}
	return result.Ok(&CompletionResult{Progress: row, Enrollment: enrollment, PathCompleted: completed})
}

// pathPercentage recomputes overall completion from the path's required
// contents. Paths with no required items fall back to counting everything.
func (h *completeContentHandler) pathPercentage(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (int, error) {
	contents, err := h.Repos.Contents.ListByPath(ctx, tx, pathID)
	if err != nil {
		return 0, err
	}
	counted := make([]uuid.UUID, 0, len(contents))
	for _, c := range contents {
		if c.IsRequired {
			counted = append(counted, c.ID)
		}
	}
	if len(counted) == 0 {
		for _, c := range contents {
			counted = append(counted, c.ID)
		}
	}
	if len(counted) == 0 {
		return 0, nil
	}

	rows, err := h.Repos.Progress.ListByUserAndContents(ctx, tx, userID, counted)
	if err != nil {
		return 0, err
	}
	done := 0
	for _, r := range rows {
		if r.IsCompleted {
			done++
		}
	}
	return done * 100 / len(counted), nil
}

type updateTimeSpentHandler struct{ *deps }

func (h *updateTimeSpentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdateTimeSpentCommand) result.Result[*types.UserProgress] {
	if !rc.Authenticated() {
		return result.Failure[*types.UserProgress]("unauthorized")
	}
	c, err := h.Repos.Contents.GetByID(ctx, nil, cmd.ContentID)
	if err != nil {
		h.Log.Error("Failed to load content", "error", err)
		return result.Failure[*types.UserProgress]("failed to record time spent")
	}
	if c == nil {
		return result.NotFound[*types.UserProgress]("content")
	}

	row, err := h.Repos.Progress.GetPair(ctx, nil, rc.UserID, cmd.ContentID)
	if err != nil {
		h.Log.Error("Failed to load progress row", "error", err)
		return result.Failure[*types.UserProgress]("failed to record time spent")
	}
	if row == nil {
		row, err = h.Repos.Progress.Create(ctx, nil, &types.UserProgress{
			UserID:           rc.UserID,
			ContentID:        cmd.ContentID,
			TimeSpentMinutes: cmd.Minutes,
		})
		if err != nil {
			h.Log.Error("Failed to create progress row", "error", err)
			return result.Failure[*types.UserProgress]("failed to record time spent")
		}
		return result.Ok(row)
	}

	total := row.TimeSpentMinutes + cmd.Minutes
	if err := h.Repos.Progress.UpdateFields(ctx, nil, row.ID, map[string]any{"time_spent_minutes": total}); err != nil {
		h.Log.Error("Failed to update time spent", "progress_id", row.ID, "error", err)
		return result.Failure[*types.UserProgress]("failed to record time spent")
	}
	row.TimeSpentMinutes = total
	return result.Ok(row)
}

type pathProgressHandler struct{ *deps }

func (h *pathProgressHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q PathProgressQuery) result.Result[*PathProgress] {
	if !rc.Authenticated() {
		return result.Failure[*PathProgress]("unauthorized")
	}
	enrollment, err := h.Repos.Enrollments.GetPair(ctx, nil, rc.UserID, q.PathID)
	if err != nil {
		h.Log.Error("Failed to load enrollment", "error", err)
		return result.Failure[*PathProgress]("failed to load path progress")
	}
	if enrollment == nil {
		return result.NotFound[*PathProgress]("enrollment")
	}

	contents, err := h.Repos.Contents.ListByPath(ctx, nil, q.PathID)
	if err != nil {
		h.Log.Error("Failed to list path contents", "path_id", q.PathID, "error", err)
		return result.Failure[*PathProgress]("failed to load path progress")
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
			return result.Failure[*PathProgress]("failed to load path progress")
		}
		for _, r := range rows {
			byContent[r.ContentID] = r
		}
	}

	out := &PathProgress{
		Enrollment:    enrollment,
		TotalContents: len(contents),
		Items:         make([]*ContentProgress, 0, len(contents)),
	}
	for _, c := range contents {
		p := byContent[c.ID]
		if p != nil && p.IsCompleted {
			out.CompletedCount++
		}
		out.Items = append(out.Items, &ContentProgress{Content: c, Progress: p})
	}
	return result.Ok(out)
}
