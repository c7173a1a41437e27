package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/result"
	"github.com/skillup-platform/skillup-backend/internal/services"
)

const statsCacheTTL = 30 * time.Second

type Deps struct {
	DB    *gorm.DB
	Log   *logger.Logger
	Repos *repos.Set
	Cache services.CacheService
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "dashboard")
	base := &deps{Deps: d}
	mediator.MustRegister[StudentDashboardQuery, *StudentDashboard](m, &studentDashboardHandler{base})
	mediator.MustRegister[AdminStatsQuery, *AdminStats](m, &adminStatsHandler{base})
	mediator.MustRegister[CreatorStatsQuery, *CreatorStats](m, &creatorStatsHandler{base})
}

type studentDashboardHandler struct{ *deps }

func (h *studentDashboardHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ StudentDashboardQuery) result.Result[*StudentDashboard] {
	if !rc.Authenticated() {
		return result.Failure[*StudentDashboard]("unauthorized")
	}

	dash := &StudentDashboard{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := h.Repos.Enrollments.CountByUser(gctx, nil, rc.UserID, types.PathStatusInProgress)
		dash.ActivePaths = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Enrollments.CountByUser(gctx, nil, rc.UserID, types.PathStatusCompleted)
		dash.CompletedPaths = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Progress.CountCompletedByUser(gctx, nil, rc.UserID)
		dash.CompletedContents = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Progress.SumTimeSpentByUser(gctx, nil, rc.UserID)
		dash.TimeSpentMinutes = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Results.CountByUser(gctx, nil, rc.UserID)
		dash.AssessmentsTaken = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Results.CountPassedByUser(gctx, nil, rc.UserID)
		dash.AssessmentsPassed = n
		return err
	})
	g.Go(func() error {
		avg, err := h.Repos.Results.AverageScoreByUser(gctx, nil, rc.UserID)
		dash.AverageScore = avg
		return err
	})
	g.Go(func() error {
		items, _, err := h.Repos.Notification.ListByUser(gctx, nil, rc.UserID, false, 1, 5)
		dash.RecentNotifications = items
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("Failed to assemble dashboard", "error", err)
		return result.Failure[*StudentDashboard]("failed to load dashboard")
	}
	if dash.RecentNotifications == nil {
		dash.RecentNotifications = []*types.Notification{}
	}
	return result.Ok(dash)
}

type adminStatsHandler struct{ *deps }

func (h *adminStatsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ AdminStatsQuery) result.Result[*AdminStats] {
	if rc.Role != string(types.RoleAdmin) {
		return result.Failure[*AdminStats]("forbidden")
	}

	var cached AdminStats
	if found, err := h.Cache.Get(ctx, "dashboard:admin_stats", &cached); err == nil && found {
		return result.Ok(&cached)
	}

	stats := &AdminStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := h.Repos.Users.CountByRole(gctx, nil, types.RoleStudent)
		stats.Students = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Users.CountByRole(gctx, nil, types.RoleCreator)
		stats.ContentCreators = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Users.CountByRole(gctx, nil, types.RoleAdmin)
		stats.Admins = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Paths.Count(gctx, nil, repos.PathFilter{})
		stats.LearningPaths = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Assessments.Count(gctx, nil)
		stats.Assessments = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Enrollments.Count(gctx, nil)
		stats.TotalEnrollments = n
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("Failed to assemble admin stats", "error", err)
		return result.Failure[*AdminStats]("failed to load admin stats")
	}

	if err := h.Cache.Set(ctx, "dashboard:admin_stats", stats, statsCacheTTL); err != nil {
		h.Log.Warn("Failed to cache admin stats", "error", err)
	}
	return result.Ok(stats)
}

type creatorStatsHandler struct{ *deps }

func (h *creatorStatsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ CreatorStatsQuery) result.Result[*CreatorStats] {
	if rc.Role != string(types.RoleAdmin) && rc.Role != string(types.RoleCreator) {
		return result.Failure[*CreatorStats]("forbidden")
	}

	stats := &CreatorStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := h.Repos.Paths.Count(gctx, nil, repos.PathFilter{CreatedBy: rc.UserID})
		stats.Paths = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Paths.Count(gctx, nil, repos.PathFilter{CreatedBy: rc.UserID, ActiveOnly: true})
		stats.PublishedPaths = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Assessments.CountByCreator(gctx, nil, rc.UserID)
		stats.Assessments = n
		return err
	})
	g.Go(func() error {
		n, err := h.Repos.Enrollments.CountByPathCreator(gctx, nil, rc.UserID)
		stats.TotalEnrollments = n
		return err
	})
	g.Go(func() error {
		items, _, err := h.Repos.Paths.List(gctx, nil, repos.PathFilter{CreatedBy: rc.UserID}, 1, 5)
		stats.RecentPaths = items
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("Failed to assemble creator stats", "error", err)
		return result.Failure[*CreatorStats]("failed to load creator stats")
	}
	if stats.RecentPaths == nil {
		stats.RecentPaths = []*types.LearningPath{}
	}
	return result.Ok(stats)
}
