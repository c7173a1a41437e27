package ai

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
	"github.com/skillup-platform/skillup-backend/internal/services"
)

type Deps struct {
	DB    *gorm.DB
	Log   *logger.Logger
	Repos *repos.Set
	AI    services.AIService
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "ai")
	base := &deps{Deps: d}
	mediator.MustRegister[CareerAdviceQuery, *CareerAdvice](m, &careerAdviceHandler{base})
	mediator.MustRegister[FeedbackStatusQuery, *types.JobRun](m, &feedbackStatusHandler{base})
	mediator.MustRegister[MyJobsQuery, JobPage](m, &myJobsHandler{base})
	mediator.MustRegister[RecommendPathsQuery, []*types.LearningPath](m, &recommendPathsHandler{base})
}

type careerAdviceHandler struct{ *deps }

func (h *careerAdviceHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q CareerAdviceQuery) result.Result[*CareerAdvice] {
	if !rc.Authenticated() {
		return result.Failure[*CareerAdvice]("unauthorized")
	}
	advice, err := h.AI.GenerateCareerAdvice(ctx, q.Specialization, q.CareerGoals)
	if err != nil {
		h.Log.Error("Failed to generate career advice", "error", err)
		return result.Failure[*CareerAdvice]("failed to generate career advice")
	}
	return result.Ok(&CareerAdvice{Advice: advice})
}

type feedbackStatusHandler struct{ *deps }

func (h *feedbackStatusHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q FeedbackStatusQuery) result.Result[*types.JobRun] {
	if !rc.Authenticated() {
		return result.Failure[*types.JobRun]("unauthorized")
	}
	res, err := h.Repos.Results.GetByID(ctx, nil, q.ResultID)
	if err != nil {
		h.Log.Error("Failed to load result", "error", err)
		return result.Failure[*types.JobRun]("failed to load feedback status")
	}
	if res == nil {
		return result.NotFound[*types.JobRun]("assessment result")
	}
	if res.UserID != rc.UserID && rc.Role != string(types.RoleAdmin) {
		return result.Failure[*types.JobRun]("forbidden")
	}

	run, err := h.Repos.JobRuns.GetLatestByEntity(ctx, nil, res.UserID, "assessment_result", res.ID, "assessment_feedback")
	if err != nil {
		h.Log.Error("Failed to load feedback job", "result_id", res.ID, "error", err)
		return result.Failure[*types.JobRun]("failed to load feedback status")
	}
	if run == nil {
		return result.NotFound[*types.JobRun]("feedback job")
	}
	return result.Ok(run)
}

type recommendPathsHandler struct{ *deps }

func (h *recommendPathsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q RecommendPathsQuery) result.Result[[]*types.LearningPath] {
	if !rc.Authenticated() {
		return result.Failure[[]*types.LearningPath]("unauthorized")
	}
	limit := q.Limit
	if limit == 0 {
		limit = 5
	}

	profile, err := h.Repos.Profiles.GetByUserID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load profile", "error", err)
		return result.Failure[[]*types.LearningPath]("failed to recommend learning paths")
	}
	var terms []string
	if profile != nil {
		terms = append(terms, profile.Interests...)
		terms = append(terms, profile.Skills...)
	}

	enrolled := map[uuid.UUID]bool{}
	enrollments, err := h.Repos.Enrollments.ListByUser(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to list enrollments", "error", err)
		return result.Failure[[]*types.LearningPath]("failed to recommend learning paths")
	}
	for _, e := range enrollments {
		enrolled[e.LearningPathID] = true
	}

	paths, _, err := h.Repos.Paths.List(ctx, nil, repos.PathFilter{ActiveOnly: true}, 1, result.MaxPageSize)
	if err != nil {
		h.Log.Error("Failed to list learning paths", "error", err)
		return result.Failure[[]*types.LearningPath]("failed to recommend learning paths")
	}

	matched := make([]*types.LearningPath, 0, limit)
	rest := make([]*types.LearningPath, 0, len(paths))
	for _, p := range paths {
		if enrolled[p.ID] {
			continue
		}
		if matchesAnyTerm(p, terms) {
			matched = append(matched, p)
		} else {
			rest = append(rest, p)
		}
	}
	// Profile matches first, then the rest of the catalog as filler.
	matched = append(matched, rest...)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return result.Ok(matched)
}

func matchesAnyTerm(p *types.LearningPath, terms []string) bool {
	title := strings.ToLower(p.Title)
	category := strings.ToLower(p.Category)
	description := strings.ToLower(p.Description)
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if strings.Contains(title, t) || strings.Contains(category, t) || strings.Contains(description, t) {
			return true
		}
	}
	return false
}

type myJobsHandler struct{ *deps }

func (h *myJobsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q MyJobsQuery) result.Result[JobPage] {
	if !rc.Authenticated() {
		return result.Failure[JobPage]("unauthorized")
	}
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	items, total, err := h.Repos.JobRuns.ListByOwner(ctx, nil, rc.UserID, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list jobs", "error", err)
		return result.Failure[JobPage]("failed to list jobs")
	}
	return result.Ok(result.NewPage(items, total, page, pageSize))
}
