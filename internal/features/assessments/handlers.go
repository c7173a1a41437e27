package assessments

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
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
	d.Log = d.Log.With("feature", "assessments")
	base := &deps{Deps: d}
	mediator.MustRegister[CreateAssessmentCommand, *types.Assessment](m, &createAssessmentHandler{base})
	mediator.MustRegister[UpdateAssessmentCommand, *types.Assessment](m, &updateAssessmentHandler{base})
	mediator.MustRegister[DeleteAssessmentCommand, bool](m, &deleteAssessmentHandler{base})
	mediator.MustRegister[GetAssessmentQuery, *types.Assessment](m, &getAssessmentHandler{base})
	mediator.MustRegister[ListAssessmentsQuery, AssessmentPage](m, &listAssessmentsHandler{base})
	mediator.MustRegister[SubmitAssessmentCommand, *types.AssessmentResult](m, &submitAssessmentHandler{base})
	mediator.MustRegister[MyResultsQuery, ResultPage](m, &myResultsHandler{base})
	mediator.MustRegister[GetResultQuery, *types.AssessmentResult](m, &getResultHandler{base})
}

func canManage(rc ctxutil.RequestContext) bool {
	return rc.Role == string(types.RoleAdmin) || rc.Role == string(types.RoleCreator)
}

type createAssessmentHandler struct{ *deps }

func (h *createAssessmentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd CreateAssessmentCommand) result.Result[*types.Assessment] {
	if !canManage(rc) {
		return result.Failure[*types.Assessment]("forbidden")
	}
	if cmd.LearningPathID != nil {
		ok, err := h.Repos.Paths.Exists(ctx, nil, *cmd.LearningPathID)
		if err != nil {
			h.Log.Error("Failed to check learning path", "error", err)
			return result.Failure[*types.Assessment]("failed to create assessment")
		}
		if !ok {
			return result.NotFound[*types.Assessment]("learning path")
		}
	}

	var created *types.Assessment
	err := h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a := &types.Assessment{
			Title:            strings.TrimSpace(cmd.Title),
			Description:      cmd.Description,
			Category:         strings.TrimSpace(cmd.Category),
			AssessmentType:   types.AssessmentType(cmd.AssessmentType),
			TimeLimitMinutes: cmd.TimeLimitMinutes,
			PassingScore:     cmd.PassingScore,
			IsActive:         true,
			LearningPathID:   cmd.LearningPathID,
			CreatedBy:        rc.UserID,
		}
		var err error
		created, err = h.Repos.Assessments.Create(ctx, tx, a)
		if err != nil {
			return err
		}

		questions := make([]*types.Question, 0, len(cmd.Questions))
		for i, q := range cmd.Questions {
			order := q.DisplayOrder
			if order == 0 {
				order = i + 1
			}
			points := q.Points
			if points == 0 {
				points = 1
			}
			questions = append(questions, &types.Question{
				AssessmentID:  created.ID,
				QuestionText:  q.QuestionText,
				QuestionType:  types.QuestionType(q.QuestionType),
				Options:       datatypes.JSONSlice[string](q.Options),
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				Points:        points,
				DisplayOrder:  order,
			})
		}
		if err := h.Repos.Questions.CreateBatch(ctx, tx, questions); err != nil {
			return err
		}
		created.Questions = make([]types.Question, 0, len(questions))
		for _, q := range questions {
			created.Questions = append(created.Questions, *q)
		}
		return nil
	})
	if err != nil {
		h.Log.Error("Failed to create assessment", "error", err)
		return result.Failure[*types.Assessment]("failed to create assessment")
	}
	return result.Ok(created)
}

type updateAssessmentHandler struct{ *deps }

func (h *updateAssessmentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdateAssessmentCommand) result.Result[*types.Assessment] {
	if !canManage(rc) {
		return result.Failure[*types.Assessment]("forbidden")
	}
	existing, err := h.Repos.Assessments.GetByID(ctx, nil, cmd.AssessmentID)
	if err != nil {
		h.Log.Error("Failed to load assessment", "error", err)
		return result.Failure[*types.Assessment]("failed to update assessment")
	}
	if existing == nil {
		return result.NotFound[*types.Assessment]("assessment")
	}
	if rc.Role != string(types.RoleAdmin) && existing.CreatedBy != rc.UserID {
		return result.Failure[*types.Assessment]("forbidden")
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
	if cmd.TimeLimitMinutes != nil {
		updates["time_limit_minutes"] = *cmd.TimeLimitMinutes
	}
	if cmd.PassingScore != nil {
		updates["passing_score"] = *cmd.PassingScore
	}
	if cmd.IsActive != nil {
		updates["is_active"] = *cmd.IsActive
	}
	if cmd.LearningPathID != nil {
		ok, err := h.Repos.Paths.Exists(ctx, nil, *cmd.LearningPathID)
		if err != nil {
			h.Log.Error("Failed to check learning path", "error", err)
			return result.Failure[*types.Assessment]("failed to update assessment")
		}
		if !ok {
			return result.NotFound[*types.Assessment]("learning path")
		}
		updates["learning_path_id"] = *cmd.LearningPathID
	}

	if err := h.Repos.Assessments.UpdateFields(ctx, nil, cmd.AssessmentID, updates); err != nil {
		h.Log.Error("Failed to update assessment", "assessment_id", cmd.AssessmentID, "error", err)
		return result.Failure[*types.Assessment]("failed to update assessment")
	}
	updated, err := h.Repos.Assessments.GetByID(ctx, nil, cmd.AssessmentID)
	if err != nil || updated == nil {
		h.Log.Error("Failed to reload assessment", "assessment_id", cmd.AssessmentID, "error", err)
		return result.Failure[*types.Assessment]("failed to update assessment")
	}
	return result.Ok(updated)
}

type deleteAssessmentHandler struct{ *deps }

func (h *deleteAssessmentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DeleteAssessmentCommand) result.Result[bool] {
	if !canManage(rc) {
		return result.Failure[bool]("forbidden")
	}
	existing, err := h.Repos.Assessments.GetByID(ctx, nil, cmd.AssessmentID)
	if err != nil {
		h.Log.Error("Failed to load assessment", "error", err)
		return result.Failure[bool]("failed to delete assessment")
	}
	if existing == nil {
		return result.NotFound[bool]("assessment")
	}
	if rc.Role != string(types.RoleAdmin) && existing.CreatedBy != rc.UserID {
		return result.Failure[bool]("forbidden")
	}

	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return h.Repos.Assessments.Delete(ctx, tx, cmd.AssessmentID)
	})
	if err != nil {
		h.Log.Error("Failed to delete assessment", "assessment_id", cmd.AssessmentID, "error", err)
		return result.Failure[bool]("failed to delete assessment")
	}
	return result.Ok(true)
}

type getAssessmentHandler struct{ *deps }

func (h *getAssessmentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q GetAssessmentQuery) result.Result[*types.Assessment] {
	a, err := h.Repos.Assessments.GetWithQuestions(ctx, nil, q.AssessmentID)
	if err != nil {
		h.Log.Error("Failed to load assessment", "error", err)
		return result.Failure[*types.Assessment]("failed to load assessment")
	}
	if a == nil || (!a.IsActive && !canManage(rc)) {
		return result.NotFound[*types.Assessment]("assessment")
	}
	return result.Ok(a)
}

type listAssessmentsHandler struct{ *deps }

func (h *listAssessmentsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q ListAssessmentsQuery) result.Result[AssessmentPage] {
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	activeOnly := !canManage(rc)
	items, total, err := h.Repos.Assessments.List(ctx, nil, activeOnly, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list assessments", "error", err)
		return result.Failure[AssessmentPage]("failed to list assessments")
	}
	return result.Ok(result.NewPage(items, total, page, pageSize))
}

type submitAssessmentHandler struct{ *deps }

func (h *submitAssessmentHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd SubmitAssessmentCommand) result.Result[*types.AssessmentResult] {
	if !rc.Authenticated() {
		return result.Failure[*types.AssessmentResult]("unauthorized")
	}
	a, err := h.Repos.Assessments.GetWithQuestions(ctx, nil, cmd.AssessmentID)
	if err != nil {
		h.Log.Error("Failed to load assessment", "error", err)
		return result.Failure[*types.AssessmentResult]("failed to submit assessment")
	}
	if a == nil || !a.IsActive {
		return result.NotFound[*types.AssessmentResult]("assessment")
	}
	if len(a.Questions) == 0 {
		return result.Failure[*types.AssessmentResult]("assessment has no questions")
	}

	maxScore := 0
	byQuestion := make(map[uuid.UUID]*types.Question, len(a.Questions))
	for i := range a.Questions {
		q := &a.Questions[i]
		byQuestion[q.ID] = q
		maxScore += q.Points
	}

	var res *types.AssessmentResult
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Record the attempt first, then grade. A grading failure leaves a
		// zero-score row rather than no trace of the attempt.
		var err error
		res, err = h.Repos.Results.Create(ctx, tx, &types.AssessmentResult{
			UserID:           rc.UserID,
			AssessmentID:     a.ID,
			MaxScore:         maxScore,
			TotalQuestions:   len(a.Questions),
			TimeSpentMinutes: cmd.TimeSpentMinutes,
			CompletedAt:      time.Now(),
		})
		if err != nil {
			return err
		}

		score, correct := 0, 0
		answers := make([]*types.UserAnswer, 0, len(cmd.Answers))
		for _, in := range cmd.Answers {
			q, ok := byQuestion[in.QuestionID]
			if !ok {
				continue
			}
			isCorrect := strings.EqualFold(strings.TrimSpace(in.Answer), strings.TrimSpace(q.CorrectAnswer))
			if isCorrect {
				score += q.Points
				correct++
			}
			answers = append(answers, &types.UserAnswer{
				UserID:             rc.UserID,
				QuestionID:         q.ID,
				AssessmentResultID: res.ID,
				Answer:             in.Answer,
				IsCorrect:          isCorrect,
			})
		}
		if len(answers) > 0 {
			if err := h.Repos.Answers.CreateBatch(ctx, tx, answers); err != nil {
				return err
			}
		}

		passed := score >= a.PassingScore
		if err := h.Repos.Results.UpdateFields(ctx, tx, res.ID, map[string]any{
			"score":           score,
			"correct_answers": correct,
			"is_passed":       passed,
		}); err != nil {
			return err
		}
		res.Score = score
		res.CorrectAnswers = correct
		res.IsPassed = passed
		for _, ua := range answers {
			res.Answers = append(res.Answers, *ua)
		}

		resultID := res.ID
		_, err = h.Repos.JobRuns.Create(ctx, tx, []*types.JobRun{{
			OwnerUserID: rc.UserID,
			JobType:     "assessment_feedback",
			EntityType:  "assessment_result",
			EntityID:    &resultID,
			Status:      types.JobStatusQueued,
			Payload:     datatypes.JSON([]byte(`{"result_id":"` + resultID.String() + `"}`)),
		}})
		return err
	})
	if err != nil {
		h.Log.Error("Failed to submit assessment", "assessment_id", cmd.AssessmentID, "error", err)
		return result.Failure[*types.AssessmentResult]("failed to submit assessment")
	}
	return result.Ok(res)
}

type myResultsHandler struct{ *deps }

func (h *myResultsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q MyResultsQuery) result.Result[ResultPage] {
	if !rc.Authenticated() {
		return result.Failure[ResultPage]("unauthorized")
	}
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	items, total, err := h.Repos.Results.ListByUser(ctx, nil, rc.UserID, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list results", "error", err)
		return result.Failure[ResultPage]("failed to list results")
	}
	return result.Ok(result.NewPage(items, total, page, pageSize))
}

type getResultHandler struct{ *deps }

func (h *getResultHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q GetResultQuery) result.Result[*types.AssessmentResult] {
	if !rc.Authenticated() {
		return result.Failure[*types.AssessmentResult]("unauthorized")
	}
	res, err := h.Repos.Results.GetWithAnswers(ctx, nil, q.ResultID)
	if err != nil {
		h.Log.Error("Failed to load result", "error", err)
		return result.Failure[*types.AssessmentResult]("failed to load result")
	}
	if res == nil {
		return result.NotFound[*types.AssessmentResult]("assessment result")
	}
	if res.UserID != rc.UserID && rc.Role != string(types.RoleAdmin) {
		return result.Failure[*types.AssessmentResult]("forbidden")
	}
	return result.Ok(res)
}
