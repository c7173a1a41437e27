package assessments

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	"github.com/skillup-platform/skillup-backend/internal/data/repos/testutil"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
)

type submitFixture struct {
	tx      *gorm.DB
	repos   *repos.Set
	m       *mediator.Mediator
	student *types.User
}

func newSubmitFixture(t *testing.T) (*submitFixture, context.Context) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)

	rs := repos.NewSet(tx, log)
	m := mediator.New()
	Register(m, Deps{DB: tx, Log: log, Repos: rs})

	ctx := context.Background()
	student := testutil.SeedUser(t, ctx, tx, fmt.Sprintf("s-%s@example.com", uuid.NewString()[:8]))

	rcCtx := ctxutil.WithRequestContext(ctx, ctxutil.RequestContext{
		UserID: student.ID,
		Email:  student.Email,
		Role:   string(types.RoleStudent),
	})
	return &submitFixture{tx: tx, repos: rs, m: m, student: student}, rcCtx
}

func (f *submitFixture) seedTwoQuestionAssessment(t *testing.T, ctx context.Context, passingScore int) (*types.Assessment, *types.Question, *types.Question) {
	t.Helper()
	creator := testutil.SeedUser(t, ctx, f.tx, fmt.Sprintf("c-%s@example.com", uuid.NewString()[:8]))
	a := testutil.SeedAssessment(t, ctx, f.tx, creator.ID, passingScore)
	q1 := testutil.SeedQuestion(t, ctx, f.tx, a.ID, 1, 2, "Paris")
	q2 := testutil.SeedQuestion(t, ctx, f.tx, a.ID, 2, 2, "4")
	return a, q1, q2
}

func TestSubmitAssessment_ScoresAnswers(t *testing.T) {
	f, ctx := newSubmitFixture(t)
	a, q1, q2 := f.seedTwoQuestionAssessment(t, context.Background(), 50)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID:     a.ID,
		TimeSpentMinutes: 7,
		Answers: []AnswerInput{
			{QuestionID: q1.ID, Answer: "Paris"},
			{QuestionID: q2.ID, Answer: "5"},
		},
	})
	require.True(t, res.Success, res.Error)

	got := res.Data
	require.Equal(t, 2, got.Score)
	require.Equal(t, 4, got.MaxScore)
	require.Equal(t, 2, got.TotalQuestions)
	require.Equal(t, 1, got.CorrectAnswers)
	require.Equal(t, 7, got.TimeSpentMinutes)
	require.False(t, got.IsPassed)
	require.Len(t, got.Answers, 2)
}

func TestSubmitAssessment_PassingScoreComparesRawPoints(t *testing.T) {
	f, ctx := newSubmitFixture(t)

	// Threshold below the raw total: a perfect run passes.
	low, q1, q2 := f.seedTwoQuestionAssessment(t, context.Background(), 3)
	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: low.ID,
		Answers: []AnswerInput{
			{QuestionID: q1.ID, Answer: "Paris"},
			{QuestionID: q2.ID, Answer: "4"},
		},
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 4, res.Data.Score)
	require.True(t, res.Data.IsPassed)

	// Threshold above the raw total: even a perfect run fails. The stored
	// threshold is points, not a percentage.
	high, q3, q4 := f.seedTwoQuestionAssessment(t, context.Background(), 70)
	res = mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: high.ID,
		Answers: []AnswerInput{
			{QuestionID: q3.ID, Answer: "Paris"},
			{QuestionID: q4.ID, Answer: "4"},
		},
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 4, res.Data.Score)
	require.Equal(t, 4, res.Data.MaxScore)
	require.False(t, res.Data.IsPassed)
}

func TestSubmitAssessment_EmptySubmissionScoresZero(t *testing.T) {
	f, ctx := newSubmitFixture(t)
	a, _, _ := f.seedTwoQuestionAssessment(t, context.Background(), 50)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: a.ID,
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 0, res.Data.Score)
	require.Equal(t, 4, res.Data.MaxScore)
	require.Equal(t, 2, res.Data.TotalQuestions)
	require.Equal(t, 0, res.Data.CorrectAnswers)
	require.False(t, res.Data.IsPassed)
	require.Empty(t, res.Data.Answers)

	// A zero threshold admits even an empty submission.
	free, _, _ := f.seedTwoQuestionAssessment(t, context.Background(), 0)
	res = mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: free.ID,
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 0, res.Data.Score)
	require.True(t, res.Data.IsPassed)
}

func TestSubmitAssessment_GradingIgnoresCaseAndWhitespace(t *testing.T) {
	f, ctx := newSubmitFixture(t)
	a, q1, q2 := f.seedTwoQuestionAssessment(t, context.Background(), 4)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: a.ID,
		Answers: []AnswerInput{
			{QuestionID: q1.ID, Answer: "  pArIs "},
			{QuestionID: q2.ID, Answer: " 4"},
		},
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 4, res.Data.Score)
	require.True(t, res.Data.IsPassed)
}

func TestSubmitAssessment_UnknownQuestionsSkipped(t *testing.T) {
	f, ctx := newSubmitFixture(t)
	a, q1, _ := f.seedTwoQuestionAssessment(t, context.Background(), 50)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: a.ID,
		Answers: []AnswerInput{
			{QuestionID: q1.ID, Answer: "Paris"},
			{QuestionID: uuid.New(), Answer: "Paris"},
		},
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 2, res.Data.Score)
	require.Equal(t, 1, res.Data.CorrectAnswers)
	require.Len(t, res.Data.Answers, 1)
}

func TestSubmitAssessment_EnqueuesFeedbackJob(t *testing.T) {
	f, ctx := newSubmitFixture(t)
	a, q1, q2 := f.seedTwoQuestionAssessment(t, context.Background(), 2)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: a.ID,
		Answers: []AnswerInput{
			{QuestionID: q1.ID, Answer: "Paris"},
			{QuestionID: q2.ID, Answer: "4"},
		},
	})
	require.True(t, res.Success, res.Error)

	run, err := f.repos.JobRuns.GetLatestByEntity(context.Background(), f.tx,
		f.student.ID, "assessment_result", res.Data.ID, "assessment_feedback")
	require.NoError(t, err)
	require.NotNil(t, run)
	require.Equal(t, types.JobStatusQueued, run.Status)
	require.Contains(t, string(run.Payload), res.Data.ID.String())
}

func TestSubmitAssessment_RejectsInactiveAssessment(t *testing.T) {
	f, ctx := newSubmitFixture(t)
	a, q1, _ := f.seedTwoQuestionAssessment(t, context.Background(), 50)

	require.NoError(t, f.tx.Model(&types.Assessment{}).
		Where("id = ?", a.ID).
		Update("is_active", false).Error)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: a.ID,
		Answers:      []AnswerInput{{QuestionID: q1.ID, Answer: "Paris"}},
	})
	require.False(t, res.Success)
	require.Equal(t, "assessment not found", res.Error)
}

func TestSubmitAssessment_RejectsAssessmentWithoutQuestions(t *testing.T) {
	f, ctx := newSubmitFixture(t)
	creator := testutil.SeedUser(t, context.Background(), f.tx, fmt.Sprintf("c-%s@example.com", uuid.NewString()[:8]))
	a := testutil.SeedAssessment(t, context.Background(), f.tx, creator.ID, 50)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](ctx, f.m, SubmitAssessmentCommand{
		AssessmentID: a.ID,
	})
	require.False(t, res.Success)
	require.Equal(t, "assessment has no questions", res.Error)
}

func TestSubmitAssessment_RequiresAuth(t *testing.T) {
	f, _ := newSubmitFixture(t)
	a, q1, _ := f.seedTwoQuestionAssessment(t, context.Background(), 50)

	res := mediator.Send[SubmitAssessmentCommand, *types.AssessmentResult](context.Background(), f.m, SubmitAssessmentCommand{
		AssessmentID: a.ID,
		Answers:      []AnswerInput{{QuestionID: q1.ID, Answer: "Paris"}},
	})
	require.False(t, res.Success)
	require.Equal(t, "unauthorized", res.Error)
}
