package progress

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
	"github.com/skillup-platform/skillup-backend/internal/services"
)

type progressFixture struct {
	tx    *gorm.DB
	repos *repos.Set
	m     *mediator.Mediator
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)

	rs := repos.NewSet(tx, log)
	m := mediator.New()
	Register(m, Deps{
		DB:     tx,
		Log:    log,
		Repos:  rs,
		Notify: services.NewNotificationService(log, rs.Notification, rs.Settings),
	})
	return &progressFixture{tx: tx, repos: rs, m: m}
}

// seedEnrolledPath returns a student enrolled in a path with two required
// content items, plus a request context for that student.
func (f *progressFixture) seedEnrolledPath(t *testing.T) (context.Context, *types.User, []*types.Content) {
	t.Helper()
	ctx := context.Background()
	student := testutil.SeedUser(t, ctx, f.tx, fmt.Sprintf("s-%s@example.com", uuid.NewString()[:8]))
	creator := testutil.SeedUser(t, ctx, f.tx, fmt.Sprintf("c-%s@example.com", uuid.NewString()[:8]))
	p := testutil.SeedLearningPath(t, ctx, f.tx, creator.ID)
	c1 := testutil.SeedContent(t, ctx, f.tx, p.ID, 1)
	c2 := testutil.SeedContent(t, ctx, f.tx, p.ID, 2)
	testutil.SeedEnrollment(t, ctx, f.tx, student.ID, p.ID)

	rcCtx := ctxutil.WithRequestContext(ctx, ctxutil.RequestContext{
		UserID: student.ID,
		Email:  student.Email,
		Role:   string(types.RoleStudent),
	})
	return rcCtx, student, []*types.Content{c1, c2}
}

func TestCompleteContent_UpdatesEnrollmentPercentage(t *testing.T) {
	f := newProgressFixture(t)
	ctx, _, contents := f.seedEnrolledPath(t)

	res := mediator.Send[CompleteContentCommand, *CompletionResult](ctx, f.m, CompleteContentCommand{
		ContentID: contents[0].ID,
	})
	require.True(t, res.Success, res.Error)
	require.True(t, res.Data.Progress.IsCompleted)
	require.NotNil(t, res.Data.Progress.CompletedAt)
	require.Equal(t, 50, res.Data.Enrollment.ProgressPercentage)
	require.Equal(t, types.PathStatusInProgress, res.Data.Enrollment.Status)
	require.False(t, res.Data.PathCompleted)
}

func TestCompleteContent_CompletesPathOnLastItem(t *testing.T) {
	f := newProgressFixture(t)
	ctx, student, contents := f.seedEnrolledPath(t)

	res := mediator.Send[CompleteContentCommand, *CompletionResult](ctx, f.m, CompleteContentCommand{ContentID: contents[0].ID})
	require.True(t, res.Success, res.Error)

	res = mediator.Send[CompleteContentCommand, *CompletionResult](ctx, f.m, CompleteContentCommand{ContentID: contents[1].ID})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 100, res.Data.Enrollment.ProgressPercentage)
	require.Equal(t, types.PathStatusCompleted, res.Data.Enrollment.Status)
	require.NotNil(t, res.Data.Enrollment.CompletedAt)
	require.True(t, res.Data.PathCompleted)

	notifications, _, err := f.repos.Notification.ListByUser(context.Background(), f.tx, student.ID, false, 1, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, "Learning path completed", notifications[0].Title)
}

func TestCompleteContent_Idempotent(t *testing.T) {
	f := newProgressFixture(t)
	ctx, _, contents := f.seedEnrolledPath(t)

	first := mediator.Send[CompleteContentCommand, *CompletionResult](ctx, f.m, CompleteContentCommand{ContentID: contents[0].ID})
	require.True(t, first.Success, first.Error)

	second := mediator.Send[CompleteContentCommand, *CompletionResult](ctx, f.m, CompleteContentCommand{ContentID: contents[0].ID})
	require.True(t, second.Success, second.Error)
	require.Equal(t, first.Data.Progress.ID, second.Data.Progress.ID)
	require.Equal(t, 50, second.Data.Enrollment.ProgressPercentage)
	require.False(t, second.Data.PathCompleted)
}

func TestCompleteContent_RequiresEnrollment(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()

	outsider := testutil.SeedUser(t, ctx, f.tx, fmt.Sprintf("o-%s@example.com", uuid.NewString()[:8]))
	creator := testutil.SeedUser(t, ctx, f.tx, fmt.Sprintf("c-%s@example.com", uuid.NewString()[:8]))
	p := testutil.SeedLearningPath(t, ctx, f.tx, creator.ID)
	c := testutil.SeedContent(t, ctx, f.tx, p.ID, 1)

	rcCtx := ctxutil.WithRequestContext(ctx, ctxutil.RequestContext{
		UserID: outsider.ID,
		Role:   string(types.RoleStudent),
	})
	res := mediator.Send[CompleteContentCommand, *CompletionResult](rcCtx, f.m, CompleteContentCommand{ContentID: c.ID})
	require.False(t, res.Success)
	require.Equal(t, "not enrolled in this learning path", res.Error)
}

func TestUpdateTimeSpent_Accumulates(t *testing.T) {
	f := newProgressFixture(t)
	ctx, _, contents := f.seedEnrolledPath(t)

	res := mediator.Send[UpdateTimeSpentCommand, *types.UserProgress](ctx, f.m, UpdateTimeSpentCommand{
		ContentID: contents[0].ID,
		Minutes:   10,
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 10, res.Data.TimeSpentMinutes)
	require.False(t, res.Data.IsCompleted)

	res = mediator.Send[UpdateTimeSpentCommand, *types.UserProgress](ctx, f.m, UpdateTimeSpentCommand{
		ContentID: contents[0].ID,
		Minutes:   5,
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, 15, res.Data.TimeSpentMinutes)
}

func TestPathProgress_MergesPerContentState(t *testing.T) {
	f := newProgressFixture(t)
	ctx, _, contents := f.seedEnrolledPath(t)

	res := mediator.Send[CompleteContentCommand, *CompletionResult](ctx, f.m, CompleteContentCommand{ContentID: contents[0].ID})
	require.True(t, res.Success, res.Error)

	prog := mediator.Send[PathProgressQuery, *PathProgress](ctx, f.m, PathProgressQuery{PathID: contents[0].LearningPathID})
	require.True(t, prog.Success, prog.Error)
	require.Equal(t, 2, prog.Data.TotalContents)
	require.Equal(t, 1, prog.Data.CompletedCount)
	require.Len(t, prog.Data.Items, 2)

	byContent := map[uuid.UUID]*ContentProgress{}
	for _, item := range prog.Data.Items {
		byContent[item.Content.ID] = item
	}
	require.NotNil(t, byContent[contents[0].ID].Progress)
	require.True(t, byContent[contents[0].ID].Progress.IsCompleted)
	require.Nil(t, byContent[contents[1].ID].Progress)
}
