package learningpaths

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

type pathsFixture struct {
	tx    *gorm.DB
	repos *repos.Set
	m     *mediator.Mediator
}

func newPathsFixture(t *testing.T) *pathsFixture {
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
		Cache:  services.NewMemoryCache(),
		Notify: services.NewNotificationService(log, rs.Notification, rs.Settings),
	})
	return &pathsFixture{tx: tx, repos: rs, m: m}
}

func (f *pathsFixture) studentCtx(t *testing.T) (context.Context, *types.User) {
	t.Helper()
	u := testutil.SeedUser(t, context.Background(), f.tx, fmt.Sprintf("s-%s@example.com", uuid.NewString()[:8]))
	ctx := ctxutil.WithRequestContext(context.Background(), ctxutil.RequestContext{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(types.RoleStudent),
	})
	return ctx, u
}

func (f *pathsFixture) seedPath(t *testing.T) *types.LearningPath {
	t.Helper()
	creator := testutil.SeedUser(t, context.Background(), f.tx, fmt.Sprintf("c-%s@example.com", uuid.NewString()[:8]))
	return testutil.SeedLearningPath(t, context.Background(), f.tx, creator.ID)
}

func TestEnroll_CreatesEnrollmentAndNotification(t *testing.T) {
	f := newPathsFixture(t)
	ctx, student := f.studentCtx(t)
	p := f.seedPath(t)

	res := mediator.Send[EnrollCommand, *types.UserLearningPath](ctx, f.m, EnrollCommand{PathID: p.ID})
	require.True(t, res.Success, res.Error)
	require.Equal(t, student.ID, res.Data.UserID)
	require.Equal(t, p.ID, res.Data.LearningPathID)
	require.Equal(t, types.PathStatusNotStarted, res.Data.Status)

	notifications, _, err := f.repos.Notification.ListByUser(context.Background(), f.tx, student.ID, false, 1, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, types.NotificationType("learning"), notifications[0].Type)
}

func TestEnroll_RejectsDuplicate(t *testing.T) {
	f := newPathsFixture(t)
	ctx, _ := f.studentCtx(t)
	p := f.seedPath(t)

	res := mediator.Send[EnrollCommand, *types.UserLearningPath](ctx, f.m, EnrollCommand{PathID: p.ID})
	require.True(t, res.Success, res.Error)

	res = mediator.Send[EnrollCommand, *types.UserLearningPath](ctx, f.m, EnrollCommand{PathID: p.ID})
	require.False(t, res.Success)
	require.Equal(t, "already enrolled in this learning path", res.Error)
}

func TestEnroll_RejectsInactivePath(t *testing.T) {
	f := newPathsFixture(t)
	ctx, _ := f.studentCtx(t)
	p := f.seedPath(t)

	require.NoError(t, f.tx.Model(&types.LearningPath{}).
		Where("id = ?", p.ID).
		Update("is_active", false).Error)

	res := mediator.Send[EnrollCommand, *types.UserLearningPath](ctx, f.m, EnrollCommand{PathID: p.ID})
	require.False(t, res.Success)
	require.Equal(t, "learning path not found", res.Error)
}

func TestEnroll_RequiresAuth(t *testing.T) {
	f := newPathsFixture(t)
	p := f.seedPath(t)

	res := mediator.Send[EnrollCommand, *types.UserLearningPath](context.Background(), f.m, EnrollCommand{PathID: p.ID})
	require.False(t, res.Success)
	require.Equal(t, "unauthorized", res.Error)
}

func TestCreatePath_RequiresManagerRole(t *testing.T) {
	f := newPathsFixture(t)
	ctx, _ := f.studentCtx(t)

	res := mediator.Send[CreatePathCommand, *types.LearningPath](ctx, f.m, CreatePathCommand{
		Title:           "Go Backend Track",
		Category:        "engineering",
		DifficultyLevel: "beginner",
	})
	require.False(t, res.Success)
	require.Equal(t, "forbidden", res.Error)
}

func TestCreatePath_AsCreator(t *testing.T) {
	f := newPathsFixture(t)
	creator := testutil.SeedUser(t, context.Background(), f.tx, fmt.Sprintf("c-%s@example.com", uuid.NewString()[:8]))
	ctx := ctxutil.WithRequestContext(context.Background(), ctxutil.RequestContext{
		UserID: creator.ID,
		Email:  creator.Email,
		Role:   string(types.RoleCreator),
	})

	res := mediator.Send[CreatePathCommand, *types.LearningPath](ctx, f.m, CreatePathCommand{
		Title:              "Go Backend Track",
		Category:           "engineering",
		DifficultyLevel:    "intermediate",
		EstimatedHours:     20,
		Prerequisites:      []string{"basic programming"},
		LearningObjectives: []string{"build a REST API"},
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, creator.ID, res.Data.CreatedBy)
	require.True(t, res.Data.IsActive)
	require.Len(t, res.Data.Prerequisites, 1)
}

func TestMyPaths_ListsFreshEnrollmentAtZeroProgress(t *testing.T) {
	f := newPathsFixture(t)
	ctx, student := f.studentCtx(t)
	p := f.seedPath(t)

	res := mediator.Send[MyPathsQuery, []*EnrolledPath](ctx, f.m, MyPathsQuery{})
	require.True(t, res.Success, res.Error)
	require.Empty(t, res.Data)

	enroll := mediator.Send[EnrollCommand, *types.UserLearningPath](ctx, f.m, EnrollCommand{PathID: p.ID})
	require.True(t, enroll.Success, enroll.Error)

	res = mediator.Send[MyPathsQuery, []*EnrolledPath](ctx, f.m, MyPathsQuery{})
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data, 1)
	require.Equal(t, p.ID, res.Data[0].Path.ID)
	require.Equal(t, student.ID, res.Data[0].Enrollment.UserID)
	require.Equal(t, types.PathStatusNotStarted, res.Data[0].Enrollment.Status)
	require.Equal(t, 0, res.Data[0].Enrollment.ProgressPercentage)
}

func TestCreatePath_PersistsListFields(t *testing.T) {
	f := newPathsFixture(t)
	creator := testutil.SeedUser(t, context.Background(), f.tx, fmt.Sprintf("c-%s@example.com", uuid.NewString()[:8]))
	ctx := ctxutil.WithRequestContext(context.Background(), ctxutil.RequestContext{
		UserID: creator.ID,
		Email:  creator.Email,
		Role:   string(types.RoleCreator),
	})

	res := mediator.Send[CreatePathCommand, *types.LearningPath](ctx, f.m, CreatePathCommand{
		Title:              "Go Backend Track",
		Category:           "engineering",
		DifficultyLevel:    "intermediate",
		Prerequisites:      []string{"basic programming", "git"},
		LearningObjectives: []string{"build a REST API"},
	})
	require.True(t, res.Success, res.Error)

	// Read back through the repo, not the struct Create returned.
	stored, err := f.repos.Paths.GetByID(context.Background(), f.tx, res.Data.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, []string{"basic programming", "git"}, []string(stored.Prerequisites))
	require.Equal(t, []string{"build a REST API"}, []string(stored.LearningObjectives))
}

func TestUpdateEnrollmentStatus_RejectsCompletedPath(t *testing.T) {
	f := newPathsFixture(t)
	ctx, student := f.studentCtx(t)
	p := f.seedPath(t)
	e := testutil.SeedEnrollment(t, context.Background(), f.tx, student.ID, p.ID)

	require.NoError(t, f.repos.Enrollments.UpdateProgress(context.Background(), f.tx,
		e.ID, types.PathStatusCompleted, 100, nil))

	res := mediator.Send[UpdateEnrollmentStatusCommand, *types.UserLearningPath](ctx, f.m, UpdateEnrollmentStatusCommand{
		PathID: p.ID,
		Status: "paused",
	})
	require.False(t, res.Success)
	require.Equal(t, "learning path already completed", res.Error)
}

func TestUpdateEnrollmentStatus_Pauses(t *testing.T) {
	f := newPathsFixture(t)
	ctx, student := f.studentCtx(t)
	p := f.seedPath(t)
	testutil.SeedEnrollment(t, context.Background(), f.tx, student.ID, p.ID)

	res := mediator.Send[UpdateEnrollmentStatusCommand, *types.UserLearningPath](ctx, f.m, UpdateEnrollmentStatusCommand{
		PathID: p.ID,
		Status: "paused",
	})
	require.True(t, res.Success, res.Error)
	require.Equal(t, types.PathStatusPaused, res.Data.Status)
}
