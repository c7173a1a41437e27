package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos/testutil"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

func seedRun(t *testing.T, ctx context.Context, repo JobRunRepo, tx *gorm.DB, owner uuid.UUID, jobType string) *types.JobRun {
	t.Helper()
	entityID := uuid.New()
	runs, err := repo.Create(ctx, tx, []*types.JobRun{{
		ID:          uuid.New(),
		OwnerUserID: owner,
		JobType:     jobType,
		EntityType:  "assessment_result",
		EntityID:    &entityID,
		Status:      types.JobStatusQueued,
		Payload:     datatypes.JSON([]byte(`{"k":"v"}`)),
	}})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	return runs[0]
}

// drainClaims claims until nothing runnable is left so assertions do not
// depend on which row a single claim happens to pick.
func drainClaims(t *testing.T, ctx context.Context, repo JobRunRepo, tx *gorm.DB) {
	t.Helper()
	for i := 0; i < 100; i++ {
		claimed, err := repo.ClaimNextRunnable(ctx, tx, 3, time.Minute, 5*time.Minute)
		require.NoError(t, err)
		if claimed == nil {
			return
		}
	}
	t.Fatal("claim loop did not drain")
}

func seedOwner(t *testing.T, ctx context.Context, tx *gorm.DB) uuid.UUID {
	t.Helper()
	return testutil.SeedUser(t, ctx, tx, fmt.Sprintf("j-%s@example.com", uuid.NewString()[:8])).ID
}

func TestJobRunRepo_ClaimMarksRunning(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewJobRunRepo(db, testutil.Logger(t))

	run := seedRun(t, ctx, repo, tx, seedOwner(t, ctx, tx), "assessment_feedback")

	drainClaims(t, ctx, repo, tx)

	got, err := repo.GetByID(ctx, tx, run.ID)
	require.NoError(t, err)
	require.Equal(t, types.JobStatusRunning, got.Status)
	require.Equal(t, 1, got.Attempts)
	require.NotNil(t, got.LockedAt)
	require.NotNil(t, got.HeartbeatAt)
}

func TestJobRunRepo_FreshRunningJobNotReclaimed(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewJobRunRepo(db, testutil.Logger(t))

	run := seedRun(t, ctx, repo, tx, seedOwner(t, ctx, tx), "assessment_feedback")

	drainClaims(t, ctx, repo, tx)
	drainClaims(t, ctx, repo, tx)

	got, err := repo.GetByID(ctx, tx, run.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Attempts, "a fresh running job must not be claimed again")
}

func TestJobRunRepo_FailedJobRetriesAfterDelay(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewJobRunRepo(db, testutil.Logger(t))

	run := seedRun(t, ctx, repo, tx, seedOwner(t, ctx, tx), "bulk_notification")

	require.NoError(t, repo.UpdateFields(ctx, tx, run.ID, map[string]any{
		"status":        types.JobStatusFailed,
		"attempts":      1,
		"error":         "boom",
		"last_error_at": time.Now().Add(-time.Hour),
	}))

	drainClaims(t, ctx, repo, tx)

	got, err := repo.GetByID(ctx, tx, run.ID)
	require.NoError(t, err)
	require.Equal(t, types.JobStatusRunning, got.Status)
	require.Equal(t, 2, got.Attempts)
}

func TestJobRunRepo_ExhaustedJobNotClaimed(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewJobRunRepo(db, testutil.Logger(t))

	run := seedRun(t, ctx, repo, tx, seedOwner(t, ctx, tx), "bulk_notification")

	require.NoError(t, repo.UpdateFields(ctx, tx, run.ID, map[string]any{
		"status":        types.JobStatusFailed,
		"attempts":      3,
		"error":         "boom",
		"last_error_at": time.Now().Add(-time.Hour),
	}))

	drainClaims(t, ctx, repo, tx)

	got, err := repo.GetByID(ctx, tx, run.ID)
	require.NoError(t, err)
	require.Equal(t, types.JobStatusFailed, got.Status)
	require.Equal(t, 3, got.Attempts)
}

func TestJobRunRepo_UpdateFieldsUnlessStatus(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewJobRunRepo(db, testutil.Logger(t))

	run := seedRun(t, ctx, repo, tx, seedOwner(t, ctx, tx), "assessment_feedback")

	updated, err := repo.UpdateFieldsUnlessStatus(ctx, tx, run.ID,
		[]string{types.JobStatusSucceeded}, map[string]any{"status": types.JobStatusSucceeded})
	require.NoError(t, err)
	require.True(t, updated)

	updated, err = repo.UpdateFieldsUnlessStatus(ctx, tx, run.ID,
		[]string{types.JobStatusSucceeded}, map[string]any{"status": types.JobStatusRunning})
	require.NoError(t, err)
	require.False(t, updated, "succeeded runs are terminal")
}

func TestJobRunRepo_GetLatestByEntity(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewJobRunRepo(db, testutil.Logger(t))

	owner := seedOwner(t, ctx, tx)
	entityID := uuid.New()

	first, err := repo.Create(ctx, tx, []*types.JobRun{{
		ID:          uuid.New(),
		OwnerUserID: owner,
		JobType:     "assessment_feedback",
		EntityType:  "assessment_result",
		EntityID:    &entityID,
		Status:      types.JobStatusSucceeded,
		CreatedAt:   time.Now().Add(-time.Hour),
	}})
	require.NoError(t, err)

	second, err := repo.Create(ctx, tx, []*types.JobRun{{
		ID:          uuid.New(),
		OwnerUserID: owner,
		JobType:     "assessment_feedback",
		EntityType:  "assessment_result",
		EntityID:    &entityID,
		Status:      types.JobStatusQueued,
	}})
	require.NoError(t, err)

	got, err := repo.GetLatestByEntity(ctx, tx, owner, "assessment_result", entityID, "assessment_feedback")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, second[0].ID, got.ID)
	require.NotEqual(t, first[0].ID, got.ID)

	got, err = repo.GetLatestByEntity(ctx, tx, owner, "assessment_result", uuid.New(), "assessment_feedback")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestJobRunRepo_ListByOwner(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewJobRunRepo(db, testutil.Logger(t))

	owner := seedOwner(t, ctx, tx)
	seedRun(t, ctx, repo, tx, owner, "assessment_feedback")
	seedRun(t, ctx, repo, tx, owner, "bulk_notification")

	runs, total, err := repo.ListByOwner(ctx, tx, owner, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, runs, 2)
}
