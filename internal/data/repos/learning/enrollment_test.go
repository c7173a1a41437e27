package learning

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos/testutil"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

func seedPair(t *testing.T, ctx context.Context, tx *gorm.DB) (*types.User, *types.LearningPath) {
	t.Helper()
	u := testutil.SeedUser(t, ctx, tx, fmt.Sprintf("e-%s@example.com", uuid.NewString()[:8]))
	p := testutil.SeedLearningPath(t, ctx, tx, u.ID)
	return u, p
}

func TestEnrollmentRepo_GetPair(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewEnrollmentRepo(db, testutil.Logger(t))

	u, p := seedPair(t, ctx, tx)

	got, err := repo.GetPair(ctx, tx, u.ID, p.ID)
	require.NoError(t, err)
	require.Nil(t, got, "no enrollment yet")

	seeded := testutil.SeedEnrollment(t, ctx, tx, u.ID, p.ID)

	got, err = repo.GetPair(ctx, tx, u.ID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, seeded.ID, got.ID)
	require.Equal(t, types.PathStatusNotStarted, got.Status)
}

func TestEnrollmentRepo_UpdateProgress(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewEnrollmentRepo(db, testutil.Logger(t))

	u, p := seedPair(t, ctx, tx)
	e := testutil.SeedEnrollment(t, ctx, tx, u.ID, p.ID)

	completedAt := time.Now().UTC()
	require.NoError(t, repo.UpdateProgress(ctx, tx, e.ID, types.PathStatusCompleted, 100, &completedAt))

	got, err := repo.GetPair(ctx, tx, u.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, types.PathStatusCompleted, got.Status)
	require.Equal(t, 100, got.ProgressPercentage)
	require.NotNil(t, got.CompletedAt)
}

func TestEnrollmentRepo_Counts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewEnrollmentRepo(db, testutil.Logger(t))

	u, p := seedPair(t, ctx, tx)
	_, p2 := seedPair(t, ctx, tx)
	testutil.SeedEnrollment(t, ctx, tx, u.ID, p.ID)
	testutil.SeedEnrollment(t, ctx, tx, u.ID, p2.ID)

	byPath, err := repo.CountByPath(ctx, tx, p.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), byPath)

	byUser, err := repo.CountByUser(ctx, tx, u.ID, "")
	require.NoError(t, err)
	require.Equal(t, int64(2), byUser)

	byStatus, err := repo.CountByUser(ctx, tx, u.ID, types.PathStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, int64(0), byStatus)
}

func TestEnrollmentRepo_DuplicatePairRejected(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewEnrollmentRepo(db, testutil.Logger(t))

	u, p := seedPair(t, ctx, tx)
	testutil.SeedEnrollment(t, ctx, tx, u.ID, p.ID)

	// Last statement in the tx: the violation poisons the transaction.
	_, err := repo.Create(ctx, tx, &types.UserLearningPath{
		ID:             uuid.New(),
		UserID:         u.ID,
		LearningPathID: p.ID,
		Status:         types.PathStatusNotStarted,
		EnrolledAt:     time.Now().UTC(),
	})
	require.Error(t, err)
}
