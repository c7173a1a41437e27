package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skillup-platform/skillup-backend/internal/data/repos/testutil"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

func uniqueEmail() string {
	return fmt.Sprintf("u-%s@example.com", uuid.NewString()[:8])
}

func TestUserRepo_GetByEmail(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	email := uniqueEmail()
	seeded := testutil.SeedUser(t, ctx, tx, email)

	got, err := repo.GetByEmail(ctx, tx, email)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, seeded.ID, got.ID)

	// Lookup normalizes case and whitespace.
	got, err = repo.GetByEmail(ctx, tx, "  "+email+" ")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, seeded.ID, got.ID)

	got, err = repo.GetByEmail(ctx, tx, uniqueEmail())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUserRepo_GetByID_NilOnMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	got, err := repo.GetByID(ctx, tx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUserRepo_EmailExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	email := uniqueEmail()
	testutil.SeedUser(t, ctx, tx, email)

	ok, err := repo.EmailExists(ctx, tx, email)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.EmailExists(ctx, tx, uniqueEmail())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUserRepo_SetRoleAndCountByRole(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, uniqueEmail())

	before, err := repo.CountByRole(ctx, tx, types.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, repo.SetRole(ctx, tx, u.ID, types.RoleAdmin))

	after, err := repo.CountByRole(ctx, tx, types.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, before+1, after)

	got, err := repo.GetByID(ctx, tx, u.ID)
	require.NoError(t, err)
	require.Equal(t, types.RoleAdmin, got.Role)
}

func TestUserRepo_List_FiltersBySearch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	needle := uuid.NewString()[:8]
	email := fmt.Sprintf("find-%s@example.com", needle)
	testutil.SeedUser(t, ctx, tx, email)
	testutil.SeedUser(t, ctx, tx, uniqueEmail())

	users, total, err := repo.List(ctx, tx, "", needle, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	require.Equal(t, email, users[0].Email)
}
