package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

func newTestTokens(t *testing.T, secret, issuer string, ttl time.Duration) TokenService {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	svc, err := NewTokenService(log, secret, issuer, ttl)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	log, err := logger.New("test")
	require.NoError(t, err)
	_, err = NewTokenService(log, "", "issuer", time.Hour)
	require.Error(t, err)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := newTestTokens(t, "test-secret", "skillup-backend", time.Hour)

	userID := uuid.New()
	signed, err := svc.IssueAccessToken(userID, "student@example.com", "student")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	rc, err := svc.VerifyAccessToken(signed)
	require.NoError(t, err)
	require.Equal(t, userID, rc.UserID)
	require.Equal(t, "student@example.com", rc.Email)
	require.Equal(t, "student", rc.Role)
	require.True(t, rc.Authenticated())
}

func TestVerifyAccessToken_RejectsWrongSecret(t *testing.T) {
	issued := newTestTokens(t, "secret-a", "skillup-backend", time.Hour)
	verifier := newTestTokens(t, "secret-b", "skillup-backend", time.Hour)

	signed, err := issued.IssueAccessToken(uuid.New(), "a@b.c", "student")
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(signed)
	require.Error(t, err)
}

func TestVerifyAccessToken_RejectsWrongIssuer(t *testing.T) {
	issued := newTestTokens(t, "shared", "other-service", time.Hour)
	verifier := newTestTokens(t, "shared", "skillup-backend", time.Hour)

	signed, err := issued.IssueAccessToken(uuid.New(), "a@b.c", "student")
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(signed)
	require.Error(t, err)
}

func TestVerifyAccessToken_RejectsExpired(t *testing.T) {
	svc := newTestTokens(t, "test-secret", "skillup-backend", -time.Minute)

	signed, err := svc.IssueAccessToken(uuid.New(), "a@b.c", "student")
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(signed)
	require.Error(t, err)
}

func TestVerifyAccessToken_RejectsGarbage(t *testing.T) {
	svc := newTestTokens(t, "test-secret", "skillup-backend", time.Hour)
	_, err := svc.VerifyAccessToken("not.a.jwt")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	svc := newTestTokens(t, "test-secret", "skillup-backend", time.Hour)

	hash, err := svc.HashPassword("SuperSecret1!")
	require.NoError(t, err)
	require.NotEqual(t, "SuperSecret1!", hash)

	require.True(t, svc.CheckPassword(hash, "SuperSecret1!"))
	require.False(t, svc.CheckPassword(hash, "wrong"))
}

func TestNewOpaqueToken_Unique(t *testing.T) {
	svc := newTestTokens(t, "test-secret", "skillup-backend", time.Hour)

	a, err := svc.NewOpaqueToken()
	require.NoError(t, err)
	b, err := svc.NewOpaqueToken()
	require.NoError(t, err)

	require.Len(t, a, 64)
	require.NotEqual(t, a, b)
}
