package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/skillup-platform/skillup-backend/internal/data/repos/testutil"
	httpH "github.com/skillup-platform/skillup-backend/internal/http/handlers"
	httpMW "github.com/skillup-platform/skillup-backend/internal/http/middleware"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testutil.Logger(t)
	m := mediator.New()

	tokens, err := services.NewTokenService(log, "test-secret", "skillup", time.Minute)
	require.NoError(t, err)

	return NewServer("127.0.0.1:0", RouterConfig{
		Log:            log,
		AuthMiddleware: httpMW.NewAuthMiddleware(log, tokens),

		HealthHandler:       httpH.NewHealthHandler(),
		AuthHandler:         httpH.NewAuthHandler(m),
		UserHandler:         httpH.NewUserHandler(m),
		LearningPathHandler: httpH.NewLearningPathHandler(m),
		ContentHandler:      httpH.NewContentHandler(m),
		AssessmentHandler:   httpH.NewAssessmentHandler(m),
		ResourceHandler:     httpH.NewResourceHandler(m),
		FileHandler:         httpH.NewFileHandler(log, m),
		NotificationHandler: httpH.NewNotificationHandler(m),
		DashboardHandler:    httpH.NewDashboardHandler(m),
		AIHandler:           httpH.NewAIHandler(m),
	})
}

func TestServer_ServesHealthcheck(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServerRun_DrainsOnContextCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server still running after cancellation")
	}
}
