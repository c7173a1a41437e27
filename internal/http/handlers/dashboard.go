package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashft "github.com/skillup-platform/skillup-backend/internal/features/dashboard"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
)

type DashboardHandler struct {
	m *mediator.Mediator
}

func NewDashboardHandler(m *mediator.Mediator) *DashboardHandler {
	return &DashboardHandler{m: m}
}

// GET /api/dashboard
func (h *DashboardHandler) Student(c *gin.Context) {
	res := mediator.Send[dashft.StudentDashboardQuery, *dashft.StudentDashboard](c.Request.Context(), h.m, dashft.StudentDashboardQuery{})
	response.Write(c, http.StatusOK, res)
}

// GET /api/admin/stats
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	res := mediator.Send[dashft.AdminStatsQuery, *dashft.AdminStats](c.Request.Context(), h.m, dashft.AdminStatsQuery{})
	response.Write(c, http.StatusOK, res)
}

// GET /api/dashboard/creator
func (h *DashboardHandler) CreatorStats(c *gin.Context) {
	res := mediator.Send[dashft.CreatorStatsQuery, *dashft.CreatorStats](c.Request.Context(), h.m, dashft.CreatorStatsQuery{})
	response.Write(c, http.StatusOK, res)
}
