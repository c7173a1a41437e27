package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	aift "github.com/skillup-platform/skillup-backend/internal/features/ai"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
)

type AIHandler struct {
	m *mediator.Mediator
}

func NewAIHandler(m *mediator.Mediator) *AIHandler {
	return &AIHandler{m: m}
}

// POST /api/ai/career-advice
func (h *AIHandler) CareerAdvice(c *gin.Context) {
	var q aift.CareerAdviceQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[aift.CareerAdviceQuery, *aift.CareerAdvice](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/assessment-results/:id/feedback-status
func (h *AIHandler) FeedbackStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[aift.FeedbackStatusQuery, *types.JobRun](c.Request.Context(), h.m, aift.FeedbackStatusQuery{ResultID: id})
	response.Write(c, http.StatusOK, res)
}

// GET /api/ai/recommendations
func (h *AIHandler) Recommendations(c *gin.Context) {
	q := aift.RecommendPathsQuery{Limit: queryInt(c, "limit")}
	res := mediator.Send[aift.RecommendPathsQuery, []*types.LearningPath](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/me/jobs
func (h *AIHandler) MyJobs(c *gin.Context) {
	q := aift.MyJobsQuery{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	res := mediator.Send[aift.MyJobsQuery, aift.JobPage](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}
