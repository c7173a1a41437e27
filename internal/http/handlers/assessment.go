package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	assessft "github.com/skillup-platform/skillup-backend/internal/features/assessments"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
)

type AssessmentHandler struct {
	m *mediator.Mediator
}

func NewAssessmentHandler(m *mediator.Mediator) *AssessmentHandler {
	return &AssessmentHandler{m: m}
}

// GET /api/assessments
func (h *AssessmentHandler) List(c *gin.Context) {
	q := assessft.ListAssessmentsQuery{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	res := mediator.Send[assessft.ListAssessmentsQuery, assessft.AssessmentPage](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[assessft.GetAssessmentQuery, *types.Assessment](c.Request.Context(), h.m, assessft.GetAssessmentQuery{AssessmentID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/assessments
func (h *AssessmentHandler) Create(c *gin.Context) {
	var cmd assessft.CreateAssessmentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[assessft.CreateAssessmentCommand, *types.Assessment](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusCreated, res)
}

// PUT /api/assessments/:id
func (h *AssessmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd assessft.UpdateAssessmentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd.AssessmentID = id
	res := mediator.Send[assessft.UpdateAssessmentCommand, *types.Assessment](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// DELETE /api/assessments/:id
func (h *AssessmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[assessft.DeleteAssessmentCommand, bool](c.Request.Context(), h.m, assessft.DeleteAssessmentCommand{AssessmentID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/assessments/:id/submit
func (h *AssessmentHandler) Submit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd assessft.SubmitAssessmentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd.AssessmentID = id
	res := mediator.Send[assessft.SubmitAssessmentCommand, *types.AssessmentResult](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusCreated, res)
}

// GET /api/me/assessment-results
func (h *AssessmentHandler) MyResults(c *gin.Context) {
	q := assessft.MyResultsQuery{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	res := mediator.Send[assessft.MyResultsQuery, assessft.ResultPage](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/assessment-results/:id
func (h *AssessmentHandler) GetResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[assessft.GetResultQuery, *types.AssessmentResult](c.Request.Context(), h.m, assessft.GetResultQuery{ResultID: id})
	response.Write(c, http.StatusOK, res)
}
