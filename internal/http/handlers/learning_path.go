package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	lpft "github.com/skillup-platform/skillup-backend/internal/features/learningpaths"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type LearningPathHandler struct {
	m *mediator.Mediator
}

func NewLearningPathHandler(m *mediator.Mediator) *LearningPathHandler {
	return &LearningPathHandler{m: m}
}

// GET /api/learning-paths
func (h *LearningPathHandler) List(c *gin.Context) {
	q := lpft.ListPathsQuery{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "page_size"),
	}
	res := mediator.Send[lpft.ListPathsQuery, result.Page[*types.LearningPath]](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/learning-paths/:id
func (h *LearningPathHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[lpft.GetPathQuery, *lpft.PathDetail](c.Request.Context(), h.m, lpft.GetPathQuery{PathID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/learning-paths
func (h *LearningPathHandler) Create(c *gin.Context) {
	var cmd lpft.CreatePathCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[lpft.CreatePathCommand, *types.LearningPath](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusCreated, res)
}

// PUT /api/learning-paths/:id
func (h *LearningPathHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd lpft.UpdatePathCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd.PathID = id
	res := mediator.Send[lpft.UpdatePathCommand, *types.LearningPath](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// DELETE /api/learning-paths/:id
func (h *LearningPathHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[lpft.DeletePathCommand, bool](c.Request.Context(), h.m, lpft.DeletePathCommand{PathID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/learning-paths/:id/enroll
func (h *LearningPathHandler) Enroll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[lpft.EnrollCommand, *types.UserLearningPath](c.Request.Context(), h.m, lpft.EnrollCommand{PathID: id})
	response.Write(c, http.StatusCreated, res)
}

// GET /api/me/learning-paths
func (h *LearningPathHandler) MyPaths(c *gin.Context) {
	res := mediator.Send[lpft.MyPathsQuery, []*lpft.EnrolledPath](c.Request.Context(), h.m, lpft.MyPathsQuery{})
	response.Write(c, http.StatusOK, res)
}

// PUT /api/learning-paths/:id/enrollment
func (h *LearningPathHandler) UpdateEnrollmentStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd := lpft.UpdateEnrollmentStatusCommand{PathID: id, Status: body.Status}
	res := mediator.Send[lpft.UpdateEnrollmentStatusCommand, *types.UserLearningPath](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}
