package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	contentft "github.com/skillup-platform/skillup-backend/internal/features/content"
	progressft "github.com/skillup-platform/skillup-backend/internal/features/progress"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
)

type ContentHandler struct {
	m *mediator.Mediator
}

func NewContentHandler(m *mediator.Mediator) *ContentHandler {
	return &ContentHandler{m: m}
}

// GET /api/learning-paths/:id/contents
func (h *ContentHandler) ListByPath(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	q := contentft.ListPathContentQuery{PathID: id}
	res := mediator.Send[contentft.ListPathContentQuery, []*contentft.ContentWithProgress](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/contents/:id
func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[contentft.GetContentQuery, *contentft.ContentDetail](c.Request.Context(), h.m, contentft.GetContentQuery{ContentID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/learning-paths/:id/contents
func (h *ContentHandler) Create(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd contentft.CreateContentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd.PathID = id
	res := mediator.Send[contentft.CreateContentCommand, *types.Content](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusCreated, res)
}

// PUT /api/contents/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd contentft.UpdateContentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd.ContentID = id
	res := mediator.Send[contentft.UpdateContentCommand, *types.Content](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// DELETE /api/contents/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[contentft.DeleteContentCommand, bool](c.Request.Context(), h.m, contentft.DeleteContentCommand{ContentID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/contents/:id/complete
func (h *ContentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cmd := progressft.CompleteContentCommand{ContentID: id}
	res := mediator.Send[progressft.CompleteContentCommand, *progressft.CompletionResult](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/contents/:id/time-spent
func (h *ContentHandler) RecordTimeSpent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Minutes int `json:"minutes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd := progressft.UpdateTimeSpentCommand{ContentID: id, Minutes: body.Minutes}
	res := mediator.Send[progressft.UpdateTimeSpentCommand, *types.UserProgress](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// GET /api/learning-paths/:id/progress
func (h *ContentHandler) PathProgress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[progressft.PathProgressQuery, *progressft.PathProgress](c.Request.Context(), h.m, progressft.PathProgressQuery{PathID: id})
	response.Write(c, http.StatusOK, res)
}
