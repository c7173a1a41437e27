package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	resourceft "github.com/skillup-platform/skillup-backend/internal/features/resources"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
)

type ResourceHandler struct {
	m *mediator.Mediator
}

func NewResourceHandler(m *mediator.Mediator) *ResourceHandler {
	return &ResourceHandler{m: m}
}

// GET /api/resources
func (h *ResourceHandler) List(c *gin.Context) {
	q := resourceft.ListResourcesQuery{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	res := mediator.Send[resourceft.ListResourcesQuery, resourceft.ResourcePage](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/resources/:id
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[resourceft.GetResourceQuery, *types.Resource](c.Request.Context(), h.m, resourceft.GetResourceQuery{ResourceID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var cmd resourceft.CreateResourceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[resourceft.CreateResourceCommand, *types.Resource](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusCreated, res)
}

// PUT /api/resources/:id
func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd resourceft.UpdateResourceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd.ResourceID = id
	res := mediator.Send[resourceft.UpdateResourceCommand, *types.Resource](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// DELETE /api/resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[resourceft.DeleteResourceCommand, bool](c.Request.Context(), h.m, resourceft.DeleteResourceCommand{ResourceID: id})
	response.Write(c, http.StatusOK, res)
}

// POST /api/resources/:id/download
func (h *ResourceHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[resourceft.DownloadResourceCommand, *types.Resource](c.Request.Context(), h.m, resourceft.DownloadResourceCommand{ResourceID: id})
	response.Write(c, http.StatusOK, res)
}
