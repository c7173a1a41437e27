package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	usersft "github.com/skillup-platform/skillup-backend/internal/features/users"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type UserHandler struct {
	m *mediator.Mediator
}

func NewUserHandler(m *mediator.Mediator) *UserHandler {
	return &UserHandler{m: m}
}

// GET /api/me
func (h *UserHandler) GetMe(c *gin.Context) {
	res := mediator.Send[usersft.GetMeQuery, *usersft.Me](c.Request.Context(), h.m, usersft.GetMeQuery{})
	response.Write(c, http.StatusOK, res)
}

// PUT /api/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var cmd usersft.UpdateMeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[usersft.UpdateMeCommand, *types.User](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// GET /api/me/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	res := mediator.Send[usersft.GetProfileQuery, *types.UserProfile](c.Request.Context(), h.m, usersft.GetProfileQuery{})
	response.Write(c, http.StatusOK, res)
}

// PUT /api/me/profile
func (h *UserHandler) UpsertProfile(c *gin.Context) {
	var cmd usersft.UpsertProfileCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[usersft.UpsertProfileCommand, *types.UserProfile](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// GET /api/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	q := usersft.ListUsersQuery{
		Role:     c.Query("role"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	res := mediator.Send[usersft.ListUsersQuery, result.Page[*types.User]](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/admin/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[usersft.GetUserQuery, *types.User](c.Request.Context(), h.m, usersft.GetUserQuery{UserID: id})
	response.Write(c, http.StatusOK, res)
}

// PUT /api/admin/users/:id/role
func (h *UserHandler) SetUserRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd := usersft.SetUserRoleCommand{UserID: id, Role: body.Role}
	res := mediator.Send[usersft.SetUserRoleCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// PUT /api/admin/users/:id/active
func (h *UserHandler) SetUserActive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cmd := usersft.SetUserActiveCommand{UserID: id, Active: body.Active}
	res := mediator.Send[usersft.SetUserActiveCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}
