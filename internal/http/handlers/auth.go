package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authft "github.com/skillup-platform/skillup-backend/internal/features/auth"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
)

type AuthHandler struct {
	m *mediator.Mediator
}

func NewAuthHandler(m *mediator.Mediator) *AuthHandler {
	return &AuthHandler{m: m}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var cmd authft.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.RegisterCommand, *authft.TokenPair](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusCreated, res)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var cmd authft.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.LoginCommand, *authft.TokenPair](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var cmd authft.RefreshCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.RefreshCommand, *authft.TokenPair](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var cmd authft.LogoutCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.LogoutCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var cmd authft.VerifyEmailCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.VerifyEmailCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var cmd authft.ForgotPasswordCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.ForgotPasswordCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var cmd authft.ResetPasswordCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.ResetPasswordCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var cmd authft.ChangePasswordCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[authft.ChangePasswordCommand, bool](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}
