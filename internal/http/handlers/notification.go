package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	notifft "github.com/skillup-platform/skillup-backend/internal/features/notifications"
	"github.com/skillup-platform/skillup-backend/internal/http/response"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
)

type NotificationHandler struct {
	m *mediator.Mediator
}

func NewNotificationHandler(m *mediator.Mediator) *NotificationHandler {
	return &NotificationHandler{m: m}
}

// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	q := notifft.ListNotificationsQuery{
		UnreadOnly: queryBool(c, "unread_only"),
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "page_size"),
	}
	res := mediator.Send[notifft.ListNotificationsQuery, notifft.NotificationPage](c.Request.Context(), h.m, q)
	response.Write(c, http.StatusOK, res)
}

// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	res := mediator.Send[notifft.UnreadCountQuery, int64](c.Request.Context(), h.m, notifft.UnreadCountQuery{})
	response.Write(c, http.StatusOK, res)
}

// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[notifft.MarkReadCommand, bool](c.Request.Context(), h.m, notifft.MarkReadCommand{NotificationID: id})
	response.Write(c, http.StatusOK, res)
}

// PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	res := mediator.Send[notifft.MarkAllReadCommand, int64](c.Request.Context(), h.m, notifft.MarkAllReadCommand{})
	response.Write(c, http.StatusOK, res)
}

// DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := mediator.Send[notifft.DeleteNotificationCommand, bool](c.Request.Context(), h.m, notifft.DeleteNotificationCommand{NotificationID: id})
	response.Write(c, http.StatusOK, res)
}

// GET /api/notifications/settings
func (h *NotificationHandler) GetSettings(c *gin.Context) {
	res := mediator.Send[notifft.GetSettingsQuery, *types.NotificationSettings](c.Request.Context(), h.m, notifft.GetSettingsQuery{})
	response.Write(c, http.StatusOK, res)
}

// PUT /api/notifications/settings
func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var cmd notifft.UpdateSettingsCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[notifft.UpdateSettingsCommand, *types.NotificationSettings](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusOK, res)
}

// POST /api/admin/notifications/broadcast
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var cmd notifft.BroadcastCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := mediator.Send[notifft.BroadcastCommand, *types.JobRun](c.Request.Context(), h.m, cmd)
	response.Write(c, http.StatusAccepted, res)
}
