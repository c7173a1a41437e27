package notifications

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/mediator"
	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type Deps struct {
	DB    *gorm.DB
	Log   *logger.Logger
	Repos *repos.Set
}

type deps struct {
	Deps
}

func Register(m *mediator.Mediator, d Deps) {
	d.Log = d.Log.With("feature", "notifications")
	base := &deps{Deps: d}
	mediator.MustRegister[ListNotificationsQuery, NotificationPage](m, &listNotificationsHandler{base})
	mediator.MustRegister[UnreadCountQuery, int64](m, &unreadCountHandler{base})
	mediator.MustRegister[MarkReadCommand, bool](m, &markReadHandler{base})
	mediator.MustRegister[MarkAllReadCommand, int64](m, &markAllReadHandler{base})
	mediator.MustRegister[DeleteNotificationCommand, bool](m, &deleteNotificationHandler{base})
	mediator.MustRegister[GetSettingsQuery, *types.NotificationSettings](m, &getSettingsHandler{base})
	mediator.MustRegister[UpdateSettingsCommand, *types.NotificationSettings](m, &updateSettingsHandler{base})
	mediator.MustRegister[BroadcastCommand, *types.JobRun](m, &broadcastHandler{base})
}

type listNotificationsHandler struct{ *deps }

func (h *listNotificationsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, q ListNotificationsQuery) result.Result[NotificationPage] {
	if !rc.Authenticated() {
		return result.Failure[NotificationPage]("unauthorized")
	}
	page, pageSize := result.NormalizePaging(q.Page, q.PageSize)
	items, total, err := h.Repos.Notification.ListByUser(ctx, nil, rc.UserID, q.UnreadOnly, page, pageSize)
	if err != nil {
		h.Log.Error("Failed to list notifications", "error", err)
		return result.Failure[NotificationPage]("failed to list notifications")
	}
	return result.Ok(result.NewPage(items, total, page, pageSize))
}

type unreadCountHandler struct{ *deps }

func (h *unreadCountHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ UnreadCountQuery) result.Result[int64] {
	if !rc.Authenticated() {
		return result.Failure[int64]("unauthorized")
	}
	count, err := h.Repos.Notification.CountUnread(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to count unread notifications", "error", err)
		return result.Failure[int64]("failed to count notifications")
	}
	return result.Ok(count)
}

type markReadHandler struct{ *deps }

func (h *markReadHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd MarkReadCommand) result.Result[bool] {
	if !rc.Authenticated() {
		return result.Failure[bool]("unauthorized")
	}
	n, err := h.Repos.Notification.GetByID(ctx, nil, cmd.NotificationID)
	if err != nil {
		h.Log.Error("Failed to load notification", "error", err)
		return result.Failure[bool]("failed to mark notification read")
	}
	if n == nil || n.UserID != rc.UserID {
		return result.NotFound[bool]("notification")
	}
	if n.IsRead {
		return result.Ok(true)
	}
	if err := h.Repos.Notification.MarkRead(ctx, nil, n.ID, time.Now()); err != nil {
		h.Log.Error("Failed to mark notification read", "notification_id", n.ID, "error", err)
		return result.Failure[bool]("failed to mark notification read")
	}
	return result.Ok(true)
}

type markAllReadHandler struct{ *deps }

func (h *markAllReadHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ MarkAllReadCommand) result.Result[int64] {
	if !rc.Authenticated() {
		return result.Failure[int64]("unauthorized")
	}
	n, err := h.Repos.Notification.MarkAllRead(ctx, nil, rc.UserID, time.Now())
	if err != nil {
		h.Log.Error("Failed to mark notifications read", "error", err)
		return result.Failure[int64]("failed to mark notifications read")
	}
	return result.Ok(n)
}

type deleteNotificationHandler struct{ *deps }

func (h *deleteNotificationHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd DeleteNotificationCommand) result.Result[bool] {
	if !rc.Authenticated() {
		return result.Failure[bool]("unauthorized")
	}
	n, err := h.Repos.Notification.GetByID(ctx, nil, cmd.NotificationID)
	if err != nil {
		h.Log.Error("Failed to load notification", "error", err)
		return result.Failure[bool]("failed to delete notification")
	}
	if n == nil || n.UserID != rc.UserID {
		return result.NotFound[bool]("notification")
	}
	if err := h.Repos.Notification.Delete(ctx, nil, n.ID); err != nil {
		h.Log.Error("Failed to delete notification", "notification_id", n.ID, "error", err)
		return result.Failure[bool]("failed to delete notification")
	}
	return result.Ok(true)
}

type getSettingsHandler struct{ *deps }

func (h *getSettingsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, _ GetSettingsQuery) result.Result[*types.NotificationSettings] {
	if !rc.Authenticated() {
		return result.Failure[*types.NotificationSettings]("unauthorized")
	}
	s, err := h.Repos.Settings.GetByUserID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load notification settings", "error", err)
		return result.Failure[*types.NotificationSettings]("failed to load notification settings")
	}
	if s == nil {
		// Defaults until the user saves anything.
		s = &types.NotificationSettings{
			UserID:                  rc.UserID,
			EmailNotifications:      true,
			PushNotifications:       true,
			LearningReminders:       true,
			AssessmentNotifications: true,
			SystemUpdates:           true,
		}
	}
	return result.Ok(s)
}

type updateSettingsHandler struct{ *deps }

func (h *updateSettingsHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd UpdateSettingsCommand) result.Result[*types.NotificationSettings] {
	if !rc.Authenticated() {
		return result.Failure[*types.NotificationSettings]("unauthorized")
	}
	s, err := h.Repos.Settings.GetByUserID(ctx, nil, rc.UserID)
	if err != nil {
		h.Log.Error("Failed to load notification settings", "error", err)
		return result.Failure[*types.NotificationSettings]("failed to update notification settings")
	}
	if s == nil {
		s = &types.NotificationSettings{
			UserID:                  rc.UserID,
			EmailNotifications:      true,
			PushNotifications:       true,
			LearningReminders:       true,
			AssessmentNotifications: true,
			SystemUpdates:           true,
		}
	}
	if cmd.EmailNotifications != nil {
		s.EmailNotifications = *cmd.EmailNotifications
	}
	if cmd.PushNotifications != nil {
		s.PushNotifications = *cmd.PushNotifications
	}
	if cmd.LearningReminders != nil {
		s.LearningReminders = *cmd.LearningReminders
	}
	if cmd.AssessmentNotifications != nil {
		s.AssessmentNotifications = *cmd.AssessmentNotifications
	}
	if cmd.SystemUpdates != nil {
		s.SystemUpdates = *cmd.SystemUpdates
	}
	if cmd.MarketingEmails != nil {
		s.MarketingEmails = *cmd.MarketingEmails
	}

	saved, err := h.Repos.Settings.Upsert(ctx, nil, s)
	if err != nil {
		h.Log.Error("Failed to save notification settings", "error", err)
		return result.Failure[*types.NotificationSettings]("failed to update notification settings")
	}
	return result.Ok(saved)
}

type broadcastHandler struct{ *deps }

func (h *broadcastHandler) Handle(ctx context.Context, rc ctxutil.RequestContext, cmd BroadcastCommand) result.Result[*types.JobRun] {
	if rc.Role != string(types.RoleAdmin) {
		return result.Failure[*types.JobRun]("forbidden")
	}

	payload, err := json.Marshal(map[string]string{
		"title":   cmd.Title,
		"message": cmd.Message,
		"type":    cmd.Type,
		"role":    cmd.Role,
	})
	if err != nil {
		return result.Failure[*types.JobRun]("failed to queue broadcast")
	}
	runs, err := h.Repos.JobRuns.Create(ctx, nil, []*types.JobRun{{
		OwnerUserID: rc.UserID,
		JobType:     "bulk_notification",
		Status:      types.JobStatusQueued,
		Payload:     datatypes.JSON(payload),
	}})
	if err != nil {
		h.Log.Error("Failed to queue broadcast", "error", err)
		return result.Failure[*types.JobRun]("failed to queue broadcast")
	}
	return result.Ok(runs[0])
}
