package bulk_notification

import (
	"fmt"
	"strings"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	jobrt "github.com/skillup-platform/skillup-backend/internal/jobs/runtime"
)

const pageSize = 200

// Run fans one announcement out to every active user, optionally filtered
// by role. Inserts go in batches so a large user base does not hold one
// giant transaction.
func (p *Pipeline) Run(jc *jobrt.Context) error {
	if jc == nil || jc.Job == nil {
		return nil
	}

	title := strings.TrimSpace(jc.PayloadString("title"))
	message := strings.TrimSpace(jc.PayloadString("message"))
	if title == "" || message == "" {
		jc.Fail("validate", fmt.Errorf("missing title or message"))
		return nil
	}
	notifType := types.NotificationType(jc.PayloadString("type"))
	if notifType == "" {
		notifType = "system"
	}
	role := types.Role(jc.PayloadString("role"))

	jc.Progress("fanout", 5, "Creating notifications")

	page := 1
	created := 0
	for {
		users, total, err := p.users.List(jc.Ctx, nil, role, "", page, pageSize)
		if err != nil {
			jc.Fail("fanout", err)
			return nil
		}
		if len(users) == 0 {
			break
		}

		batch := make([]*types.Notification, 0, len(users))
		for _, u := range users {
			if !u.IsActive {
				continue
			}
			batch = append(batch, &types.Notification{
				UserID:  u.ID,
				Title:   title,
				Message: message,
				Type:    notifType,
			})
		}
		if err := p.notifications.CreateBatch(jc.Ctx, nil, batch); err != nil {
			jc.Fail("fanout", err)
			return nil
		}
		created += len(batch)

		if total > 0 {
			pct := 5 + int(int64(page*pageSize)*90/total)
			if pct > 95 {
				pct = 95
			}
			jc.Progress("fanout", pct, fmt.Sprintf("Created %d notifications", created))
		}
		if int64(page*pageSize) >= total {
			break
		}
		page++
	}

	jc.Succeed("done", map[string]any{
		"created": created,
	})
	return nil
}
