package bulk_notification

import (
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type Pipeline struct {
	db  *gorm.DB
	log *logger.Logger

	users         repos.UserRepo
	notifications repos.NotificationRepo
}

func New(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	notifications repos.NotificationRepo,
) *Pipeline {
	return &Pipeline{
		db:            db,
		log:           baseLog.With("job", "bulk_notification"),
		users:         users,
		notifications: notifications,
	}
}

func (p *Pipeline) Type() string { return "bulk_notification" }
