package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	"github.com/skillup-platform/skillup-backend/internal/jobs/pipeline/assessment_feedback"
	"github.com/skillup-platform/skillup-backend/internal/jobs/pipeline/bulk_notification"
	"github.com/skillup-platform/skillup-backend/internal/jobs/runtime"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

func registerPipelines(registry *runtime.Registry, db *gorm.DB, log *logger.Logger, rs *repos.Set, svcs Services) error {
	pipelines := []runtime.Handler{
		assessment_feedback.New(db, log, rs.Assessments, rs.Results, svcs.AI, svcs.Notify),
		bulk_notification.New(db, log, rs.Users, rs.Notification),
	}
	for _, p := range pipelines {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("register pipeline %s: %w", p.Type(), err)
		}
	}
	return nil
}
