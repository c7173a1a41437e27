package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},
		&types.UserProfile{},
		&types.UserToken{},

		&types.LearningPath{},
		&types.Content{},
		&types.UserLearningPath{},
		&types.UserProgress{},
		&types.Resource{},

		&types.Assessment{},
		&types.Question{},
		&types.AssessmentResult{},
		&types.UserAnswer{},

		&types.Notification{},
		&types.NotificationSettings{},

		&types.FileUpload{},
		&types.FileShare{},

		&types.JobRun{},
	)
}

// EnsureJobIndexes adds the partial index the claim query leans on; gorm tags
// cannot express it.
func EnsureJobIndexes(db *gorm.DB) error {
	stmt := `
CREATE INDEX IF NOT EXISTS idx_job_run_runnable
ON job_run (status, created_at)
WHERE deleted_at IS NULL`
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create idx_job_run_runnable: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureJobIndexes(s.db); err != nil {
		s.log.Error("Job index migration failed", "error", err)
		return err
	}
	return nil
}
