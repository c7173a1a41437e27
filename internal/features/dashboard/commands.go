package dashboard

import (
	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

type StudentDashboardQuery struct{}

type AdminStatsQuery struct{}

// StudentDashboard aggregates the caller's learning state for the landing
// page. Queries fan out concurrently; see the handler.
type StudentDashboard struct {
	ActivePaths         int64                 `json:"active_paths"`
	CompletedPaths      int64                 `json:"completed_paths"`
	CompletedContents   int64                 `json:"completed_contents"`
	TimeSpentMinutes    int64                 `json:"time_spent_minutes"`
	AssessmentsTaken    int64                 `json:"assessments_taken"`
	AssessmentsPassed   int64                 `json:"assessments_passed"`
	AverageScore        float64               `json:"average_score"`
	RecentNotifications []*types.Notification `json:"recent_notifications"`
}

type AdminStats struct {
	Students         int64 `json:"students"`
	ContentCreators  int64 `json:"content_creators"`
	Admins           int64 `json:"admins"`
	LearningPaths    int64 `json:"learning_paths"`
	Assessments      int64 `json:"assessments"`
	TotalEnrollments int64 `json:"total_enrollments"`
}

type CreatorStatsQuery struct{}

// CreatorStats covers only content the caller authored.
type CreatorStats struct {
	Paths            int64                 `json:"paths"`
	PublishedPaths   int64                 `json:"published_paths"`
	Assessments      int64                 `json:"assessments"`
	TotalEnrollments int64                 `json:"total_enrollments"`
	RecentPaths      []*types.LearningPath `json:"recent_paths"`
}
