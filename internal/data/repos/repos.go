package repos

import (
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos/assessment"
	"github.com/skillup-platform/skillup-backend/internal/data/repos/files"
	"github.com/skillup-platform/skillup-backend/internal/data/repos/jobs"
	"github.com/skillup-platform/skillup-backend/internal/data/repos/learning"
	"github.com/skillup-platform/skillup-backend/internal/data/repos/notification"
	"github.com/skillup-platform/skillup-backend/internal/data/repos/user"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type UserProfileRepo = user.UserProfileRepo
type UserTokenRepo = user.UserTokenRepo

type LearningPathRepo = learning.LearningPathRepo
type ContentRepo = learning.ContentRepo
type EnrollmentRepo = learning.EnrollmentRepo
type ProgressRepo = learning.ProgressRepo
type ResourceRepo = learning.ResourceRepo

type AssessmentRepo = assessment.AssessmentRepo
type QuestionRepo = assessment.QuestionRepo
type ResultRepo = assessment.ResultRepo
type AnswerRepo = assessment.AnswerRepo

type NotificationRepo = notification.NotificationRepo
type NotificationSettingsRepo = notification.SettingsRepo

type FileRepo = files.FileRepo

type JobRunRepo = jobs.JobRunRepo

type PathFilter = learning.PathFilter
type ResourceFilter = learning.ResourceFilter
type FileFilter = files.FileFilter

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewUserProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
	return user.NewUserProfileRepo(db, baseLog)
}
func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return user.NewUserTokenRepo(db, baseLog)
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	return learning.NewLearningPathRepo(db, baseLog)
}
func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	return learning.NewContentRepo(db, baseLog)
}
func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	return learning.NewEnrollmentRepo(db, baseLog)
}
func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	return learning.NewProgressRepo(db, baseLog)
}
func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
	return learning.NewResourceRepo(db, baseLog)
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return assessment.NewAssessmentRepo(db, baseLog)
}
func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return assessment.NewQuestionRepo(db, baseLog)
}
func NewResultRepo(db *gorm.DB, baseLog *logger.Logger) ResultRepo {
	return assessment.NewResultRepo(db, baseLog)
}
func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return assessment.NewAnswerRepo(db, baseLog)
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	return notification.NewNotificationRepo(db, baseLog)
}
func NewNotificationSettingsRepo(db *gorm.DB, baseLog *logger.Logger) NotificationSettingsRepo {
	return notification.NewSettingsRepo(db, baseLog)
}

func NewFileRepo(db *gorm.DB, baseLog *logger.Logger) FileRepo {
	return files.NewFileRepo(db, baseLog)
}

func NewJobRunRepo(db *gorm.DB, baseLog *logger.Logger) JobRunRepo {
	return jobs.NewJobRunRepo(db, baseLog)
}

// Set bundles every repository so feature handlers take one dependency
// instead of a dozen.
type Set struct {
	Users        UserRepo
	Profiles     UserProfileRepo
	Tokens       UserTokenRepo
	Paths        LearningPathRepo
	Contents     ContentRepo
	Enrollments  EnrollmentRepo
	Progress     ProgressRepo
	Resources    ResourceRepo
	Assessments  AssessmentRepo
	Questions    QuestionRepo
	Results      ResultRepo
	Answers      AnswerRepo
	Notification NotificationRepo
	Settings     NotificationSettingsRepo
	Files        FileRepo
	JobRuns      JobRunRepo
}

func NewSet(db *gorm.DB, baseLog *logger.Logger) *Set {
	return &Set{
		Users:        NewUserRepo(db, baseLog),
		Profiles:     NewUserProfileRepo(db, baseLog),
		Tokens:       NewUserTokenRepo(db, baseLog),
		Paths:        NewLearningPathRepo(db, baseLog),
		Contents:     NewContentRepo(db, baseLog),
		Enrollments:  NewEnrollmentRepo(db, baseLog),
		Progress:     NewProgressRepo(db, baseLog),
		Resources:    NewResourceRepo(db, baseLog),
		Assessments:  NewAssessmentRepo(db, baseLog),
		Questions:    NewQuestionRepo(db, baseLog),
		Results:      NewResultRepo(db, baseLog),
		Answers:      NewAnswerRepo(db, baseLog),
		Notification: NewNotificationRepo(db, baseLog),
		Settings:     NewNotificationSettingsRepo(db, baseLog),
		Files:        NewFileRepo(db, baseLog),
		JobRuns:      NewJobRunRepo(db, baseLog),
	}
}
