// Package domain re-exports the entity types of every feature area so that
// repositories and handlers can refer to them through a single import.
package domain

import (
	"github.com/skillup-platform/skillup-backend/internal/domain/assessment"
	"github.com/skillup-platform/skillup-backend/internal/domain/files"
	"github.com/skillup-platform/skillup-backend/internal/domain/jobs"
	"github.com/skillup-platform/skillup-backend/internal/domain/learning"
	"github.com/skillup-platform/skillup-backend/internal/domain/notification"
	"github.com/skillup-platform/skillup-backend/internal/domain/user"
)

type (
	User        = user.User
	UserProfile = user.UserProfile
	UserToken   = user.UserToken
	Role        = user.Role
	TokenKind   = user.TokenKind

	LearningPath     = learning.LearningPath
	Content          = learning.Content
	UserLearningPath = learning.UserLearningPath
	UserProgress     = learning.UserProgress
	Resource         = learning.Resource
	DifficultyLevel  = learning.DifficultyLevel
	ContentType      = learning.ContentType
	PathStatus       = learning.PathStatus
	ResourceType     = learning.ResourceType

	Assessment       = assessment.Assessment
	Question         = assessment.Question
	AssessmentResult = assessment.AssessmentResult
	UserAnswer       = assessment.UserAnswer
	AssessmentType   = assessment.AssessmentType
	QuestionType     = assessment.QuestionType

	Notification         = notification.Notification
	NotificationType     = notification.Type
	NotificationSettings = notification.Settings

	FileUpload = files.FileUpload
	FileShare  = files.FileShare

	JobRun = jobs.JobRun
)

const (
	RoleStudent = user.RoleStudent
	RoleCreator = user.RoleCreator
	RoleAdmin   = user.RoleAdmin

	TokenKindRefresh           = user.TokenKindRefresh
	TokenKindEmailVerification = user.TokenKindEmailVerification
	TokenKindPasswordReset     = user.TokenKindPasswordReset

	PathStatusNotStarted = learning.PathStatusNotStarted
	PathStatusInProgress = learning.PathStatusInProgress
	PathStatusCompleted  = learning.PathStatusCompleted
	PathStatusPaused     = learning.PathStatusPaused

	JobStatusQueued    = jobs.StatusQueued
	JobStatusRunning   = jobs.StatusRunning
	JobStatusSucceeded = jobs.StatusSucceeded
	JobStatusFailed    = jobs.StatusFailed
)
