package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "A",
		LastName:     "B",
		Role:         types.RoleStudent,
		IsActive:     true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedLearningPath(tb testing.TB, ctx context.Context, tx *gorm.DB, createdBy uuid.UUID) *types.LearningPath {
	tb.Helper()
	p := &types.LearningPath{
		ID:              uuid.New(),
		Title:           "path",
		Category:        "engineering",
		DifficultyLevel: "beginner",
		IsActive:        true,
		CreatedBy:       createdBy,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed learning path: %v", err)
	}
	return p
}

func SeedContent(tb testing.TB, ctx context.Context, tx *gorm.DB, pathID uuid.UUID, order int) *types.Content {
	tb.Helper()
	c := &types.Content{
		ID:             uuid.New(),
		LearningPathID: pathID,
		Title:          "content",
		ContentType:    "article",
		DisplayOrder:   order,
		IsRequired:     true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed content: %v", err)
	}
	return c
}

func SeedEnrollment(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) *types.UserLearningPath {
	tb.Helper()
	e := &types.UserLearningPath{
		ID:             uuid.New(),
		UserID:         userID,
		LearningPathID: pathID,
		Status:         types.PathStatusNotStarted,
		EnrolledAt:     time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
	return e
}

func SeedAssessment(tb testing.TB, ctx context.Context, tx *gorm.DB, createdBy uuid.UUID, passingScore int) *types.Assessment {
	tb.Helper()
	a := &types.Assessment{
		ID:             uuid.New(),
		Title:          "assessment",
		Category:       "engineering",
		AssessmentType: "knowledge_test",
		PassingScore:   passingScore,
		IsActive:       true,
		CreatedBy:      createdBy,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, order, points int, answer string) *types.Question {
	tb.Helper()
	q := &types.Question{
		ID:            uuid.New(),
		AssessmentID:  assessmentID,
		QuestionText:  "question",
		QuestionType:  "short_answer",
		CorrectAnswer: answer,
		Points:        points,
		DisplayOrder:  order,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedNotification(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.Notification {
	tb.Helper()
	n := &types.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   "title",
		Message: "message",
		Type:    "system",
	}
	if err := tx.WithContext(ctx).Create(n).Error; err != nil {
		tb.Fatalf("seed notification: %v", err)
	}
	return n
}
