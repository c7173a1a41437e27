package services

import (
	"context"
	"fmt"
	"strings"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

// AIService produces advisory text. The stub implementation is deterministic
// and derives everything from the inputs, no external model call.
type AIService interface {
	GenerateAssessmentFeedback(ctx context.Context, a *types.Assessment, res *types.AssessmentResult) (string, error)
	GenerateCareerAdvice(ctx context.Context, specialization, careerGoals string) (string, error)
}

type stubAI struct {
	log *logger.Logger
}

func NewStubAI(log *logger.Logger) AIService {
	return &stubAI{log: log.With("service", "AIService")}
}

func (s *stubAI) GenerateAssessmentFeedback(_ context.Context, a *types.Assessment, res *types.AssessmentResult) (string, error) {
	if a == nil || res == nil {
		return "", fmt.Errorf("assessment and result are required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You scored %d out of %d on %q, answering %d of %d questions correctly.",
		res.Score, res.MaxScore, a.Title, res.CorrectAnswers, res.TotalQuestions)

	pct := 0
	if res.MaxScore > 0 {
		pct = res.Score * 100 / res.MaxScore
	}
	switch {
	case res.IsPassed && pct >= 90:
		b.WriteString(" Excellent result. Consider moving on to more advanced material in this category.")
	case res.IsPassed:
		b.WriteString(" You passed. Reviewing the questions you missed will help consolidate the topic.")
	case pct >= 50:
		b.WriteString(" You were close to the passing threshold. Revisit the related learning path content and retake the assessment.")
	default:
		b.WriteString(" This topic needs more work. Start with the beginner content in this category before retaking the assessment.")
	}

	if a.Category != "" {
		fmt.Fprintf(&b, " Suggested focus area: %s.", a.Category)
	}
	return b.String(), nil
}

func (s *stubAI) GenerateCareerAdvice(_ context.Context, specialization, careerGoals string) (string, error) {
	spec := strings.TrimSpace(specialization)
	goals := strings.TrimSpace(careerGoals)
	if spec == "" && goals == "" {
		return "Fill in your specialization and career goals on your profile to get tailored advice.", nil
	}

	var b strings.Builder
	if spec != "" {
		fmt.Fprintf(&b, "Based on your specialization in %s, look for learning paths in that category and complete their assessments to validate your level.", spec)
	}
	if goals != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "To work toward %q, set a steady pace of a few content items per week and track your progress on the dashboard.", goals)
	}
	return b.String(), nil
}
