package assessment_feedback

import (
	"fmt"

	"github.com/google/uuid"

	types "github.com/skillup-platform/skillup-backend/internal/domain"
	jobrt "github.com/skillup-platform/skillup-backend/internal/jobs/runtime"
)

// Run generates AI feedback for a graded submission and stores it on the
// result row. The submission itself was already persisted by the handler;
// a failure here never unwinds the attempt.
func (p *Pipeline) Run(jc *jobrt.Context) error {
	if jc == nil || jc.Job == nil {
		return nil
	}
	resultID, ok := jc.PayloadUUID("result_id")
	if !ok || resultID == uuid.Nil {
		jc.Fail("validate", fmt.Errorf("missing result_id"))
		return nil
	}

	jc.Progress("load", 10, "Loading assessment result")
	res, err := p.results.GetByID(jc.Ctx, nil, resultID)
	if err != nil {
		jc.Fail("load", err)
		return nil
	}
	if res == nil {
		jc.Fail("load", fmt.Errorf("assessment result %s not found", resultID))
		return nil
	}

	a, err := p.assessments.GetByID(jc.Ctx, nil, res.AssessmentID)
	if err != nil {
		jc.Fail("load", err)
		return nil
	}
	if a == nil {
		jc.Fail("load", fmt.Errorf("assessment %s not found", res.AssessmentID))
		return nil
	}

	jc.Progress("generate", 50, "Generating feedback")
	feedback, err := p.ai.GenerateAssessmentFeedback(jc.Ctx, a, res)
	if err != nil {
		jc.Fail("generate", err)
		return nil
	}

	jc.Progress("store", 80, "Storing feedback")
	if err := p.results.UpdateFields(jc.Ctx, nil, res.ID, map[string]any{
		"ai_feedback": feedback,
	}); err != nil {
		jc.Fail("store", err)
		return nil
	}

	p.notify.Notify(jc.Ctx, nil, &types.Notification{
		UserID:  res.UserID,
		Title:   "Assessment feedback ready",
		Message: fmt.Sprintf("Feedback for %q is available on your results page.", a.Title),
		Type:    "assessment",
	})

	jc.Succeed("done", map[string]any{
		"result_id": res.ID.String(),
	})
	return nil
}
