package assessment_feedback

import (
	"gorm.io/gorm"

	"github.com/skillup-platform/skillup-backend/internal/data/repos"
	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/services"
)

type Pipeline struct {
	db  *gorm.DB
	log *logger.Logger

	assessments repos.AssessmentRepo
	results     repos.ResultRepo
	ai          services.AIService
	notify      services.NotificationService
}

func New(
	db *gorm.DB,
	baseLog *logger.Logger,
	assessments repos.AssessmentRepo,
	results repos.ResultRepo,
	ai services.AIService,
	notify services.NotificationService,
) *Pipeline {
	return &Pipeline{
		db:          db,
		log:         baseLog.With("job", "assessment_feedback"),
		assessments: assessments,
		results:     results,
		ai:          ai,
		notify:      notify,
	}
}

func (p *Pipeline) Type() string { return "assessment_feedback" }
