package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/yungbote/edubridge-backend/internal/diagnostic"
	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/platform/apierr"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

const CodeInvalidAnswer = "invalid_answer"

type DiagnosticService interface {
	Questions(ctx context.Context) []domain.DiagnosticQuestion
	Plan(ctx context.Context, sub domain.DiagnosticSubmission) (*domain.StudyPlan, error)
}

type diagnosticService struct {
	log *logger.Logger
}

func NewDiagnosticService(log *logger.Logger) DiagnosticService {
	return &diagnosticService{log: log.With("service", "DiagnosticService")}
}

func (s *diagnosticService) Questions(context.Context) []domain.DiagnosticQuestion {
	return diagnostic.Questions()
}

func (s *diagnosticService) Plan(_ context.Context, sub domain.DiagnosticSubmission) (*domain.StudyPlan, error) {
	if err := diagnostic.Validate(sub.Answers); err != nil {
		var ae *diagnostic.AnswerError
		if errors.As(err, &ae) {
			s.log.Debug("Rejected diagnostic answer", "question_id", ae.QuestionID)
		}
		return nil, apierr.New(http.StatusBadRequest, CodeInvalidAnswer, err)
	}
	plan := diagnostic.DefaultPlan()
	return &plan, nil
}
