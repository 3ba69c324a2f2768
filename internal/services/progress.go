package services

import (
	"context"
	"time"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
	"github.com/yungbote/edubridge-backend/internal/progress"
	"github.com/yungbote/edubridge-backend/internal/recommendation"
)

type ProgressService interface {
	Summary(ctx context.Context, req domain.ProgressRequest) domain.ProgressSummary
	Export(ctx context.Context, req domain.ProgressRequest) string
}

type progressService struct {
	log *logger.Logger
	now func() time.Time
}

// NewProgressService uses now as the clock; nil means time.Now.
func NewProgressService(log *logger.Logger, now func() time.Time) ProgressService {
	if now == nil {
		now = time.Now
	}
	return &progressService{
		log: log.With("service", "ProgressService"),
		now: now,
	}
}

func (s *progressService) Summary(_ context.Context, req domain.ProgressRequest) domain.ProgressSummary {
	return s.summarize(req, s.now())
}

func (s *progressService) Export(_ context.Context, req domain.ProgressRequest) string {
	now := s.now()
	s.log.Debug("Exporting progress summary", "completions", len(req.ScheduleCompletions))
	var goals []string
	if req.State.StudyPlan != nil {
		goals = req.State.StudyPlan.WeeklyGoals
	}
	return progress.ExportSummary(req.StudentName, goals, s.summarize(req, now), now)
}

func (s *progressService) summarize(req domain.ProgressRequest, now time.Time) domain.ProgressSummary {
	recs := recommendation.BuildPersonalizedRecommendations(req.State)
	return progress.Summarize(progress.Input{
		Completions: req.ScheduleCompletions,
		Feedback:    req.MethodFeedback,
		TotalBlocks: len(req.State.PracticeBlocks()),
		TopMethod:   recs.TopMethod.Name,
	}, now)
}
