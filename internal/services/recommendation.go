package services

import (
	"context"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/observability"
	"github.com/yungbote/edubridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
	"github.com/yungbote/edubridge-backend/internal/recommendation"
)

type RecommendationService interface {
	Recommend(ctx context.Context, state domain.StudentState) domain.PersonalizedRecommendations
}

type recommendationService struct {
	log     *logger.Logger
	metrics *observability.Metrics
}

func NewRecommendationService(log *logger.Logger, metrics *observability.Metrics) RecommendationService {
	return &recommendationService{
		log:     log.With("service", "RecommendationService"),
		metrics: metrics,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, state domain.StudentState) domain.PersonalizedRecommendations {
	out := recommendation.BuildPersonalizedRecommendations(state)
	s.metrics.IncTopMethod(out.TopMethod.Name)
	fields := append([]interface{}{
		"top_method", out.TopMethod.Name,
		"score", out.TopMethod.Score,
		"blocks", len(out.ScheduleDetails),
	}, ctxutil.LogFields(ctx)...)
	s.log.Debug("Built recommendations", fields...)
	return out
}
