package app

import (
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
	"github.com/yungbote/edubridge-backend/internal/services"
)

type Services struct {
	AI             services.AIService
	Recommendation services.RecommendationService
	Progress       services.ProgressService
	Diagnostic     services.DiagnosticService
	Health         services.HealthService
}

func wireServices(log *logger.Logger, clients Clients) Services {
	log.Info("Wiring services...")
	var health services.HealthChecker
	if clients.Store != nil {
		health = clients.Store
	}
	return Services{
		AI:             services.NewAIService(log, clients.Gemini, clients.AICache, clients.Metrics),
		Recommendation: services.NewRecommendationService(log, clients.Metrics),
		Progress:       services.NewProgressService(log, nil),
		Diagnostic:     services.NewDiagnosticService(log),
		Health:         services.NewHealthService(log, health, clients.Metrics),
	}
}
