package app

import (
	httpH "github.com/yungbote/edubridge-backend/internal/http/handlers"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	Recommendation *httpH.RecommendationHandler
	AI             *httpH.AIHandler
	Progress       *httpH.ProgressHandler
	Diagnostic     *httpH.DiagnosticHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         httpH.NewHealthHandler(services.Health),
		Recommendation: httpH.NewRecommendationHandler(services.Recommendation),
		AI:             httpH.NewAIHandlerWithDeps(httpH.AIHandlerDeps{Log: log, AI: services.AI}),
		Progress:       httpH.NewProgressHandler(services.Progress),
		Diagnostic:     httpH.NewDiagnosticHandler(services.Diagnostic),
	}
}
