package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/edubridge-backend/internal/http/handlers"
	httpMW "github.com/yungbote/edubridge-backend/internal/http/middleware"
	"github.com/yungbote/edubridge-backend/internal/observability"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string

	CORSOrigins     []string
	MaxRequestBytes int64

	HealthHandler         *httpH.HealthHandler
	RecommendationHandler *httpH.RecommendationHandler
	AIHandler             *httpH.AIHandler
	ProgressHandler       *httpH.ProgressHandler
	DiagnosticHandler     *httpH.DiagnosticHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "edubridge-api"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.BodyLimit(cfg.MaxRequestBytes))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.Status)
		}

		// Recommendation engine
		if cfg.RecommendationHandler != nil {
			api.POST("/recommendations", cfg.RecommendationHandler.Recommend)
		}

		// LLM proxy
		if cfg.AIHandler != nil {
			api.POST("/ai/study-plan", cfg.AIHandler.StudyPlan)
			api.POST("/ai/tutor-tip", cfg.AIHandler.TutorTip)
		}

		// Progress
		if cfg.ProgressHandler != nil {
			api.POST("/progress/summary", cfg.ProgressHandler.Summary)
			api.POST("/progress/export", cfg.ProgressHandler.Export)
		}

		// Diagnostic
		if cfg.DiagnosticHandler != nil {
			api.GET("/diagnostic/questions", cfg.DiagnosticHandler.Questions)
			api.POST("/diagnostic/plan", cfg.DiagnosticHandler.Plan)
		}
	}

	return r
}
