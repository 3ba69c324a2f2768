package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/http/response"
	"github.com/yungbote/edubridge-backend/internal/platform/apierr"
	"github.com/yungbote/edubridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
	"github.com/yungbote/edubridge-backend/internal/services"
)

type AIHandlerDeps struct {
	Log *logger.Logger
	AI  services.AIService
}

type AIHandler struct {
	log *logger.Logger
	ai  services.AIService
}

func NewAIHandlerWithDeps(deps AIHandlerDeps) *AIHandler {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	return &AIHandler{
		log: log.With("handler", "AIHandler"),
		ai:  deps.AI,
	}
}

// POST /api/ai/study-plan
// body: { "answers": [...], "initialSurvey": {...}, "finalSurvey": {...} }
func (h *AIHandler) StudyPlan(c *gin.Context) {
	var req domain.StudyPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.ai.StudyPlan(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "study_plan", err)
		return
	}
	response.RespondOK(c, plan)
}

// POST /api/ai/tutor-tip
// body: { "subject": "...", "task": "...", "learningStyle": "..." }
func (h *AIHandler) TutorTip(c *gin.Context) {
	var req domain.TutorTipRequest
	if !bindJSON(c, &req) {
		return
	}
	tip, err := h.ai.TutorTip(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "tutor_tip", err)
		return
	}
	response.RespondOK(c, tip)
}

func (h *AIHandler) respondError(c *gin.Context, endpoint string, err error) {
	fields := []interface{}{"endpoint", endpoint, "error", err}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		fields = append(fields, "status", ae.Status, "code", ae.Code, "fallback", ae.Details != nil)
	}
	fields = append(fields, ctxutil.LogFields(c.Request.Context())...)
	h.log.Info("AI proxy request failed", fields...)
	response.RespondAPIError(c, err)
}
