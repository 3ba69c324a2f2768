package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/http/response"
	"github.com/yungbote/edubridge-backend/internal/services"
)

type RecommendationHandler struct {
	recs services.RecommendationService
}

func NewRecommendationHandler(recs services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recs: recs}
}

// POST /api/recommendations
// body: { "studyPlan": {...}, "initialSurvey": {...}, "finalSurvey": {...}, "moodEntries": [...] }
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var state domain.StudentState
	if !bindJSON(c, &state) {
		return
	}
	response.RespondOK(c, h.recs.Recommend(c.Request.Context(), state))
}
