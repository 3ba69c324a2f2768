package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/http/response"
	"github.com/yungbote/edubridge-backend/internal/services"
)

type DiagnosticHandler struct {
	diag services.DiagnosticService
}

func NewDiagnosticHandler(diag services.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{diag: diag}
}

// GET /api/diagnostic/questions
func (h *DiagnosticHandler) Questions(c *gin.Context) {
	response.RespondOK(c, gin.H{"questions": h.diag.Questions(c.Request.Context())})
}

// POST /api/diagnostic/plan
// body: { "answers": ["...", ...] }
func (h *DiagnosticHandler) Plan(c *gin.Context) {
	var sub domain.DiagnosticSubmission
	if !bindJSON(c, &sub) {
		return
	}
	plan, err := h.diag.Plan(c.Request.Context(), sub)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, plan)
}
