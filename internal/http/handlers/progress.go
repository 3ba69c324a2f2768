package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/http/response"
	"github.com/yungbote/edubridge-backend/internal/progress"
	"github.com/yungbote/edubridge-backend/internal/services"
)

type ProgressHandler struct {
	progress services.ProgressService
}

func NewProgressHandler(progress services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// POST /api/progress/summary
func (h *ProgressHandler) Summary(c *gin.Context) {
	var req domain.ProgressRequest
	if !bindJSON(c, &req) {
		return
	}
	response.RespondOK(c, h.progress.Summary(c.Request.Context(), req))
}

// POST /api/progress/export
func (h *ProgressHandler) Export(c *gin.Context) {
	var req domain.ProgressRequest
	if !bindJSON(c, &req) {
		return
	}
	text := h.progress.Export(c.Request.Context(), req)
	c.Header("Content-Disposition", `attachment; filename="`+progress.ExportFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
