package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubridge-backend/internal/http/response"
)

// bindJSON decodes the request body into dst, treating an empty body as an empty object.
// On failure it writes the error response and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.RespondError(c, http.StatusRequestEntityTooLarge, "request_too_large", errors.New("request body too large"))
		return false
	}
	response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
	return false
}
