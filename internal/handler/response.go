package handler

import (
	"net/http"

	"travelmap-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the error body shared by all API routes.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// handleError maps err to a response. Typed errors keep their message and status;
// anything else is logged and reported as an internal error.
func handleError(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok && e.Kind == apperr.KindValidation {
		respondError(c, e.HTTPStatus(), e.Message)
		return
	}

	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")

	status := http.StatusInternalServerError
	if e, ok := apperr.As(err); ok {
		status = e.HTTPStatus()
	}
	respondError(c, status, "internal server error")
}
