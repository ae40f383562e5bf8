package handler

import (
	"context"
	"net/http"
	"strconv"

	"travelmap-api/internal/models"

	"github.com/gin-gonic/gin"
)

// VideoHandler handles travel video requests
type VideoHandler struct {
	service VideoService
}

// VideoService interface for dependency injection
type VideoService interface {
	TravelVideos(ctx context.Context, location string, limit int) ([]models.Video, error)
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(svc VideoService) *VideoHandler {
	return &VideoHandler{service: svc}
}

// Videos godoc
// @Summary      Travel guide videos
// @Tags         videos
// @Produce      json
// @Param        location  query     string  true   "location to search videos for"
// @Param        max       query     int     false  "maximum number of videos (1-20, default 5)"
// @Success      200       {array}   models.Video
// @Failure      400       {object}  ErrorResponse
// @Router       /api/videos [get]
func (h *VideoHandler) Videos(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		respondError(c, http.StatusBadRequest, "missing required query parameter 'location'")
		return
	}

	limit := 0
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid max format")
			return
		}
		limit = n
	}

	videos, err := h.service.TravelVideos(c.Request.Context(), location, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}
