package handler

import (
	"context"
	"net/http"

	"travelmap-api/internal/mapview"
	"travelmap-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles place search requests
type SearchHandler struct {
	service SearchService
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(ctx context.Context, location, placeType string, radius int) (*models.SearchResponse, error)
}

// SearchRequest is the body of a place search.
type SearchRequest struct {
	Location string `json:"location" example:"Hoan Kiem Lake, Hanoi"`
	Type     string `json:"type" example:"restaurant"`
	Radius   int    `json:"radius,omitempty" example:"1000"`
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

func (h *SearchHandler) search(c *gin.Context) (*models.SearchResponse, bool) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	result, err := h.service.Search(c.Request.Context(), req.Location, req.Type, req.Radius)
	if err != nil {
		handleError(c, err)
		return nil, false
	}
	return result, true
}

// Search godoc
// @Summary      Search places near a location
// @Description  Geocodes the location, finds nearby places of the given type and renders a map.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request  body      SearchRequest  true  "search parameters"
// @Success      200      {object}  models.SearchResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	result, ok := h.search(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchGeoJSON godoc
// @Summary      Search places as GeoJSON
// @Description  Same search as /api/search, returned as a FeatureCollection whose first feature is the origin.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request  body      SearchRequest  true  "search parameters"
// @Success      200      {object}  object
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/search/geojson [post]
func (h *SearchHandler) SearchGeoJSON(c *gin.Context) {
	result, ok := h.search(c)
	if !ok {
		return
	}
	if !result.Success {
		c.JSON(http.StatusOK, ErrorResponse{Success: false, Error: result.Error})
		return
	}
	c.JSON(http.StatusOK, mapview.FeatureCollection(result.Location, result.Places))
}
