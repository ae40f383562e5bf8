package service

import (
	"context"
	"strings"

	"travelmap-api/internal/apperr"
	"travelmap-api/internal/models"

	"github.com/rs/zerolog"
)

const (
	DefaultVideoCount = 5
	MaxVideoCount     = 20
)

// VideoService finds travel guide videos for a location.
type VideoService struct {
	repo VideoRepository
}

// VideoRepository interface for dependency injection
type VideoRepository interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error)
}

// NewVideoService creates a new video service
func NewVideoService(repo VideoRepository) *VideoService {
	return &VideoService{repo: repo}
}

// TravelVideos returns up to limit travel guide videos for location.
// A limit outside 1..MaxVideoCount is replaced by DefaultVideoCount or clamped.
// When no video provider answers the result is empty, not an error.
func (s *VideoService) TravelVideos(ctx context.Context, location string, limit int) ([]models.Video, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, apperr.Validation("location is required").WithOp("videos")
	}

	switch {
	case limit <= 0:
		limit = DefaultVideoCount
	case limit > MaxVideoCount:
		limit = MaxVideoCount
	}

	videos, err := s.repo.SearchVideos(ctx, location+" travel guide", limit)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("location", location).Msg("video search unavailable")
		return []models.Video{}, nil
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return videos, nil
}
