package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"travelmap-api/internal/apperr"
	"travelmap-api/internal/models"

	"github.com/rs/zerolog"
)

const (
	// DefaultCategory is searched when the caller gives no type.
	DefaultCategory = "restaurant"
	// MaxRadiusMeters bounds caller-supplied radii.
	MaxRadiusMeters = 5000
)

// selectors are interpolated into Overpass QL and must stay plain tag values.
var selectorPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Geocoder resolves free text to a coordinate. Failures are reported in the result.
type Geocoder interface {
	Geocode(ctx context.Context, address string) models.GeocodeResult
}

// POIFetcher runs a POI query. It never fails; an unavailable provider yields no records.
type POIFetcher interface {
	FetchPOIs(ctx context.Context, spec models.QuerySpec) []models.RawPOIRecord
}

// MapRenderer draws the search result as an embeddable document.
type MapRenderer interface {
	Render(origin models.Coordinate, originLabel string, places []models.PlaceRecord) (string, error)
}

// SearchService sequences geocoding, POI lookup, normalization, ranking and map rendering.
// It holds no per-request state and is safe for concurrent use.
type SearchService struct {
	geocoder   Geocoder
	fetcher    POIFetcher
	renderer   MapRenderer
	builder    *QueryBuilder
	normalizer *Normalizer
}

// NewSearchService creates a search service over the given collaborators and category catalog.
func NewSearchService(geocoder Geocoder, fetcher POIFetcher, renderer MapRenderer, catalog *Catalog) *SearchService {
	return &SearchService{
		geocoder:   geocoder,
		fetcher:    fetcher,
		renderer:   renderer,
		builder:    NewQueryBuilder(catalog),
		normalizer: NewNormalizer(catalog),
	}
}

// Search finds places of the given category near location.
//
// An empty location or malformed category is a validation error and no upstream is called.
// A geocoding failure is not an error: the response has Success=false.
// POI lookup failures degrade to zero places.
func (s *SearchService) Search(ctx context.Context, location, category string, radiusMeters int) (*models.SearchResponse, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, apperr.Validation("location is required").WithOp("search")
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	if !selectorPattern.MatchString(category) {
		return nil, apperr.Validation(fmt.Sprintf("invalid place type %q", category)).WithOp("search")
	}

	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	if radiusMeters > MaxRadiusMeters {
		radiusMeters = MaxRadiusMeters
	}

	logger := zerolog.Ctx(ctx).With().Str("location", location).Str("type", category).Logger()

	geo := s.geocoder.Geocode(ctx, location)
	if !geo.Succeeded {
		logger.Info().Str("reason", geo.Error).Msg("search stopped: location not geocoded")
		return &models.SearchResponse{
			Success:  false,
			Location: geo,
			Places:   []models.PlaceRecord{},
			Error:    fmt.Sprintf("could not geocode location %q: %s", location, geo.Error),
		}, nil
	}

	spec := s.builder.Build(geo.Coordinate, radiusMeters, category)
	raw := s.fetcher.FetchPOIs(ctx, spec)
	places := RankPlaces(s.normalizer.Normalize(geo.Coordinate, raw))

	mapHTML, err := s.renderer.Render(geo.Coordinate, location, places)
	if err != nil {
		return nil, apperr.Internal("failed to render map", err).WithOp("search")
	}

	logger.Info().
		Int("raw", len(raw)).
		Int("places", len(places)).
		Msg("search completed")

	return &models.SearchResponse{
		Success:  true,
		Location: geo,
		Places:   places,
		MapHTML:  mapHTML,
		Message:  fmt.Sprintf("Found %d places near %s", len(places), location),
	}, nil
}
