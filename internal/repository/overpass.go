package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travelmap-api/internal/models"

	"github.com/rs/zerolog"
)

// OverpassRepository runs Overpass QL queries over HTTP GET.
// It degrades every failure to an empty result; there is no retry.
type OverpassRepository struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

type overpassPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassElement struct {
	Type   string         `json:"type"`
	ID     int64          `json:"id"`
	Lat    *float64       `json:"lat"`
	Lon    *float64       `json:"lon"`
	Center *overpassPoint `json:"center"`
	Tags   models.Tags    `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// NewOverpassRepository creates a repository for the interpreter endpoint.
func NewOverpassRepository(endpoint, userAgent string, timeout time.Duration) *OverpassRepository {
	return &OverpassRepository{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// FetchPOIs executes spec and returns the raw elements in response order.
// The result is never nil.
func (r *OverpassRepository) FetchPOIs(ctx context.Context, spec models.QuerySpec) []models.RawPOIRecord {
	logger := zerolog.Ctx(ctx).With().
		Str("selector", spec.Selector).
		Int("radius", spec.RadiusMeters).
		Logger()

	records, err := r.execute(ctx, spec.Query)
	if err != nil {
		switch {
		case isTimeout(err):
			logger.Warn().Err(err).Msg("overpass request timed out, returning no places")
		case isConnectionError(err):
			logger.Warn().Err(err).Msg("overpass unreachable, returning no places")
		default:
			logger.Warn().Err(err).Msg("overpass query failed, returning no places")
		}
		return []models.RawPOIRecord{}
	}

	logger.Debug().Int("elements", len(records)).Msg("overpass query succeeded")
	return records
}

func (r *OverpassRepository) execute(ctx context.Context, query string) ([]models.RawPOIRecord, error) {
	params := url.Values{}
	params.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass: upstream status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, fmt.Errorf("overpass: unexpected content type %q", contentType)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || isTimeout(err) {
			return nil, fmt.Errorf("overpass: truncated response: %w", err)
		}
		return nil, fmt.Errorf("overpass: failed to decode payload: %w", err)
	}

	return convertElements(payload.Elements), nil
}

func convertElements(elements []overpassElement) []models.RawPOIRecord {
	records := make([]models.RawPOIRecord, 0, len(elements))
	for _, el := range elements {
		record := models.RawPOIRecord{
			ID:   el.ID,
			Type: el.Type,
			Tags: el.Tags,
		}
		if el.Lat != nil && el.Lon != nil {
			record.Point = &models.Coordinate{Latitude: *el.Lat, Longitude: *el.Lon}
		}
		if el.Center != nil {
			record.Center = &models.Coordinate{Latitude: el.Center.Lat, Longitude: el.Center.Lon}
		}
		records = append(records, record)
	}
	return records
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
