package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travelmap-api/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// NominatimClient geocodes free text with the OpenStreetMap Nominatim search API.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
}

// nominatimResponse mirrors the relevant parts of the search payload.
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// NewNominatimClient creates a geocoding client. Requests are throttled to one per second
// as required by the Nominatim usage policy.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		timeout:   timeout,
	}
}

// Geocode resolves address to the provider's best match.
// Every failure is reported through the result; it never returns an error.
func (n *NominatimClient) Geocode(ctx context.Context, address string) models.GeocodeResult {
	logger := zerolog.Ctx(ctx)

	// the throttle wait counts against the same deadline as the request
	lookupCtx := ctx
	if n.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	result, err := n.lookup(lookupCtx, address)
	if err != nil {
		logger.Warn().Err(err).Str("address", address).Msg("geocoding failed")
		return models.FailedGeocode(err.Error())
	}

	logger.Debug().
		Str("address", address).
		Float64("lat", result.Latitude).
		Float64("lon", result.Longitude).
		Msg("geocoded address")
	return result
}

func (n *NominatimClient) lookup(ctx context.Context, address string) (models.GeocodeResult, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: rate limiter: %w", err)
	}

	params := url.Values{}
	params.Add("q", address)
	params.Add("format", "json")
	params.Add("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", n.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: upstream status %d", resp.StatusCode)
	}

	var raw []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: failed to decode payload: %w", err)
	}
	if len(raw) == 0 {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: no match for %q", address)
	}

	lat, err := strconv.ParseFloat(raw[0].Lat, 64)
	if err != nil {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: invalid latitude %q", raw[0].Lat)
	}
	lon, err := strconv.ParseFloat(raw[0].Lon, 64)
	if err != nil {
		return models.GeocodeResult{}, fmt.Errorf("nominatim: invalid longitude %q", raw[0].Lon)
	}

	return models.GeocodeResult{
		Coordinate:       models.Coordinate{Latitude: lat, Longitude: lon},
		CanonicalAddress: raw[0].DisplayName,
		Succeeded:        true,
	}, nil
}
