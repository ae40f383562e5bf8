package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travelmap-api/internal/apperr"
	"travelmap-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchService is a mock implementation of the SearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, location, placeType string, radius int) (*models.SearchResponse, error) {
	args := m.Called(ctx, location, placeType, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResponse), args.Error(1)
}

var hanoiLocation = models.GeocodeResult{
	Coordinate:       models.Coordinate{Latitude: 21.0285, Longitude: 105.8542},
	CanonicalAddress: "Hà Nội, Việt Nam",
	Succeeded:        true,
}

func performJSON(handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler(c)
	return w
}

func TestSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	found := &models.SearchResponse{
		Success:  true,
		Location: hanoiLocation,
		Places: []models.PlaceRecord{
			{
				Name:           "Phở Thìn",
				CategoryLabel:  "🍽️ Nhà hàng",
				Coordinate:     models.Coordinate{Latitude: 21.0295, Longitude: 105.8542},
				AddressHint:    "Lò Đúc",
				DistanceMeters: 111,
			},
		},
		MapHTML: "<div>map</div>",
		Message: "Found 1 places near Hanoi",
	}

	tests := []struct {
		name           string
		body           string
		mockCall       bool
		mockArgs       []interface{}
		mockResult     *models.SearchResponse
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "malformed body",
			body:           `{"location":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"success": false, "error": "invalid request body"},
		},
		{
			name:           "validation error",
			body:           `{"location":"","type":"cafe"}`,
			mockCall:       true,
			mockArgs:       []interface{}{"", "cafe", 0},
			mockError:      apperr.Validation("location is required"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"success": false, "error": "location is required"},
		},
		{
			name:           "unexpected error",
			body:           `{"location":"Hanoi","type":"cafe"}`,
			mockCall:       true,
			mockArgs:       []interface{}{"Hanoi", "cafe", 0},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"success": false, "error": "internal server error"},
		},
		{
			name:           "geocode failure is not an http error",
			body:           `{"location":"asdkjhqwe","type":"restaurant"}`,
			mockCall:       true,
			mockArgs:       []interface{}{"asdkjhqwe", "restaurant", 0},
			mockResult:     &models.SearchResponse{Success: false, Location: models.FailedGeocode("no match"), Places: []models.PlaceRecord{}, Error: `could not geocode location "asdkjhqwe": no match`},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"success": false,
				"location": map[string]interface{}{
					"lat": 0.0, "lon": 0.0, "address": "", "success": false, "error": "no match",
				},
				"places": []interface{}{},
				"error":  `could not geocode location "asdkjhqwe": no match`,
			},
		},
		{
			name:           "places found",
			body:           `{"location":"Hanoi","type":"restaurant","radius":1500}`,
			mockCall:       true,
			mockArgs:       []interface{}{"Hanoi", "restaurant", 1500},
			mockResult:     found,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"success": true,
				"location": map[string]interface{}{
					"lat": 21.0285, "lon": 105.8542, "address": "Hà Nội, Việt Nam", "success": true,
				},
				"places": []interface{}{
					map[string]interface{}{
						"name":        "Phở Thìn",
						"type":        "🍽️ Nhà hàng",
						"lat":         21.0295,
						"lon":         105.8542,
						"address":     "Lò Đúc",
						"distance":    111.0,
						"description": "",
					},
				},
				"map_html": "<div>map</div>",
				"message":  "Found 1 places near Hanoi",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockSearchService)
			handler := NewSearchHandler(mockSvc)

			if tt.mockCall {
				args := append([]interface{}{mock.Anything}, tt.mockArgs...)
				mockSvc.On("Search", args...).Return(tt.mockResult, tt.mockError)
			}

			// Execute
			w := performJSON(handler.Search, http.MethodPost, "/api/search", tt.body)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestSearchHandler_SearchGeoJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("feature collection", func(t *testing.T) {
		mockSvc := new(MockSearchService)
		mockSvc.On("Search", mock.Anything, "Hanoi", "cafe", 0).Return(&models.SearchResponse{
			Success:  true,
			Location: hanoiLocation,
			Places: []models.PlaceRecord{
				{Name: "Cộng Cà Phê", CategoryLabel: "☕ Quán cà phê", Coordinate: models.Coordinate{Latitude: 21.03, Longitude: 105.85}, DistanceMeters: 500},
			},
		}, nil)

		w := performJSON(NewSearchHandler(mockSvc).SearchGeoJSON, http.MethodPost, "/api/search/geojson", `{"location":"Hanoi","type":"cafe"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Type     string `json:"type"`
			Features []struct {
				Geometry struct {
					Type        string    `json:"type"`
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]interface{} `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FeatureCollection", body.Type)
		require.Len(t, body.Features, 2)
		assert.Equal(t, true, body.Features[0].Properties["origin"])
		assert.Equal(t, []float64{105.8542, 21.0285}, body.Features[0].Geometry.Coordinates)
		assert.Equal(t, "Cộng Cà Phê", body.Features[1].Properties["name"])
		assert.Equal(t, "blue", body.Features[1].Properties["color"])
	})

	t.Run("geocode failure", func(t *testing.T) {
		mockSvc := new(MockSearchService)
		mockSvc.On("Search", mock.Anything, "nowhere", "", 0).Return(&models.SearchResponse{
			Success: false,
			Places:  []models.PlaceRecord{},
			Error:   "could not geocode location",
		}, nil)

		w := performJSON(NewSearchHandler(mockSvc).SearchGeoJSON, http.MethodPost, "/api/search/geojson", `{"location":"nowhere"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"could not geocode location"}`, w.Body.String())
	})
}
