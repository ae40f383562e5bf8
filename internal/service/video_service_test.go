package service

import (
	"context"
	"testing"

	"travelmap-api/internal/apperr"
	"travelmap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVideoRepository is a mock implementation of the VideoRepository interface
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func TestVideoService_TravelVideos(t *testing.T) {
	videos := []models.Video{
		{
			Title:    "Hanoi Travel Guide",
			Channel:  "Wanderers",
			URL:      "https://www.youtube.com/watch?v=abc",
			Duration: "12:05",
			Views:    "1,234 views",
		},
	}

	tests := []struct {
		name          string
		location      string
		limit         int
		expectedQuery string
		expectedLimit int
		mockVideos    []models.Video
		mockError     error
		expected      []models.Video
		expectError   bool
	}{
		{
			name:        "empty location",
			location:    " ",
			limit:       5,
			expectError: true,
		},
		{
			name:          "successful search",
			location:      "Hanoi",
			limit:         3,
			expectedQuery: "Hanoi travel guide",
			expectedLimit: 3,
			mockVideos:    videos,
			expected:      videos,
		},
		{
			name:          "default limit",
			location:      "Da Nang ",
			limit:         0,
			expectedQuery: "Da Nang travel guide",
			expectedLimit: DefaultVideoCount,
			mockVideos:    videos,
			expected:      videos,
		},
		{
			name:          "limit clamped",
			location:      "Hue",
			limit:         500,
			expectedQuery: "Hue travel guide",
			expectedLimit: MaxVideoCount,
			mockVideos:    []models.Video{},
			expected:      []models.Video{},
		},
		{
			name:          "all instances failed",
			location:      "Hanoi",
			limit:         5,
			expectedQuery: "Hanoi travel guide",
			expectedLimit: 5,
			mockError:     assert.AnError,
			expected:      []models.Video{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockVideoRepository)
			service := NewVideoService(mockRepo)

			if !tt.expectError {
				mockRepo.On("SearchVideos", mock.Anything, tt.expectedQuery, tt.expectedLimit).Return(tt.mockVideos, tt.mockError)
			}

			// Execute
			result, err := service.TravelVideos(context.Background(), tt.location, tt.limit)

			// Assert
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, apperr.KindValidation))
				mockRepo.AssertNotCalled(t, "SearchVideos", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			mockRepo.AssertExpectations(t)
		})
	}
}
