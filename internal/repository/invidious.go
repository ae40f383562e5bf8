package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travelmap-api/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// InvidiousRepository searches videos through public Invidious instances,
// trying each instance in order until one answers.
type InvidiousRepository struct {
	instances []string
	client    *http.Client
	printer   *message.Printer
}

type invidiousItem struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	VideoID       string `json:"videoId"`
	LengthSeconds int    `json:"lengthSeconds"`
	ViewCount     int64  `json:"viewCount"`
}

var errNoInstance = errors.New("invidious: no instance answered")

// NewInvidiousRepository creates a repository over the given instance base URLs.
func NewInvidiousRepository(instances []string, timeout time.Duration) *InvidiousRepository {
	cleaned := make([]string, 0, len(instances))
	for _, instance := range instances {
		if instance = strings.TrimRight(strings.TrimSpace(instance), "/"); instance != "" {
			cleaned = append(cleaned, instance)
		}
	}
	return &InvidiousRepository{
		instances: cleaned,
		client:    &http.Client{Timeout: timeout},
		printer:   message.NewPrinter(language.English),
	}
}

// SearchVideos returns at most limit videos for query.
// When every instance fails the error wraps the last failure.
func (r *InvidiousRepository) SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error) {
	logger := zerolog.Ctx(ctx)

	var lastErr error
	for _, instance := range r.instances {
		items, err := r.search(ctx, instance, query)
		if err != nil {
			logger.Debug().Err(err).Str("instance", instance).Msg("invidious instance failed")
			lastErr = err
			continue
		}

		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		videos := make([]models.Video, 0, len(items))
		for _, item := range items {
			videos = append(videos, r.toVideo(item))
		}
		return videos, nil
	}

	if lastErr == nil {
		return nil, errNoInstance
	}
	return nil, fmt.Errorf("%w: %w", errNoInstance, lastErr)
}

func (r *InvidiousRepository) search(ctx context.Context, instance, query string) ([]invidiousItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "video")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, instance+"/api/v1/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("invidious: failed to build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invidious: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invidious: upstream status %d", resp.StatusCode)
	}

	var items []invidiousItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("invidious: failed to decode payload: %w", err)
	}
	return items, nil
}

func (r *InvidiousRepository) toVideo(item invidiousItem) models.Video {
	title := item.Title
	if title == "" {
		title = "Unknown"
	}
	channel := item.Author
	if channel == "" {
		channel = "Unknown"
	}
	return models.Video{
		Title:    title,
		Channel:  channel,
		URL:      "https://www.youtube.com/watch?v=" + item.VideoID,
		Duration: fmt.Sprintf("%d:%02d", item.LengthSeconds/60, item.LengthSeconds%60),
		Views:    r.printer.Sprintf("%d views", item.ViewCount),
	}
}
