package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"endoguard/internal/cache"
	"endoguard/internal/config"
)

// AnalyticsService records usage events. Every call is fire-and-forget:
// failures are logged and swallowed so tracking can never break or delay the
// primary flow.
type AnalyticsService struct {
	config *config.AnalyticsConfig
	usage  cache.UsageCache
	client *http.Client
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(cfg *config.AnalyticsConfig, usage cache.UsageCache) *AnalyticsService {
	return &AnalyticsService{
		config: cfg,
		usage:  usage,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// UsageCount reads the local daily counter for one platform/action pair
func (s *AnalyticsService) UsageCount(ctx context.Context, platform, action string, day time.Time) (int64, error) {
	if s.usage == nil {
		return 0, nil
	}
	return s.usage.Count(ctx, platform, action, day)
}

type trackEvent struct {
	Platform  string            `json:"platform"`
	Action    string            `json:"action"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Track records one usage event. It returns immediately; the remote call
// happens on a background goroutine with its own timeout.
func (s *AnalyticsService) Track(ctx context.Context, platform, action string, metadata map[string]string) {
	if s.usage != nil {
		if err := s.usage.Increment(ctx, platform, action); err != nil {
			log.Printf("analytics: usage counter failed: %v", err)
		}
	}

	if !s.config.IsEnabled() {
		return
	}

	event := trackEvent{
		Platform:  platform,
		Action:    action,
		Metadata:  metadata,
		Timestamp: time.Now(),
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		body, err := json.Marshal(&event)
		if err != nil {
			log.Printf("analytics: marshal failed: %v", err)
			return
		}

		req, err := http.NewRequestWithContext(bgCtx, http.MethodPost, s.config.TrackEndpoint(), bytes.NewBuffer(body))
		if err != nil {
			log.Printf("analytics: request failed: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if s.config.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			log.Printf("analytics: track-usage failed: %v", err)
			return
		}
		resp.Body.Close()
	}()
}
