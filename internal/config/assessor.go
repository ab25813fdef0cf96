package config

import "os"

// AssessorConfig configures the upstream risk-assessment API. When no base
// URL is set the service scores assessments with the built-in local engine.
type AssessorConfig struct {
	BaseURL   string `json:"baseUrl"`
	APIKey    string `json:"-"` // Never serialize
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAssessorConfig returns the assessor configuration from the
// environment
func DefaultAssessorConfig() *AssessorConfig {
	return &AssessorConfig{
		BaseURL:   os.Getenv("ASSESSOR_BASE_URL"),
		APIKey:    os.Getenv("ASSESSOR_API_KEY"),
		TimeoutMS: 15000,
	}
}

// IsEnabled returns true if an upstream assessor is configured
func (c *AssessorConfig) IsEnabled() bool {
	return c.BaseURL != ""
}

// AssessEndpoint returns the full URL of the assess operation
func (c *AssessorConfig) AssessEndpoint() string {
	return c.BaseURL + "/api/endoguard/assess"
}

// AnalyticsConfig configures the usage-tracking side channel. Tracking
// failures never affect the primary flow.
type AnalyticsConfig struct {
	BaseURL string `json:"baseUrl"`
	APIKey  string `json:"-"`
}

// DefaultAnalyticsConfig returns the analytics configuration from the
// environment
func DefaultAnalyticsConfig() *AnalyticsConfig {
	return &AnalyticsConfig{
		BaseURL: os.Getenv("ANALYTICS_BASE_URL"),
		APIKey:  os.Getenv("ANALYTICS_API_KEY"),
	}
}

// IsEnabled returns true if the remote analytics endpoint is configured
func (c *AnalyticsConfig) IsEnabled() bool {
	return c.BaseURL != ""
}

// TrackEndpoint returns the full URL of the track-usage operation
func (c *AnalyticsConfig) TrackEndpoint() string {
	return c.BaseURL + "/api/analytics/track-usage"
}
