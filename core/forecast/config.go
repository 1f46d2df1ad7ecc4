package forecast

import "time"

// Config configures the impressions forecasting endpoint.
type Config struct {
	// Enabled turns model calls on. When false every forecast uses the trend fallback.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// BaseURL is the root of an OpenAI-compatible API, e.g. https://host/serving-endpoints.
	BaseURL string `mapstructure:"base_url" default:""`
	// APIKey is sent as a bearer token.
	APIKey string `mapstructure:"api_key" default:""`
	// Model is the chat model name.
	Model string `mapstructure:"model" default:""`
	// TimeoutSeconds bounds one completion request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Horizon is the number of predicted days.
	Horizon int `mapstructure:"horizon" default:"30"`
	// CacheTTLSeconds keeps segment analytics, forecast included, per segment.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"600"`
}

// Timeout returns the request timeout, 30 seconds when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Days returns the forecast horizon, 30 when unset.
func (c Config) Days() int {
	if c.Horizon <= 0 {
		return 30
	}
	return c.Horizon
}

// CacheTTL returns the analytics cache lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
