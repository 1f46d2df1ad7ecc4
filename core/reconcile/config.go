package reconcile

import "time"

// Config holds the matcher thresholds.
type Config struct {
	// RevenueTolerance is the maximum |average order value - revenue| for a
	// geographic/behavioural link.
	RevenueTolerance float64 `mapstructure:"revenue_tolerance" default:"50"`
	// TimingWindowDays is the maximum distance between a session and an
	// account's last purchase for a timing link.
	TimingWindowDays int `mapstructure:"timing_window_days" default:"3"`
	// RecentPurchaseDays selects accounts eligible for timing links.
	RecentPurchaseDays int `mapstructure:"recent_purchase_days" default:"7"`
	// CacheTTLSeconds keeps results per dataset. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		RevenueTolerance:   50,
		TimingWindowDays:   3,
		RecentPurchaseDays: 7,
		CacheTTLSeconds:    300,
	}
}

// CacheTTL returns the result cache lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c Config) timingWindow() time.Duration {
	return time.Duration(c.TimingWindowDays) * 24 * time.Hour
}
