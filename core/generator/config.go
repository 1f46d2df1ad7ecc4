package generator

const (
	defaultMaxAccounts = 2000
	defaultMaxSessions = 10000
)

// Config bounds and seeds dataset generation.
type Config struct {
	// MaxAccounts caps the account population; larger requests are clamped.
	MaxAccounts int `mapstructure:"max_accounts" default:"2000"`
	// MaxSessions caps the session population; larger requests are clamped.
	MaxSessions int `mapstructure:"max_sessions" default:"10000"`
	// DefaultAccounts is used when a request does not specify a size.
	DefaultAccounts int `mapstructure:"default_accounts" default:"100"`
	// DefaultSessions is used when a request does not specify a size.
	DefaultSessions int `mapstructure:"default_sessions" default:"1000"`
	// Seed makes runs reproducible. Zero draws a seed from the clock.
	Seed int64 `mapstructure:"seed" default:"0"`
}

func (c Config) maxAccounts() int {
	if c.MaxAccounts <= 0 {
		return defaultMaxAccounts
	}
	return c.MaxAccounts
}

func (c Config) maxSessions() int {
	if c.MaxSessions <= 0 {
		return defaultMaxSessions
	}
	return c.MaxSessions
}

// clampCount silently bounds a requested size to [0, max].
func clampCount(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Clamp bounds requested population sizes the way the generators do.
func (c Config) Clamp(accounts, sessions int) (int, int) {
	return clampCount(accounts, c.maxAccounts()), clampCount(sessions, c.maxSessions())
}
