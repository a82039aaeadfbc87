package config

import "fmt"

// RateLimitConfig holds the per-client token bucket settings. RPS of 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LoadRateLimitConfigFromEnv loads rate limit configuration from environment variables.
func LoadRateLimitConfigFromEnv() RateLimitConfig {
	return RateLimitConfig{
		RPS:   GetEnvFloat("RATE_LIMIT_RPS", 0),
		Burst: GetEnvInt("RATE_LIMIT_BURST", 20),
	}
}

// Enabled reports whether requests should be rate limited.
func (c RateLimitConfig) Enabled() bool {
	return c.RPS > 0
}

// Validate validates rate limit configuration.
func (c RateLimitConfig) Validate() error {
	if c.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Enabled() && c.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be greater than 0 when rate limiting is enabled")
	}
	return nil
}
