package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Storage selects where the scoreboard snapshot is persisted.
	Storage StorageConfig
	// Backup holds periodic backup configuration.
	Backup BackupConfig
	// RateLimit holds HTTP rate limiting configuration.
	RateLimit RateLimitConfig
	// Scoring holds the final scores formula.
	Scoring ScoringConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:    LoadServerConfigFromEnv(),
		Logger:    LoadLoggerConfigFromEnv(),
		Storage:   LoadStorageConfigFromEnv(),
		Backup:    LoadBackupConfigFromEnv(),
		RateLimit: LoadRateLimitConfigFromEnv(),
		Scoring:   LoadScoringConfigFromEnv(),
		GinMode:   GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage config validation failed: %w", err)
	}

	if err := c.Backup.Validate(); err != nil {
		return fmt.Errorf("backup config validation failed: %w", err)
	}

	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
