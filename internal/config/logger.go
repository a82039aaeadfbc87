package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a log file path.
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates logger configuration. A file output must live in an
// existing directory, so a typo is reported at startup and not on first write.
func (c LoggerConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be: debug, info, warn, error)", c.Level)
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid LOG_FORMAT: %s (must be: json, console)", c.Format)
	}

	switch c.Output {
	case "", "stdout", "stderr":
		return nil
	}
	dir := filepath.Dir(c.Output)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("invalid LOG_OUTPUT: directory %s is not accessible: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid LOG_OUTPUT: %s is not a directory", dir)
	}
	return nil
}

// IsProduction reports whether the logger should use production defaults.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
