// Package logger builds the zap logger shared by every scoreboard component.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/scoreboard/internal/config"
)

// ServiceName is attached to every log entry.
const ServiceName = "scoreboard"

// New builds a sugared logger from cfg.
//
// JSON output at info level and above uses production defaults without
// sampling, so repeated storage failures are never dropped. Any other
// combination uses development defaults. Output other than stdout or stderr
// is opened as a file.
func New(cfg appConfig.LoggerConfig) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zc := baseConfig(cfg)
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{outputPath(cfg.Output)}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.InitialFields = map[string]any{"service": ServiceName}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l.Sugar(), nil
}

func baseConfig(cfg appConfig.LoggerConfig) zap.Config {
	if cfg.IsProduction() {
		zc := zap.NewProductionConfig()
		zc.Sampling = nil
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		return zc
	}
	zc := zap.NewDevelopmentConfig()
	if cfg.Format == "json" {
		zc.Encoding = "json"
	} else {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return zc
}

func outputPath(output string) string {
	if output == "" {
		return "stdout"
	}
	return output
}
