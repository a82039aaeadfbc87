package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Host is the interface to bind, empty for all of them.
	Host string
	// Port is the listen port, with or without a leading colon.
	Port string
	// ReadTimeout bounds reading a request, body included. Imports are the
	// largest bodies the API accepts.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing a response, exports included.
	WriteTimeout time.Duration
	// IdleTimeout bounds keep-alive connections between requests.
	IdleTimeout time.Duration
	// ShutdownTimeout bounds draining in-flight requests and the last
	// snapshot save on shutdown.
	ShutdownTimeout time.Duration
}

// LoadServerConfigFromEnv loads server configuration from environment variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:            GetEnv("SERVER_HOST", ""),
		Port:            GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:     GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Address returns the listen address in host:port form, ":port" for all interfaces.
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate validates server configuration.
func (c ServerConfig) Validate() error {
	var errs []error

	port, err := strconv.Atoi(strings.TrimPrefix(c.Port, ":"))
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid SERVER_PORT: %q (must be 1-65535)", c.Port))
	}
	if c.ReadTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_READ_TIMEOUT must be positive"))
	}
	if c.WriteTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_WRITE_TIMEOUT must be positive"))
	}
	if c.IdleTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_IDLE_TIMEOUT must be positive"))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("SERVER_SHUTDOWN_TIMEOUT must not be negative"))
	}
	return errors.Join(errs...)
}
