// Package config reads PostgreSQL connection settings for the postgres storage driver.
package config

import (
	"errors"
	"fmt"
	"strings"

	appConfig "github.com/festy23/scoreboard/internal/config"
	"github.com/festy23/scoreboard/pkg/retry"
)

// Postgres holds the connection settings of the snapshot database.
type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	TimeZone string
}

// LoadPostgresFromEnv reads DB_* variables.
func LoadPostgresFromEnv() Postgres {
	return Postgres{
		Host:     appConfig.GetEnv("DB_HOST", "localhost"),
		Port:     appConfig.GetEnv("DB_PORT", "5432"),
		User:     appConfig.GetEnv("DB_USER", "postgres"),
		Password: appConfig.GetEnv("DB_PASSWORD", "postgres"),
		Database: appConfig.GetEnv("DB_NAME", "scoreboard"),
		SSLMode:  appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appConfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// DSN renders the settings as a libpq keyword string.
func (p Postgres) DSN() string {
	return p.dsn(p.Password)
}

// String renders the DSN with the password masked, for logs.
func (p Postgres) String() string {
	return p.dsn("***")
}

func (p Postgres) dsn(password string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		p.Host, p.User, password, p.Database, p.Port, p.SSLMode, p.TimeZone)
}

// Validate checks the settings that have no usable default.
func (p Postgres) Validate() error {
	var errs []error
	if p.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required for postgres storage"))
	}
	if p.Database == "" {
		errs = append(errs, errors.New("DB_NAME is required for postgres storage"))
	}
	if p.User == "" {
		errs = append(errs, errors.New("DB_USER is required for postgres storage"))
	}
	return errors.Join(errs...)
}

// Redact returns err with the password and the raw DSN masked. The cause is
// kept as text only, so callers cannot unwrap it back to the secret.
func (p Postgres) Redact(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ReplaceAll(err.Error(), p.DSN(), p.String())
	if p.Password != "" {
		msg = strings.ReplaceAll(msg, p.Password, "***")
	}
	return fmt.Errorf("failed to connect to snapshot database %s:%s/%s: %s", p.Host, p.Port, p.Database, msg)
}

// ConnectPolicyFromEnv returns the startup dial policy with DB_RETRY_* overrides.
func ConnectPolicyFromEnv() retry.Policy {
	p := retry.Connect()
	p.Attempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", p.Attempts)
	p.BaseDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", p.BaseDelay)
	p.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", p.MaxDelay)
	p.Factor = appConfig.GetEnvFloat("DB_RETRY_MULTIPLIER", p.Factor)
	return p
}
