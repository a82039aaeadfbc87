// Package pool sizes the sql.DB behind a gorm connection.
package pool

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidLimits is returned by Apply for inconsistent limits.
var ErrInvalidLimits = errors.New("invalid connection pool limits")

// Limits bounds the connections kept by the snapshot database.
type Limits struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

// Postgres returns limits for the postgres driver. The store writes one
// snapshot at a time, so a handful of connections is plenty.
func Postgres() Limits {
	return Limits{
		MaxOpen:     4,
		MaxIdle:     2,
		MaxLifetime: 30 * time.Minute,
		MaxIdleTime: 5 * time.Minute,
	}
}

// SQLite returns limits for the sqlite driver, which allows a single writer.
// The connection is never recycled so an in-memory database survives.
func SQLite() Limits {
	return Limits{MaxOpen: 1, MaxIdle: 1}
}

// Validate checks that the limits can be applied.
func (l Limits) Validate() error {
	switch {
	case l.MaxOpen <= 0:
		return fmt.Errorf("%w: max open %d must be positive", ErrInvalidLimits, l.MaxOpen)
	case l.MaxIdle < 0:
		return fmt.Errorf("%w: max idle %d must not be negative", ErrInvalidLimits, l.MaxIdle)
	case l.MaxIdle > l.MaxOpen:
		return fmt.Errorf("%w: max idle %d exceeds max open %d", ErrInvalidLimits, l.MaxIdle, l.MaxOpen)
	case l.MaxLifetime < 0 || l.MaxIdleTime < 0:
		return fmt.Errorf("%w: lifetimes must not be negative", ErrInvalidLimits)
	}
	return nil
}

// Apply sets l on the connection pool of db.
func Apply(db *gorm.DB, l Limits) error {
	if err := l.Validate(); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(l.MaxOpen)
	sqlDB.SetMaxIdleConns(l.MaxIdle)
	sqlDB.SetConnMaxLifetime(l.MaxLifetime)
	sqlDB.SetConnMaxIdleTime(l.MaxIdleTime)
	return nil
}
