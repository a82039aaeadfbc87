package config

import (
	"fmt"
	"time"
)

// BackupConfig holds periodic snapshot backup configuration.
type BackupConfig struct {
	Enabled  bool
	Interval time.Duration
	// Dir is the local directory sink, used when no S3 bucket is set.
	Dir string
	// Prefix is slugified into the first segment of every backup key.
	Prefix string
	S3     S3Config
}

// S3Config configures an S3-compatible bucket sink.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// LoadBackupConfigFromEnv loads backup configuration from environment variables.
func LoadBackupConfigFromEnv() BackupConfig {
	return BackupConfig{
		Enabled:  GetEnvBool("BACKUP_ENABLED", false),
		Interval: GetEnvDuration("BACKUP_INTERVAL", time.Hour),
		Dir:      GetEnv("BACKUP_DIR", "backups"),
		Prefix:   GetEnv("BACKUP_PREFIX", "scoreboard"),
		S3: S3Config{
			Bucket:          GetEnv("BACKUP_S3_BUCKET", ""),
			Region:          GetEnv("BACKUP_S3_REGION", "us-east-1"),
			Endpoint:        GetEnv("BACKUP_S3_ENDPOINT", ""),
			AccessKeyID:     GetEnv("BACKUP_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: GetEnv("BACKUP_S3_SECRET_ACCESS_KEY", ""),
		},
	}
}

// UseS3 reports whether backups go to a bucket instead of a directory.
func (c BackupConfig) UseS3() bool {
	return c.S3.Bucket != ""
}

// Validate validates backup configuration. Disabled backups are always valid.
func (c BackupConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Interval < time.Second {
		return fmt.Errorf("BACKUP_INTERVAL must be at least 1s, got %s", c.Interval)
	}
	if c.UseS3() {
		if c.S3.Region == "" {
			return fmt.Errorf("BACKUP_S3_REGION is required when BACKUP_S3_BUCKET is set")
		}
		if (c.S3.AccessKeyID == "") != (c.S3.SecretAccessKey == "") {
			return fmt.Errorf("BACKUP_S3_ACCESS_KEY_ID and BACKUP_S3_SECRET_ACCESS_KEY must be set together")
		}
		return nil
	}
	if c.Dir == "" {
		return fmt.Errorf("BACKUP_DIR is required when no S3 bucket is configured")
	}
	return nil
}
