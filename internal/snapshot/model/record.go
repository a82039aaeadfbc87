package model

import (
	"time"

	"gorm.io/gorm"
)

// Record is the stored form of a snapshot.
// Matches the snapshots table schema.
type Record struct {
	SnapshotKey string    `gorm:"primaryKey;column:snapshot_key;type:varchar(64)" json:"snapshot_key" bson:"_id"`
	Payload     string    `gorm:"column:payload;type:text;not null"               json:"payload"      bson:"payload"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                      json:"updated_at"   bson:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Record) TableName() string {
	return "snapshots"
}

// BeforeSave stamps UpdatedAt.
func (r *Record) BeforeSave(tx *gorm.DB) error {
	r.UpdatedAt = time.Now().UTC()
	return nil
}
