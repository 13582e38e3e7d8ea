package storage

import "time"

// KVModel is the GORM model for the kv table.
// Value holds the JSON encoding of the stored preference.
type KVModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (KVModel) TableName() string { return "kv" }
