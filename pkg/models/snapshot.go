package model

import "time"

// Snapshot is the gorm row backing the SQLite snapshot store.
type Snapshot struct {
	Name      string    `gorm:"primaryKey;size:191"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
