package models

import "time"

// Configuration represents a named configuration document stored in the database.
type Configuration struct {
	// ID is the unique identifier of the configuration entry.
	ID uint64 `gorm:"primaryKey"`
	// Name is the unique name of the configuration document.
	Name string `gorm:"unique;size:255;not null"`
	// Document is the serialized configuration content.
	Document []byte `gorm:"type:blob"`
	// CreatedAt is the timestamp when the entry was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the entry was last updated (managed by GORM).
	UpdatedAt time.Time
}
