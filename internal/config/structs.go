package config

import (
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode  bool       `toml:"devMode"` // enable dev mode for development
	Title    string     `toml:"title"`
	DB       DB         `toml:"db"`
	Log      logger.Log `toml:"log"`
	Settings Settings   `toml:"settings"`
}

// Settings selects where the shared configuration document lives.
type Settings struct {
	Provider string `toml:"provider"` // "file" or "database"
	Path     string `toml:"path"`     // document path used by the file provider
	Watch    bool   `toml:"watch"`    // reload the document when the file changes on disk
	ReadOnly bool   `toml:"readOnly"` // reject configuration updates
}

const (
	// SettingsProviderFile stores the shared configuration document in a local file.
	SettingsProviderFile = "file"
	// SettingsProviderDatabase stores the shared configuration document in the database.
	SettingsProviderDatabase = "database"
)
