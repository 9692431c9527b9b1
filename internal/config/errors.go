package config

import (
	"errors"
)

var (
	// ErrUnknownGormEngine error if config db.gormEngine names no supported engine.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be one of mysql, postgres, sqlite")

	// ErrUnknownSettingsProvider error if config settings.provider names no supported provider.
	ErrUnknownSettingsProvider = errors.New("toml config settings.provider must be one of file, database")
)
