// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d %s",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.Extras,
		)
	case config.EngineSQLite:
		// the sqlite driver takes a plain file path (or :memory:)
		return cfg.DB.Name
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	}
}
