package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/settings"
)

// loadSharedConfiguration brings the settings store in line with the stored
// document. An empty mutable store is seeded with the domain defaults so the
// first start leaves an editable document behind.
func loadSharedConfiguration(store *settings.Facade) error {
	document, err := store.FetchConfiguration()
	if err != nil {
		return fmt.Errorf("failed to fetch shared configuration: %w", err)
	}

	if document == "" {
		if !store.IsMutable() {
			log.Info().Str("source", store.ProviderName()).Msg("no shared configuration stored, using defaults")
			return nil
		}

		if err = store.PersistConfiguration(); err != nil {
			return fmt.Errorf("failed to seed shared configuration: %w", err)
		}

		log.Info().Str("source", store.ProviderName()).Msg("seeded shared configuration with defaults")

		return nil
	}

	if err = store.LoadFromDocument(document); err != nil {
		var loadErr *settings.LoadError
		if errors.As(err, &loadErr) {
			// Domains that failed keep their defaults, the rest is live.
			log.Warn().Err(err).Msg("parts of the shared configuration failed to load")
			return nil
		}

		return fmt.Errorf("failed to load shared configuration: %w", err)
	}

	return nil
}
