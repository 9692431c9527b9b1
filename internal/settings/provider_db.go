package settings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/controller/configuration"
)

// DocumentName is the configurations table row the shared document lives in.
const DocumentName = "shared-configuration"

// DatabaseProvider stores the shared configuration document in the
// configurations table.
type DatabaseProvider struct {
	db       *gorm.DB
	readOnly bool
}

// NewDatabaseProvider creates a provider backed by the given database.
func NewDatabaseProvider(db *gorm.DB, readOnly bool) *DatabaseProvider {
	return &DatabaseProvider{db: db, readOnly: readOnly}
}

// Name identifies the provider in logs and summaries.
func (p *DatabaseProvider) Name() string {
	return "database"
}

// FetchConfiguration reads the document from the database. A missing row
// yields an empty document.
func (p *DatabaseProvider) FetchConfiguration() (string, error) {
	entry, err := configuration.Get(p.db, DocumentName)
	if errors.Is(err, configuration.ErrConfigurationNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch configuration document: %w", err)
	}

	return string(entry.Document), nil
}

// UpdateConfiguration stores the document in the database.
func (p *DatabaseProvider) UpdateConfiguration(document string) error {
	if p.readOnly {
		return ErrProviderReadOnly
	}

	if _, err := configuration.Set(p.db, DocumentName, []byte(document)); err != nil {
		return fmt.Errorf("failed to store configuration document: %w", err)
	}

	return nil
}

// IsUpdateRequired is always false, the database copy is authoritative.
func (p *DatabaseProvider) IsUpdateRequired() bool {
	return false
}

// IsMutable reports whether the provider accepts updates.
func (p *DatabaseProvider) IsMutable() bool {
	return !p.readOnly
}
