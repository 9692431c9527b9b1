// Package configuration provides CRUD operations for stored configuration documents.
package configuration

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrConfigurationNotFound is returned when a configuration document is not found.
	ErrConfigurationNotFound = errors.New("configuration not found")
	// ErrConfigurationNameEmpty is returned when attempting to store a configuration document with an empty name.
	ErrConfigurationNameEmpty = errors.New("configuration name cannot be empty")
	// ErrConfigurationAlreadyExists is returned when attempting to create a configuration document that already exists.
	ErrConfigurationAlreadyExists = errors.New("configuration already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a configuration document by its name.
func Get(db *gorm.DB, name string) (*models.Configuration, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrConfigurationNameEmpty
	}

	var entry models.Configuration
	result := db.Where(nameQueryPattern, name).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrConfigurationNotFound
		}
		return nil, result.Error
	}

	return &entry, nil
}

// Create creates a new configuration document in the database.
func Create(db *gorm.DB, name string, document []byte) (*models.Configuration, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrConfigurationNameEmpty
	}

	// Check if the document already exists
	var existing models.Configuration
	result := db.Where(nameQueryPattern, name).First(&existing)
	if result.Error == nil {
		return nil, ErrConfigurationAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	entry := &models.Configuration{
		Name:     name,
		Document: document,
	}

	result = db.Create(entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return entry, nil
}

// Set creates or updates a configuration document by name (upsert operation).
func Set(db *gorm.DB, name string, document []byte) (*models.Configuration, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrConfigurationNameEmpty
	}

	var entry models.Configuration
	result := db.Where(nameQueryPattern, name).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Document doesn't exist, create it
		return Create(db, name, document)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	// Document exists, update it
	entry.Document = document
	result = db.Save(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// Delete deletes a configuration document by name.
func Delete(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrConfigurationNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Configuration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConfigurationNotFound
	}

	return nil
}
