// Package token manages the access tokens identities authenticate with.
package token

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/uniuri"
)

const (
	nameQueryPattern = "name = ?"

	// generatedSecretLength yields ~190 bits of entropy with the standard character set.
	generatedSecretLength = 32
)

// Facade bundles the access token operations on top of the database.
type Facade struct {
	db *gorm.DB
}

// NewFacade creates a token facade on the given database connection.
func NewFacade(db *gorm.DB) (*Facade, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &Facade{db: db}, nil
}

// GetAccessToken retrieves an access token by its unique name.
func (f *Facade) GetAccessToken(name string) (*models.AccessToken, error) {
	if name == "" {
		return nil, ErrTokenNameEmpty
	}

	var entry models.AccessToken

	result := f.db.Where(nameQueryPattern, name).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}

		return nil, result.Error
	}

	return &entry, nil
}

// CreateAccessToken stores a new access token. The secret is hashed before it
// is written, the plaintext is never stored.
func (f *Facade) CreateAccessToken(name, secret string, tokenType models.AccessTokenType) (*models.AccessToken, error) {
	if name == "" {
		return nil, ErrTokenNameEmpty
	}

	var existing models.AccessToken

	result := f.db.Where(nameQueryPattern, name).First(&existing)
	if result.Error == nil {
		return nil, ErrTokenAlreadyExists
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	entry := &models.AccessToken{
		Name:   name,
		Secret: models.HashSecret(secret),
		Type:   tokenType,
	}

	result = f.db.Create(entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return entry, nil
}

// GenerateAccessToken creates a token with a random secret and returns the
// plaintext next to the stored entry. The plaintext is not recoverable later.
func (f *Facade) GenerateAccessToken(name string, tokenType models.AccessTokenType) (*models.AccessToken, string, error) {
	secret := uniuri.NewLen(generatedSecretLength)

	entry, err := f.CreateAccessToken(name, secret, tokenType)
	if err != nil {
		return nil, "", err
	}

	return entry, secret, nil
}

// ListAccessTokens returns all access tokens ordered by name.
func (f *Facade) ListAccessTokens() ([]models.AccessToken, error) {
	var entries []models.AccessToken

	result := f.db.Order("name").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// DeleteAccessToken removes an access token by name.
func (f *Facade) DeleteAccessToken(name string) error {
	if name == "" {
		return ErrTokenNameEmpty
	}

	result := f.db.Where(nameQueryPattern, name).Delete(&models.AccessToken{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}
