// Package models contains database model definitions.
package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// AccessTokenType classifies how long an access token is meant to live.
type AccessTokenType string

const (
	// AccessTokenPersistent marks tokens that stay valid until deleted.
	AccessTokenPersistent AccessTokenType = "persistent"

	// AccessTokenTemporary marks tokens meant to be rotated or revoked by an operator.
	AccessTokenTemporary AccessTokenType = "temporary"
)

// AccessToken represents an identity that may authenticate against the depot.
// The secret is stored as an Argon2id hash, never in plaintext.
type AccessToken struct {
	// ID is the unique identifier of the access token.
	ID uint64 `gorm:"primaryKey"`
	// Name is the unique identity name presented during authentication.
	Name string `gorm:"unique;size:255;not null"`
	// Secret is the Argon2id hash of the token secret.
	Secret string `gorm:"size:255"`
	// Type classifies the token lifetime (persistent or temporary).
	Type AccessTokenType `gorm:"type:varchar(20);not null;default:'persistent'"`
	// CreatedAt is the timestamp when the token was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the token was last updated (managed by GORM).
	UpdatedAt time.Time
}

// HashSecret hashes a plaintext token secret using the Argon2id algorithm.
func HashSecret(secret string) string {
	hashedSecret, err := argon2id.CreateHash(secret, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash secret: %v", err)
	}

	return hashedSecret
}

// VerifySecret verifies a plaintext secret against the stored hash using
// constant-time comparison.
func (t *AccessToken) VerifySecret(secret string) bool {
	match, err := argon2id.ComparePasswordAndHash(secret, t.Secret)
	if err != nil {
		log.Error().Msgf("failed to verify secret: %v", err)
		return false
	}

	return match
}
