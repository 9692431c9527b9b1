package auth

import (
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
)

// Authenticator is implemented by every authentication backend.
type Authenticator interface {
	// Authenticate resolves credentials to the access token they identify.
	Authenticate(credentials *Credentials) (*models.AccessToken, error)
	// Enabled reports whether the backend is currently switched on. Disabled
	// backends stay safely callable, the chain just skips them.
	Enabled() bool
	// Realm identifies the backend in challenge responses.
	Realm() string
}

// AccessTokenService is the identity store authenticators resolve tokens
// against.
type AccessTokenService interface {
	GetAccessToken(name string) (*models.AccessToken, error)
	CreateAccessToken(name, secret string, tokenType models.AccessTokenType) (*models.AccessToken, error)
}
