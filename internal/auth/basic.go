package auth

import (
	"errors"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/token"
)

// BasicAuthenticator checks credentials against the stored access tokens.
type BasicAuthenticator struct {
	tokens AccessTokenService
}

// NewBasicAuthenticator creates the authenticator on top of the given token
// store.
func NewBasicAuthenticator(tokens AccessTokenService) *BasicAuthenticator {
	return &BasicAuthenticator{tokens: tokens}
}

// Authenticate resolves the named token and verifies the supplied secret
// against its stored hash.
func (a *BasicAuthenticator) Authenticate(credentials *Credentials) (*models.AccessToken, error) {
	entry, err := a.tokens.GetAccessToken(credentials.Name)
	if err != nil {
		if errors.Is(err, token.ErrTokenNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, internalError("failed to look up access token", err)
	}

	if !entry.VerifySecret(credentials.Secret) {
		return nil, ErrInvalidCredentials
	}

	return entry, nil
}

// Enabled is always true, stored tokens are the baseline backend.
func (a *BasicAuthenticator) Enabled() bool {
	return true
}

// Realm identifies the backend in challenge responses.
func (a *BasicAuthenticator) Realm() string {
	return "Basic"
}
