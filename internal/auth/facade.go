package auth

import (
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
)

// Facade is the ordered authenticator chain.
type Facade struct {
	authenticators []Authenticator
}

// NewFacade creates the chain. Backends are tried in the given order.
func NewFacade(authenticators ...Authenticator) *Facade {
	return &Facade{authenticators: authenticators}
}

// Authenticate offers the credentials to each enabled backend in order and
// returns the first acceptance. When every backend declines, the last
// failure is returned; with no enabled backend at all the credentials count
// as invalid.
func (f *Facade) Authenticate(credentials *Credentials) (*models.AccessToken, error) {
	var lastErr error = ErrInvalidCredentials

	for _, authenticator := range f.authenticators {
		if !authenticator.Enabled() {
			continue
		}

		entry, err := authenticator.Authenticate(credentials)
		if err != nil {
			lastErr = err
			continue
		}

		return entry, nil
	}

	return nil, lastErr
}

// AuthenticateByHeader extracts credentials from an Authorization header
// value and runs them through the chain.
func (f *Facade) AuthenticateByHeader(header string) (*models.AccessToken, error) {
	credentials, err := ExtractCredentials(header)
	if err != nil {
		return nil, err
	}

	return f.Authenticate(credentials)
}

// Authenticators returns the chain in invocation order.
func (f *Facade) Authenticators() []Authenticator {
	return append([]Authenticator(nil), f.authenticators...)
}
