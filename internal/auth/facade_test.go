package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
)

type stubAuthenticator struct {
	realm   string
	enabled bool
	entry   *models.AccessToken
	err     error
	calls   int
}

func (s *stubAuthenticator) Authenticate(*Credentials) (*models.AccessToken, error) {
	s.calls++

	return s.entry, s.err
}

func (s *stubAuthenticator) Enabled() bool {
	return s.enabled
}

func (s *stubAuthenticator) Realm() string {
	return s.realm
}

func TestFacadeFirstAcceptingBackendWins(t *testing.T) {
	declining := &stubAuthenticator{realm: "Basic", enabled: true, err: ErrInvalidCredentials}
	accepting := &stubAuthenticator{realm: "LDAP", enabled: true, entry: &models.AccessToken{Name: "deployer"}}
	chain := NewFacade(declining, accepting)

	entry, err := chain.Authenticate(&Credentials{Name: "deployer", Secret: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "deployer", entry.Name)
	assert.Equal(t, 1, declining.calls)
	assert.Equal(t, 1, accepting.calls)
}

func TestFacadeSkipsDisabledBackends(t *testing.T) {
	disabled := &stubAuthenticator{realm: "LDAP", enabled: false, entry: &models.AccessToken{Name: "deployer"}}
	failing := &stubAuthenticator{realm: "Basic", enabled: true, err: ErrInvalidCredentials}
	chain := NewFacade(disabled, failing)

	_, err := chain.Authenticate(&Credentials{Name: "deployer", Secret: "s3cret"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, disabled.calls)
	assert.Equal(t, 1, failing.calls)
}

func TestFacadeNoEnabledBackends(t *testing.T) {
	chain := NewFacade(&stubAuthenticator{realm: "LDAP", enabled: false})

	_, err := chain.Authenticate(&Credentials{Name: "deployer", Secret: "s3cret"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFacadeReturnsLastFailure(t *testing.T) {
	first := &stubAuthenticator{realm: "Basic", enabled: true, err: ErrInvalidCredentials}
	second := &stubAuthenticator{realm: "LDAP", enabled: true, err: ErrEntriesNotFound}
	chain := NewFacade(first, second)

	_, err := chain.Authenticate(&Credentials{Name: "deployer", Secret: "s3cret"})

	require.ErrorIs(t, err, ErrEntriesNotFound)
}

func TestFacadeAuthenticateByHeader(t *testing.T) {
	accepting := &stubAuthenticator{realm: "Basic", enabled: true, entry: &models.AccessToken{Name: "user"}}
	chain := NewFacade(accepting)

	entry, err := chain.AuthenticateByHeader(encodedHeader(MethodBasic, "user:pass"))
	require.NoError(t, err)
	assert.Equal(t, "user", entry.Name)

	_, err = chain.AuthenticateByHeader("Bearer abc")
	require.ErrorIs(t, err, ErrUnknownMethod)
	assert.Equal(t, 1, accepting.calls)
}

func TestFacadeAuthenticators(t *testing.T) {
	basic := &stubAuthenticator{realm: "Basic", enabled: true}
	directory := &stubAuthenticator{realm: "LDAP", enabled: false}
	chain := NewFacade(basic, directory)

	authenticators := chain.Authenticators()

	require.Len(t, authenticators, 2)
	assert.Equal(t, "Basic", authenticators[0].Realm())
	assert.Equal(t, "LDAP", authenticators[1].Realm())
}
