package auth

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/rs/zerolog/log"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/settings"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/settings/shared"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/token"
)

// ldapFailureSource labels directory failures in the failure tracker.
const ldapFailureSource = "ldap-authenticator"

// FailureReporter receives failures recorded for diagnostics without changing
// the outcome of the operation that hit them.
type FailureReporter interface {
	ReportFailure(source string, err error)
}

// DirectoryConnection is the slice of an LDAP connection the authenticator
// uses.
type DirectoryConnection interface {
	Bind(username, password string) error
	Search(request *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
}

// DialFunc opens a directory connection for the given settings snapshot.
type DialFunc func(s shared.LdapSettings) (DirectoryConnection, error)

// SearchEntry is one directory search result: a distinguished name and the
// requested attributes with their ordered values.
type SearchEntry struct {
	DN         string
	Attributes map[string][]string
}

// LdapAuthenticator authenticates credentials through an LDAP directory and
// resolves them to access tokens. All directory coordinates come from the
// live ldap settings domain, so runtime edits apply to the next attempt.
type LdapAuthenticator struct {
	settings *settings.Reference[shared.LdapSettings]
	tokens   AccessTokenService
	failures FailureReporter
	dial     DialFunc
}

// NewLdapAuthenticator creates the authenticator reading the given live
// settings reference.
func NewLdapAuthenticator(ref *settings.Reference[shared.LdapSettings], tokens AccessTokenService, failures FailureReporter) *LdapAuthenticator {
	return &LdapAuthenticator{
		settings: ref,
		tokens:   tokens,
		failures: failures,
		dial:     dialDirectory,
	}
}

// dialDirectory connects to the directory server described by the settings.
func dialDirectory(s shared.LdapSettings) (DirectoryConnection, error) {
	hostPort := net.JoinHostPort(s.Hostname, strconv.Itoa(s.Port))

	var (
		ldapURL   string
		tlsConfig *tls.Config
	)

	if s.SSL {
		ldapURL = "ldaps://" + hostPort
		tlsConfig = &tls.Config{
			ServerName: s.Hostname,
			MinVersion: tls.VersionTLS12,
		}
	} else {
		ldapURL = "ldap://" + hostPort
	}

	conn, err := ldap.DialURL(ldapURL, ldap.DialWithTLSConfig(tlsConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LDAP server: %w", err)
	}

	if s.Timeout > 0 {
		conn.SetTimeout(time.Duration(s.Timeout) * time.Second)
	}

	return conn, nil
}

// Authenticate runs the directory pipeline: bind as the search user, locate
// the candidate entry, bind as the candidate to check the secret, re-search
// with the operator's user filter and validate the naming attribute. Settings
// are latched once at entry, one attempt observes one consistent snapshot.
func (a *LdapAuthenticator) Authenticate(credentials *Credentials) (*models.AccessToken, error) {
	s := a.settings.Get()

	conn, err := a.dial(s)
	if err != nil {
		a.failures.ReportFailure(ldapFailureSource, err)

		return nil, unauthorizedLdapAccess(err)
	}

	defer func() {
		if errClose := conn.Close(); errClose != nil {
			log.Warn().Err(errClose).Msg("failed to close LDAP connection")
		}
	}()

	if errBind := conn.Bind(s.SearchUserDN, s.SearchUserPassword); errBind != nil {
		a.failures.ReportFailure(ldapFailureSource, errBind)

		return nil, unauthorizedLdapAccess(errBind)
	}

	candidateFilter := fmt.Sprintf("(&(objectClass=person)(%s=%s))", s.UserAttribute, ldap.EscapeFilter(credentials.Name))

	candidates, err := a.search(conn, s, candidateFilter, s.UserAttribute)
	if err != nil {
		return nil, err
	}

	if len(candidates) != 1 {
		return nil, ErrNotOneResult
	}

	// the actual password check: bind as the candidate entry
	if errBind := conn.Bind(candidates[0].DN, credentials.Secret); errBind != nil {
		a.failures.ReportFailure(ldapFailureSource, errBind)

		return nil, unauthorizedLdapAccess(errBind)
	}

	// the operator's filter fragment is appended verbatim
	userFilter := fmt.Sprintf("(&(objectClass=person)(%s=%s)%s)", s.UserAttribute, ldap.EscapeFilter(credentials.Name), s.UserFilter)

	users, err := a.search(conn, s, userFilter, s.UserAttribute)
	if err != nil {
		return nil, err
	}

	if len(users) != 1 {
		return nil, ErrNotOneUserResult
	}

	// guard against attribute aliasing: the canonical value must equal the
	// requested name exactly
	values := users[0].Attributes[s.UserAttribute]
	if len(values) != 1 {
		return nil, ErrNotOneAttribute
	}

	if values[0] != credentials.Name {
		return nil, ErrAttributeMismatch
	}

	return a.resolveToken(credentials, s.UserType)
}

// search runs a subtree search and maps directory faults into the error
// taxonomy. An empty result set is a not-found condition.
func (a *LdapAuthenticator) search(conn DirectoryConnection, s shared.LdapSettings, filter string, attributes ...string) ([]SearchEntry, error) {
	request := ldap.NewSearchRequest(
		s.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, // Size limit
		s.Timeout,
		false,
		filter,
		attributes,
		nil,
	)

	result, err := conn.Search(request)
	if err != nil {
		switch {
		case ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject):
			return nil, ErrEntriesNotFound
		case ldap.IsErrorWithCode(err, ldap.ErrorFilterCompile):
			a.failures.ReportFailure(ldapFailureSource, err)

			return nil, badRequestError("invalid search filter", err)
		default:
			a.failures.ReportFailure(ldapFailureSource, err)

			return nil, internalError("directory search failed", err)
		}
	}

	if len(result.Entries) == 0 {
		return nil, ErrEntriesNotFound
	}

	entries := make([]SearchEntry, len(result.Entries))

	for i, entry := range result.Entries {
		attrs := make(map[string][]string, len(entry.Attributes))
		for _, attribute := range entry.Attributes {
			attrs[attribute.Name] = attribute.Values
		}

		entries[i] = SearchEntry{DN: entry.DN, Attributes: attrs}
	}

	return entries, nil
}

// resolveToken returns the existing token for the validated name, creating
// one with the configured token type when absent.
func (a *LdapAuthenticator) resolveToken(credentials *Credentials, tokenType models.AccessTokenType) (*models.AccessToken, error) {
	entry, err := a.tokens.GetAccessToken(credentials.Name)
	if err == nil {
		return entry, nil
	}

	if !errors.Is(err, token.ErrTokenNotFound) {
		return nil, internalError("failed to look up access token", err)
	}

	created, err := a.tokens.CreateAccessToken(credentials.Name, credentials.Secret, tokenType)
	if err != nil {
		return nil, internalError("failed to create access token", err)
	}

	return created, nil
}

// Enabled reports the live enabled flag of the ldap settings domain.
func (a *LdapAuthenticator) Enabled() bool {
	return a.settings.Get().Enabled
}

// Realm identifies the backend in challenge responses.
func (a *LdapAuthenticator) Realm() string {
	return "LDAP"
}
