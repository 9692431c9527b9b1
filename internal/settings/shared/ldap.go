package shared

import (
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
)

// LdapSettings configures authentication against an LDAP directory.
type LdapSettings struct {
	// Enabled turns LDAP authentication on.
	Enabled bool `json:"enabled"`
	// SSL connects via LDAPS instead of plain LDAP.
	SSL bool `json:"ssl"`
	// Hostname of the directory server.
	Hostname string `json:"hostname" validate:"required"`
	// Port of the directory server.
	Port int `json:"port" validate:"gte=1,lte=65535"`
	// BaseDN is the subtree users are searched under.
	BaseDN string `json:"baseDn"`
	// SearchUserDN is the account used for the user lookup bind.
	SearchUserDN string `json:"searchUserDn"`
	// SearchUserPassword authenticates the search user.
	SearchUserPassword string `json:"searchUserPassword"`
	// UserAttribute is the attribute holding the login name, typically cn or uid.
	UserAttribute string `json:"userAttribute" validate:"required"`
	// UserFilter is ANDed into the user search filter when set.
	UserFilter string `json:"userFilter"`
	// UserType is the access token type created for directory users.
	UserType models.AccessTokenType `json:"userType" validate:"oneof=persistent temporary"`
	// Timeout bounds directory operations, in seconds.
	Timeout int `json:"timeout" validate:"gte=0"`
}

// DefaultLdapSettings returns the LDAP domain defaults. Authentication stays
// disabled until an operator fills in the real directory coordinates.
func DefaultLdapSettings() LdapSettings {
	return LdapSettings{
		Enabled:            false,
		SSL:                false,
		Hostname:           "ldap.domain.com",
		Port:               389,
		BaseDN:             "dc=company,dc=com",
		SearchUserDN:       "cn=admin,dc=company,dc=com",
		SearchUserPassword: "search-user-password",
		UserAttribute:      "cn",
		UserFilter:         "(memberOf=ou=Depot Users,dc=company,dc=com)",
		UserType:           models.AccessTokenPersistent,
		Timeout:            10,
	}
}
