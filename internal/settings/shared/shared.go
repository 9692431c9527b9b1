// Package shared holds the settings types of the domains every subsystem
// shares through the configuration store.
package shared

// Names of the settings domains registered by the daemon.
const (
	DomainLdap       = "ldap"
	DomainRegistry   = "registry"
	DomainStatistics = "statistics"
)
