// Package settings implements the shared configuration store.
//
// Subsystems register typed settings domains under unique names. Each domain
// carries a default value, a JSON schema (embedded or inferred from the
// defaults) and a live reference that consumers hold on to. The facade loads
// and persists all domains as one JSON document through a pluggable
// configuration provider, so a value updated at runtime is observed by every
// consumer without a restart.
package settings
