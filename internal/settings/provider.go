package settings

// ConfigurationProvider persists the shared configuration document.
type ConfigurationProvider interface {
	// Name identifies the configuration source in logs and summaries.
	Name() string
	// FetchConfiguration returns the current document. An empty string means
	// no document has been stored yet.
	FetchConfiguration() (string, error)
	// UpdateConfiguration replaces the stored document.
	UpdateConfiguration(document string) error
	// IsUpdateRequired reports whether the stored document changed since the
	// last fetch.
	IsUpdateRequired() bool
	// IsMutable reports whether UpdateConfiguration is supported.
	IsMutable() bool
}
