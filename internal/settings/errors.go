package settings

import (
	"errors"
	"strings"
)

var (
	// ErrDomainNotFound is returned when an operation names a settings domain
	// that was never registered.
	ErrDomainNotFound = errors.New("settings domain not found")

	// ErrProviderReadOnly is returned when an update reaches a provider that
	// only serves the configuration document.
	ErrProviderReadOnly = errors.New("configuration provider is read only")
)

// DomainFailure records the load failure of a single settings domain.
type DomainFailure struct {
	Domain string
	Err    error
}

// LoadError aggregates the per-domain failures of one document load. Domains
// that loaded fine are not part of it.
type LoadError struct {
	Failures []DomainFailure
}

func (e *LoadError) Error() string {
	var b strings.Builder

	b.WriteString("failed to load shared configuration:")

	for _, failure := range e.Failures {
		b.WriteString("\n  ")
		b.WriteString(failure.Domain)
		b.WriteString(": ")
		b.WriteString(failure.Err.Error())
	}

	return b.String()
}

// Unwrap exposes the individual domain errors for errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, failure := range e.Failures {
		errs[i] = failure.Err
	}

	return errs
}
