package settings

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// failureSource labels shared configuration failures in the failure tracker.
const failureSource = "shared-configuration"

// FailureReporter receives failures that are recorded for diagnostics but do
// not change the outcome of the operation that hit them.
type FailureReporter interface {
	ReportFailure(source string, err error)
}

// Facade is the shared configuration store: a registry of uniquely named
// settings domains backed by one persisted JSON document.
type Facade struct {
	provider ConfigurationProvider
	failures FailureReporter
	schemas  *SchemaRepository
	domains  map[string]Domain
	order    []string
}

// NewFacade creates a facade resolving schemas from the embedded source.
func NewFacade(provider ConfigurationProvider, failures FailureReporter) *Facade {
	return NewFacadeWithSchemas(provider, failures, NewSchemaRepository(EmbeddedSchemaSource{}))
}

// NewFacadeWithSchemas creates a facade with a custom schema repository.
func NewFacadeWithSchemas(provider ConfigurationProvider, failures FailureReporter, schemas *SchemaRepository) *Facade {
	return &Facade{
		provider: provider,
		failures: failures,
		schemas:  schemas,
		domains:  make(map[string]Domain),
	}
}

// RegisterDomain adds a domain to the registry. Registering two domains under
// the same name is a programmer error and panics.
func (f *Facade) RegisterDomain(domain Domain) {
	if _, exists := f.domains[domain.Name()]; exists {
		panic(fmt.Sprintf("settings: domain %q registered twice", domain.Name()))
	}

	domain.bindSchemas(f.schemas)

	f.domains[domain.Name()] = domain
	f.order = append(f.order, domain.Name())
}

// DomainNames returns the registered domain names in registration order.
func (f *Facade) DomainNames() []string {
	return append([]string(nil), f.order...)
}

// Domain returns the registered domain with the given name.
func (f *Facade) Domain(name string) (Domain, bool) {
	domain, found := f.domains[name]
	return domain, found
}

// LoadFromDocument applies a full configuration document to every registered
// domain present in it. A failing domain does not stop the others; all
// failures are collected into the returned LoadError. A document that is not
// a JSON object updates nothing and returns nil.
func (f *Facade) LoadFromDocument(document string) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(document), &doc); err != nil {
		log.Debug().Err(err).Msg("shared configuration document is not a JSON object, nothing to load")
		return nil
	}

	var (
		loaded   []string
		failures []DomainFailure
	)

	for _, name := range f.order {
		raw, present := doc[name]
		if !present {
			continue
		}

		if err := f.domains[name].UpdateFromJSON(raw); err != nil {
			log.Error().Err(err).Str("domain", name).Msg("failed to load settings domain")
			log.Debug().Str("domain", name).RawJSON("value", raw).Msg("rejected settings value")
			f.failures.ReportFailure(failureSource, err)
			failures = append(failures, DomainFailure{Domain: name, Err: err})

			continue
		}

		loaded = append(loaded, name)
	}

	log.Info().Strs("domains", loaded).Str("source", f.provider.Name()).Msg("loaded shared configuration")

	if len(failures) > 0 {
		return &LoadError{Failures: failures}
	}

	return nil
}

// UpdateDomain validates and applies a new value for one domain, then persists
// the re-rendered document through the configuration provider. The persistence
// outcome is logged and reported, not reflected in the returned result.
func (f *Facade) UpdateDomain(name string, value json.RawMessage) error {
	domain, found := f.domains[name]
	if !found {
		return ErrDomainNotFound
	}

	if err := domain.UpdateFromJSON(value); err != nil {
		return err
	}

	if err := f.PersistConfiguration(); err != nil {
		log.Error().Err(err).Str("domain", name).Str("source", f.provider.Name()).Msg("failed to persist shared configuration")
		f.failures.ReportFailure(failureSource, err)
	}

	return nil
}

// RenderConfiguration serializes every registered domain's current value into
// one stable (name sorted) document.
func (f *Facade) RenderConfiguration() (string, error) {
	doc := make(map[string]json.RawMessage, len(f.domains))

	for name, domain := range f.domains {
		content, err := domain.Render()
		if err != nil {
			return "", err
		}

		doc[name] = content
	}

	rendered, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render shared configuration: %w", err)
	}

	return string(rendered), nil
}

// PersistConfiguration renders the current state and stores it through the
// configuration provider.
func (f *Facade) PersistConfiguration() error {
	document, err := f.RenderConfiguration()
	if err != nil {
		return err
	}

	if err := f.provider.UpdateConfiguration(document); err != nil {
		return fmt.Errorf("failed to store shared configuration: %w", err)
	}

	return nil
}

// FetchConfiguration returns the provider's current document verbatim.
func (f *Facade) FetchConfiguration() (string, error) {
	return f.provider.FetchConfiguration() //nolint:wrapcheck
}

// IsUpdateRequired reports whether the provider holds a newer document than
// the last fetched one.
func (f *Facade) IsUpdateRequired() bool {
	return f.provider.IsUpdateRequired()
}

// IsMutable reports whether the provider accepts updates.
func (f *Facade) IsMutable() bool {
	return f.provider.IsMutable()
}

// ProviderName names the backing configuration source.
func (f *Facade) ProviderName() string {
	return f.provider.Name()
}

// DomainRef returns the live reference of a registered typed domain.
func DomainRef[T any](f *Facade, name string) (*Reference[T], error) {
	domain, found := f.domains[name]
	if !found {
		return nil, ErrDomainNotFound
	}

	typed, ok := domain.(*TypedDomain[T])
	if !ok {
		return nil, fmt.Errorf("settings domain %q does not hold %T values", name, *new(T))
	}

	return typed.Ref(), nil
}
