package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// structValidator checks settings values against their validate tags.
var structValidator = validator.New() //nolint:gochecknoglobals

// Domain describes one named settings unit managed by the facade.
type Domain interface {
	// Name is the unique document key of the domain.
	Name() string
	// TypeName is the fully qualified name of the domain's settings type,
	// used to look up precomputed schemas.
	TypeName() string
	// Schema returns the JSON schema describing the domain's settings type.
	Schema() ([]byte, error)
	// Render returns the current value serialized to JSON.
	Render() (json.RawMessage, error)
	// UpdateFromJSON validates and applies a new serialized value. On
	// failure the previous value stays in place.
	UpdateFromJSON(raw json.RawMessage) error

	bindSchemas(repo *SchemaRepository)
}

// TypedDomain binds a settings type to its name, schema and live value.
// Settings types are structs; their validate tags run on every update.
type TypedDomain[T any] struct {
	name     string
	typeName string
	defaults T
	ref      *Reference[T]

	schemas    *SchemaRepository
	schemaOnce sync.Once
	schemaText []byte
	schemaErr  error
}

// NewDomain creates a settings domain with the given unique name and default
// value. The domain becomes usable once registered with a facade.
func NewDomain[T any](name string, defaults T) *TypedDomain[T] {
	return &TypedDomain[T]{
		name:     name,
		typeName: fmt.Sprintf("%T", defaults),
		defaults: defaults,
		ref:      NewReference(defaults),
	}
}

// Name returns the unique document key of the domain.
func (d *TypedDomain[T]) Name() string {
	return d.name
}

// TypeName returns the fully qualified name of the settings type.
func (d *TypedDomain[T]) TypeName() string {
	return d.typeName
}

// Ref returns the live reference consumers read the domain through.
func (d *TypedDomain[T]) Ref() *Reference[T] {
	return d.ref
}

// Get returns the current settings value.
func (d *TypedDomain[T]) Get() T {
	return d.ref.Get()
}

// bindSchemas attaches the schema repository during registration. Domains
// without a precomputed schema generate one right away; a generation failure
// is fatal since such a domain could never validate an update.
func (d *TypedDomain[T]) bindSchemas(repo *SchemaRepository) {
	d.schemas = repo

	if _, found := repo.Lookup(d.typeName); found {
		return // read lazily on first Schema call
	}

	if _, err := d.Schema(); err != nil {
		panic(fmt.Sprintf("settings: failed to generate schema for domain %q: %v", d.name, err))
	}
}

// Schema returns the JSON schema describing the domain's settings type. The
// schema is read or generated at most once per process.
func (d *TypedDomain[T]) Schema() ([]byte, error) {
	if d.schemas == nil {
		return nil, fmt.Errorf("settings domain %q is not registered", d.name)
	}

	d.schemaOnce.Do(func() {
		if content, found := d.schemas.Lookup(d.typeName); found {
			d.schemaText = content
			return
		}

		sample, err := json.Marshal(d.defaults)
		if err != nil {
			d.schemaErr = fmt.Errorf("failed to serialize %s defaults: %w", d.name, err)
			return
		}

		d.schemaText, d.schemaErr = d.schemas.Generate(d.typeName, sample)
	})

	return d.schemaText, d.schemaErr
}

// Render returns the current value serialized to JSON.
func (d *TypedDomain[T]) Render() (json.RawMessage, error) {
	content, err := json.Marshal(d.ref.Get())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s settings: %w", d.name, err)
	}

	return content, nil
}

// UpdateFromJSON validates the raw value against the domain schema and the
// settings type's validate tags, then commits it. Fields absent from the raw
// value keep their defaults.
func (d *TypedDomain[T]) UpdateFromJSON(raw json.RawMessage) error {
	schemaText, err := d.Schema()
	if err != nil {
		return err
	}

	if err := d.schemas.Validate(schemaText, raw); err != nil {
		return err
	}

	value := d.defaults
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("failed to deserialize %s settings: %w", d.name, err)
	}

	if err := structValidator.Struct(value); err != nil {
		return fmt.Errorf("invalid %s settings: %w", d.name, err)
	}

	d.ref.Update(value)

	return nil
}
