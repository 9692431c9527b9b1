package settings

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"

	infer "github.com/JLugagne/jsonschema-infer"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/*.json
var precomputedSchemas embed.FS

// compiledSchemaCacheSize bounds the number of compiled schemas held in memory.
const compiledSchemaCacheSize = 64

// SchemaSource looks up schema documents generated ahead of time, keyed by the
// fully qualified type name of a domain's settings type.
type SchemaSource interface {
	Lookup(typeName string) ([]byte, bool)
}

// EmbeddedSchemaSource serves the schema documents compiled into the binary
// under schema/<type name>.json.
type EmbeddedSchemaSource struct{}

// Lookup returns the embedded schema for the given type name, if present.
func (EmbeddedSchemaSource) Lookup(typeName string) ([]byte, bool) {
	content, err := precomputedSchemas.ReadFile("schema/" + typeName + ".json")
	if err != nil {
		return nil, false
	}

	return content, true
}

// SchemaRepository resolves the JSON schema backing each settings domain and
// validates serialized values against it. Compiled schemas are cached.
type SchemaRepository struct {
	source   SchemaSource
	compiled *lru.Cache[string, *jsonschema.Schema]
}

// NewSchemaRepository creates a repository backed by the given schema source.
func NewSchemaRepository(source SchemaSource) *SchemaRepository {
	cache, err := lru.New[string, *jsonschema.Schema](compiledSchemaCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(fmt.Sprintf("settings: failed to create schema cache: %v", err))
	}

	return &SchemaRepository{source: source, compiled: cache}
}

// Lookup returns the precomputed schema for the given type name, if present.
func (r *SchemaRepository) Lookup(typeName string) ([]byte, bool) {
	return r.source.Lookup(typeName)
}

// Generate infers a schema from the serialized default value of a domain.
// This is the slow path for types without a precomputed schema.
func (r *SchemaRepository) Generate(typeName string, defaultSample []byte) ([]byte, error) {
	log.Warn().Str("type", typeName).Msg("no precomputed settings schema, generating one on demand")

	generator := infer.New()
	if err := generator.AddSample(string(defaultSample)); err != nil {
		return nil, fmt.Errorf("failed to sample %s defaults: %w", typeName, err)
	}

	schema, err := generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for %s: %w", typeName, err)
	}

	return schema, nil
}

// Validate validates a raw JSON value against the given schema text.
func (r *SchemaRepository) Validate(schemaText []byte, raw []byte) error {
	key := string(schemaText)

	schema, found := r.compiled.Get(key)
	if !found {
		var err error

		schema, err = compileSchema(schemaText)
		if err != nil {
			return fmt.Errorf("failed to compile settings schema: %w", err)
		}

		r.compiled.Add(key, schema)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to parse settings value: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("settings value rejected at '%s': %w", instancePath(validationErr), err)
		}

		return fmt.Errorf("settings value rejected by schema: %w", err)
	}

	return nil
}

// compileSchema compiles schema text, defaulting to JSON Schema draft 7.
func compileSchema(schemaText []byte) (*jsonschema.Schema, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft7)

	const schemaURL = "schema.json"
	if err := compiler.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return schema, nil
}

// instancePath renders the failing instance location as a json path, e.g. "$.port".
func instancePath(err *jsonschema.ValidationError) string {
	var parts []string

	for _, part := range err.InstanceLocation {
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return "$"
	}

	return "$." + strings.Join(parts, ".")
}
