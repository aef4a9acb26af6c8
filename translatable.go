package translatable

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-translatable/pkg/model"
	"github.com/goliatone/go-translatable/pkg/openapi"
	"github.com/goliatone/go-translatable/pkg/richtext"
	core "github.com/goliatone/go-translatable/pkg/translatable"
	"github.com/goliatone/go-translatable/pkg/uischema"
)

// Set aliases the translatable field set so callers can stay on the
// top-level import.
type Set = core.Set

// Option configures a Set.
type Option = core.Option

// Field is a logical or expanded field descriptor.
type Field = model.Field

// RuleMap holds per-attribute, per-locale rule overrides.
type RuleMap = core.RuleMap

// Translations is the map backed record accessor.
type Translations = core.Translations

// New wraps fields into a Set. See core.New.
func New(fields []*Field, options ...Option) (*Set, error) {
	return core.New(fields, options...)
}

// Make wraps fields using the registered defaults.
func Make(fields ...*Field) (*Set, error) {
	return core.Make(fields...)
}

// FromSchema loads the UI schema documents in fsys and builds the named
// resource. Document defaults layer over DefaultRegistry on a private copy,
// so the process-wide registry is never modified. A WithRegistry option
// replaces that copy.
func FromSchema(fsys fs.FS, resource string, options ...Option) (*Set, error) {
	store, err := uischema.LoadFS(fsys)
	if err != nil {
		return nil, err
	}

	defaults := core.DefaultRegistry().Snapshot()
	registry := core.NewRegistry()
	registry.SetDefaultLocales(defaults.Locales...)
	registry.SetDefaultSortLocale(defaults.SortLocale)
	registry.SetDefaultNamingPolicy(defaults.Naming)
	store.ApplyDefaults(registry)

	opts := append([]Option{core.WithRegistry(registry)}, options...)
	return store.Build(resource, opts...)
}

// FromOpenAPI builds a Set from the x-translatable properties of an
// OpenAPI component schema.
func FromOpenAPI(ctx context.Context, doc openapi.Document, component string, options ...Option) (*Set, error) {
	fields, err := openapi.Fields(ctx, doc, component, openapi.FieldsOptions{})
	if err != nil {
		return nil, err
	}
	return core.New(fields, options...)
}

// WithRichTextSanitizer installs the bundled HTML policy for rich text
// fields.
func WithRichTextSanitizer() Option {
	return core.WithSanitizer(richtext.New())
}
