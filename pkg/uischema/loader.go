package uischema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-translatable/pkg/model"
	"github.com/goliatone/go-translatable/pkg/translatable"
)

// ErrResourceNotFound is returned by Store.Build for unknown resources.
var ErrResourceNotFound = errors.New("uischema: resource not found")

var knownFieldTypes = map[model.FieldType]struct{}{
	model.FieldTypeString:   {},
	model.FieldTypeText:     {},
	model.FieldTypeRichText: {},
	model.FieldTypeInteger:  {},
	model.FieldTypeNumber:   {},
	model.FieldTypeBoolean:  {},
}

// LoadFS walks the provided filesystem and parses JSON/YAML UI schema files.
// When fsys is nil or no schema files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{resources: make(map[string]Resource)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if !doc.Defaults.empty() {
			if store.defaultsSource != "" {
				return fmt.Errorf("uischema: defaults declared in both %s and %s", store.defaultsSource, path)
			}
			defaults, err := normaliseDefaults(doc.Defaults, path)
			if err != nil {
				return err
			}
			store.defaults = defaults
			store.defaultsSource = path
		}

		for name, raw := range doc.Resources {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("uischema: file %s defines an empty resource name", path)
			}
			if existing, exists := store.resources[id]; exists {
				return fmt.Errorf("uischema: duplicate resource %q (files %s and %s)", id, existing.Source, path)
			}

			resource, err := normaliseResource(raw, id, path)
			if err != nil {
				return err
			}
			store.resources[id] = resource
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Resource returns the configuration for the supplied resource name.
func (s *Store) Resource(name string) (Resource, bool) {
	if s == nil {
		return Resource{}, false
	}
	resource, ok := s.resources[name]
	return resource, ok
}

// Resources lists resource names in lexical order.
func (s *Store) Resources() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.resources))
	for name := range s.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns the registry defaults declared by the documents.
func (s *Store) Defaults() Defaults {
	if s == nil {
		return Defaults{}
	}
	return s.defaults
}

// Empty reports whether the store holds any resources.
func (s *Store) Empty() bool {
	return s == nil || len(s.resources) == 0
}

// ApplyDefaults copies the declared defaults onto registry. Values the
// documents leave out are not touched.
func (s *Store) ApplyDefaults(registry *translatable.Registry) {
	if s == nil || registry == nil {
		return
	}
	if len(s.defaults.Locales) > 0 {
		registry.SetDefaultLocales(s.defaults.Locales...)
	}
	if s.defaults.SortLocale != nil {
		registry.SetDefaultSortLocale(*s.defaults.SortLocale)
	}
}

// Build constructs the translatable set of a resource. Caller options are
// applied after the resource configuration and therefore win.
func (s *Store) Build(name string, options ...translatable.Option) (*translatable.Set, error) {
	resource, ok := s.Resource(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrResourceNotFound, name)
	}
	opts := append(resource.Options(), options...)
	return translatable.New(resource.LogicalFields(), opts...)
}

// LogicalFields returns fresh field descriptors for the resource.
func (r Resource) LogicalFields() []*model.Field {
	fields := make([]*model.Field, 0, len(r.Fields))
	for _, cfg := range r.Fields {
		fields = append(fields, cfg.Field())
	}
	return fields
}

// Options translates the resource configuration into Set options.
func (r Resource) Options() []translatable.Option {
	var opts []translatable.Option
	if len(r.Locales) > 0 {
		opts = append(opts, translatable.WithLocales(r.Locales...))
	}
	if r.SortLocale != nil {
		opts = append(opts, translatable.WithSortLocale(*r.SortLocale))
	}
	if r.Panel != "" {
		opts = append(opts, translatable.WithPanel(r.Panel))
	}
	if len(r.Rules) > 0 {
		opts = append(opts, translatable.WithRules(r.Rules))
	}
	if len(r.CreationRules) > 0 {
		opts = append(opts, translatable.WithCreationRules(r.CreationRules))
	}
	if len(r.UpdateRules) > 0 {
		opts = append(opts, translatable.WithUpdateRules(r.UpdateRules))
	}
	return opts
}

type documentFile struct {
	Defaults  Defaults                `json:"defaults" yaml:"defaults"`
	Resources map[string]resourceFile `json:"resources" yaml:"resources"`
}

type resourceFile struct {
	Locales       []string                        `json:"locales" yaml:"locales"`
	SortLocale    *string                         `json:"sortLocale" yaml:"sortLocale"`
	Panel         string                          `json:"panel" yaml:"panel"`
	Fields        []FieldConfig                   `json:"fields" yaml:"fields"`
	Rules         map[string]map[string]RuleValue `json:"rules" yaml:"rules"`
	CreationRules map[string]map[string]RuleValue `json:"creationRules" yaml:"creationRules"`
	UpdateRules   map[string]map[string]RuleValue `json:"updateRules" yaml:"updateRules"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normaliseDefaults(raw Defaults, source string) (Defaults, error) {
	locales, err := translatable.CanonicalLocales(raw.Locales)
	if err != nil {
		return Defaults{}, fmt.Errorf("uischema: defaults in %s: %w", source, err)
	}
	sortLocale, err := normaliseSortLocale(raw.SortLocale)
	if err != nil {
		return Defaults{}, fmt.Errorf("uischema: defaults in %s: %w", source, err)
	}
	return Defaults{Locales: locales, SortLocale: sortLocale}, nil
}

func normaliseResource(raw resourceFile, name, source string) (Resource, error) {
	locales, err := translatable.CanonicalLocales(raw.Locales)
	if err != nil {
		return Resource{}, fmt.Errorf("uischema: resource %q in %s: %w", name, source, err)
	}
	sortLocale, err := normaliseSortLocale(raw.SortLocale)
	if err != nil {
		return Resource{}, fmt.Errorf("uischema: resource %q in %s: %w", name, source, err)
	}

	resource := Resource{
		Name:          name,
		Source:        source,
		Locales:       locales,
		SortLocale:    sortLocale,
		Panel:         strings.TrimSpace(raw.Panel),
		Fields:        make([]FieldConfig, 0, len(raw.Fields)),
		Rules:         ruleMap(raw.Rules),
		CreationRules: ruleMap(raw.CreationRules),
		UpdateRules:   ruleMap(raw.UpdateRules),
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for i, field := range raw.Fields {
		field.Attribute = strings.TrimSpace(field.Attribute)
		if field.Attribute == "" {
			return Resource{}, fmt.Errorf("uischema: resource %q in %s: field %d has no attribute", name, source, i)
		}
		if _, dup := seen[field.Attribute]; dup {
			return Resource{}, fmt.Errorf("uischema: resource %q in %s: duplicate attribute %q", name, source, field.Attribute)
		}
		seen[field.Attribute] = struct{}{}

		if field.Type != "" {
			if _, ok := knownFieldTypes[field.Type]; !ok {
				return Resource{}, fmt.Errorf("uischema: resource %q in %s: field %q has unknown type %q", name, source, field.Attribute, field.Type)
			}
		}
		resource.Fields = append(resource.Fields, field)
	}

	return resource, nil
}

func normaliseSortLocale(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	if strings.TrimSpace(*raw) == "" {
		empty := ""
		return &empty, nil
	}
	locale, err := translatable.CanonicalLocale(*raw)
	if err != nil {
		return nil, err
	}
	return &locale, nil
}

func ruleMap(raw map[string]map[string]RuleValue) translatable.RuleMap {
	if len(raw) == 0 {
		return nil
	}
	out := make(translatable.RuleMap, len(raw))
	for attribute, locales := range raw {
		inner := make(map[string]translatable.RuleSpec, len(locales))
		for locale, value := range locales {
			if canonical, err := translatable.CanonicalLocale(locale); err == nil {
				locale = canonical
			}
			inner[locale] = value.Spec
		}
		out[attribute] = inner
	}
	return out
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
