package translatable

import (
	"github.com/goliatone/go-translatable/pkg/model"
	"github.com/goliatone/go-translatable/pkg/visibility"
)

// Option customises a Set at construction.
type Option func(*settings)

type settings struct {
	registry      *Registry
	locales       []string
	naming        NamingPolicy
	sortLocale    string
	sortLocaleSet bool
	rules         ruleTable
	detector      visibility.Detector
	panel         string
	sanitizer     Sanitizer
}

// WithRegistry resolves defaults from registry instead of DefaultRegistry.
func WithRegistry(registry *Registry) Option {
	return func(s *settings) {
		s.registry = registry
	}
}

// WithLocales sets explicit locales. An empty list is ignored, so earlier
// options or the registry defaults still apply.
func WithLocales(locales ...string) Option {
	return func(s *settings) {
		if unique := uniqueLocales(locales); len(unique) > 0 {
			s.locales = unique
		}
	}
}

// WithNamingPolicy overrides the registry naming policy.
func WithNamingPolicy(fn NamingPolicy) Option {
	return func(s *settings) {
		s.naming = fn
	}
}

// WithSortLocale overrides the registry sort locale. An empty locale
// disables list-view sorting of translatable fields.
func WithSortLocale(locale string) Option {
	return func(s *settings) {
		s.sortLocale = locale
		s.sortLocaleSet = true
	}
}

// WithRules seeds the general rule tier.
func WithRules(rules RuleMap) Option {
	return func(s *settings) {
		s.rules.replace(TierGeneral, rules)
	}
}

// WithCreationRules seeds the creation-only rule tier.
func WithCreationRules(rules RuleMap) Option {
	return func(s *settings) {
		s.rules.replace(TierCreation, rules)
	}
}

// WithUpdateRules seeds the update-only rule tier.
func WithUpdateRules(rules RuleMap) Option {
	return func(s *settings) {
		s.rules.replace(TierUpdate, rules)
	}
}

// WithDetector sets the collaborator reporting whether the current request
// renders a list view. Without one every expansion uses the detail context.
func WithDetector(detector visibility.Detector) Option {
	return func(s *settings) {
		s.detector = detector
	}
}

// WithPanel places every concrete field in the named panel.
func WithPanel(name string) Option {
	return func(s *settings) {
		s.panel = name
	}
}

// WithSanitizer cleans rich-text submissions before they are stored.
func WithSanitizer(sanitizer Sanitizer) Option {
	return func(s *settings) {
		s.sanitizer = sanitizer
	}
}

// Set expands a list of logical fields into one concrete field per locale.
// Construction runs the first expansion; every setter reconfigures the set,
// re-runs the expansion from scratch and returns the same Set for chaining.
//
// A Set is request scoped and not safe for concurrent mutation.
type Set struct {
	originals     []*model.Field
	locales       []string
	naming        NamingPolicy
	defaultNaming NamingPolicy
	sortLocale    string
	rules         ruleTable
	detector      visibility.Detector
	panel         string
	sanitizer     Sanitizer

	fields   []*model.Field
	byLocale map[string][]*model.Field
}

// New builds a Set for fields. It fails with a *ConfigurationError wrapping
// ErrDefaultLocalesNotSet when neither WithLocales nor the registry supply a
// locale.
func New(fields []*model.Field, options ...Option) (*Set, error) {
	cfg := settings{
		registry: defaultRegistry,
		rules:    make(ruleTable),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = defaultRegistry
	}

	defaults := cfg.registry.Snapshot()
	locales := cfg.locales
	if len(locales) == 0 {
		locales = defaults.Locales
	}
	if len(locales) == 0 {
		return nil, defaultLocalesNotSet()
	}

	sortLocale := defaults.SortLocale
	if cfg.sortLocaleSet {
		sortLocale = cfg.sortLocale
	}
	naming := cfg.naming
	if naming == nil {
		naming = defaults.Naming
	}

	s := &Set{
		originals:     append([]*model.Field(nil), fields...),
		locales:       locales,
		naming:        naming,
		defaultNaming: defaults.Naming,
		sortLocale:    sortLocale,
		rules:         cfg.rules,
		detector:      cfg.detector,
		panel:         cfg.panel,
		sanitizer:     cfg.sanitizer,
	}
	s.expand()
	return s, nil
}

// MustNew panics when New fails. Useful for init-time wiring.
func MustNew(fields []*model.Field, options ...Option) *Set {
	s, err := New(fields, options...)
	if err != nil {
		panic(err)
	}
	return s
}

// Make is New with default options.
func Make(fields ...*model.Field) (*Set, error) {
	return New(fields)
}

// MustMake panics when Make fails.
func MustMake(fields ...*model.Field) *Set {
	return MustNew(fields)
}

// SetLocales replaces the locale list. Duplicates collapse to their first
// occurrence.
func (s *Set) SetLocales(locales ...string) *Set {
	s.locales = uniqueLocales(locales)
	return s.expand()
}

// SetNamingPolicy replaces the naming policy. Nil restores the registry
// policy captured at construction.
func (s *Set) SetNamingPolicy(fn NamingPolicy) *Set {
	if fn == nil {
		fn = s.defaultNaming
	}
	s.naming = fn
	return s.expand()
}

// SetSortLocale selects the locale list views sort by. An empty locale makes
// sortable fields unsortable on list views.
func (s *Set) SetSortLocale(locale string) *Set {
	s.sortLocale = locale
	return s.expand()
}

// SetRules replaces the general rule tier.
func (s *Set) SetRules(rules RuleMap) *Set {
	s.rules.replace(TierGeneral, rules)
	return s.expand()
}

// SetCreationRules replaces the creation-only rule tier.
func (s *Set) SetCreationRules(rules RuleMap) *Set {
	s.rules.replace(TierCreation, rules)
	return s.expand()
}

// SetUpdateRules replaces the update-only rule tier.
func (s *Set) SetUpdateRules(rules RuleMap) *Set {
	s.rules.replace(TierUpdate, rules)
	return s.expand()
}

// RuleFor patches the general rule of one (attribute, locale) cell.
func (s *Set) RuleFor(attribute, locale string, rule RuleSpec) *Set {
	s.rules.patch(TierGeneral, attribute, locale, rule)
	return s.expand()
}

// CreationRuleFor patches the creation-only rule of one cell.
func (s *Set) CreationRuleFor(attribute, locale string, rule RuleSpec) *Set {
	s.rules.patch(TierCreation, attribute, locale, rule)
	return s.expand()
}

// UpdateRuleFor patches the update-only rule of one cell.
func (s *Set) UpdateRuleFor(attribute, locale string, rule RuleSpec) *Set {
	s.rules.patch(TierUpdate, attribute, locale, rule)
	return s.expand()
}

// SetPanel places every concrete field in the named panel.
func (s *Set) SetPanel(name string) *Set {
	s.panel = name
	return s.expand()
}

// SetDetector swaps the rendering context collaborator.
func (s *Set) SetDetector(detector visibility.Detector) *Set {
	s.detector = detector
	return s.expand()
}

// Refresh re-runs the expansion, picking up a changed rendering context.
func (s *Set) Refresh() *Set {
	return s.expand()
}

// Fields returns the concrete fields of the latest expansion.
func (s *Set) Fields() []*model.Field {
	return append([]*model.Field(nil), s.fields...)
}

// FieldsFor returns the concrete fields bound to locale, excluding upload
// siblings. It is empty for list views.
func (s *Set) FieldsFor(locale string) []*model.Field {
	return append([]*model.Field(nil), s.byLocale[locale]...)
}

// Originals returns the logical fields the set was built from.
func (s *Set) Originals() []*model.Field {
	return append([]*model.Field(nil), s.originals...)
}

// Locales returns the active locales in order.
func (s *Set) Locales() []string {
	return append([]string(nil), s.locales...)
}

// SortLocale returns the list-view sort locale, empty when sorting is off.
func (s *Set) SortLocale() string {
	return s.sortLocale
}

// Config returns the configuration the next expansion runs with.
func (s *Set) Config() Config {
	rules := s.rules.clone()
	return Config{
		Locales:    s.Locales(),
		Naming:     s.naming,
		SortLocale: s.sortLocale,
		Panel:      s.panel,
		Sanitizer:  s.sanitizer,
		Rules:      rules,
	}
}

// Resolve reads every visible concrete field from record, keyed by field
// attribute.
func (s *Set) Resolve(record any) map[string]any {
	out := make(map[string]any, len(s.fields))
	for _, field := range s.fields {
		if field.Hidden.HiddenEverywhere() || field.Resolver == nil {
			continue
		}
		out[field.Attribute] = field.Resolve(record)
	}
	return out
}

// Fill writes every submitted concrete field onto record. Keys absent from
// the input are skipped so partial submissions leave other translations
// untouched.
func (s *Set) Fill(in model.Input, record any) error {
	for _, field := range s.fields {
		if field.Hidden.HiddenEverywhere() || field.Filler == nil {
			continue
		}
		if in == nil || in.Get(field.Attribute) == nil {
			continue
		}
		if err := field.Fill(in, record); err != nil {
			return err
		}
	}
	return nil
}

func (s *Set) expand() *Set {
	ctx := visibility.ContextDetail
	if s.detector != nil {
		ctx = s.detector.Context()
	}
	cfg := Config{
		Locales:    s.locales,
		Naming:     s.naming,
		SortLocale: s.sortLocale,
		Panel:      s.panel,
		Sanitizer:  s.sanitizer,
	}
	result := expand(s.originals, cfg, s.rules, ctx)
	s.fields = result.fields
	s.byLocale = result.byLocale
	return s
}
