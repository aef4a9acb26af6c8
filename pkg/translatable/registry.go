package translatable

import "sync"

// Registry holds process-wide defaults: the locale list, the list-view sort
// locale and the naming policy. Hosts configure it during bootstrap; a Set
// takes a snapshot when it is constructed, so later registry changes never
// reach sets that already exist.
type Registry struct {
	mu         sync.RWMutex
	locales    []string
	sortLocale string
	naming     NamingPolicy
}

// Defaults is an immutable snapshot of a Registry.
type Defaults struct {
	Locales    []string
	SortLocale string
	Naming     NamingPolicy
}

// NewRegistry creates an empty registry. Sets built against it fail until
// SetDefaultLocales is called or explicit locales are supplied.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetDefaultLocales replaces the default locale list. An empty list is
// accepted; consuming it without explicit locales fails at construction.
func (r *Registry) SetDefaultLocales(locales ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locales = uniqueLocales(locales)
}

// SetDefaultSortLocale replaces the default list-view sort locale. An empty
// locale disables sorting of translatable fields.
func (r *Registry) SetDefaultSortLocale(locale string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sortLocale = locale
}

// SetDefaultNamingPolicy replaces the default naming policy. Passing nil
// restores DefaultNaming.
func (r *Registry) SetDefaultNamingPolicy(fn NamingPolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.naming = fn
}

// Snapshot returns the current defaults. The locale slice is a copy.
func (r *Registry) Snapshot() Defaults {
	r.mu.RLock()
	defer r.mu.RUnlock()

	naming := r.naming
	if naming == nil {
		naming = DefaultNaming
	}
	return Defaults{
		Locales:    append([]string(nil), r.locales...),
		SortLocale: r.sortLocale,
		Naming:     naming,
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by sets built without
// WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SetDefaultLocales configures the default registry.
func SetDefaultLocales(locales ...string) {
	defaultRegistry.SetDefaultLocales(locales...)
}

// SetDefaultSortLocale configures the default registry.
func SetDefaultSortLocale(locale string) {
	defaultRegistry.SetDefaultSortLocale(locale)
}

// SetDefaultNamingPolicy configures the default registry.
func SetDefaultNamingPolicy(fn NamingPolicy) {
	defaultRegistry.SetDefaultNamingPolicy(fn)
}

func uniqueLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}
	out := make([]string, 0, len(locales))
	seen := make(map[string]struct{}, len(locales))
	for _, locale := range locales {
		if locale == "" {
			continue
		}
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}
	return out
}
