package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/goliatone/go-translatable/pkg/translatable"
	"github.com/goliatone/go-translatable/pkg/visibility"
)

// Config holds the CLI defaults read from the environment. Flags override
// every value.
type Config struct {
	Locales    []string `env:"TRANSLATABLE_LOCALES"     envSeparator:","`
	SortLocale string   `env:"TRANSLATABLE_SORT_LOCALE"`
	Context    string   `env:"TRANSLATABLE_CONTEXT"     envDefault:"detail"`
	Schema     string   `env:"TRANSLATABLE_SCHEMA"`
}

// Load parses the environment and canonicalises locale tags.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalise()
}

func (c Config) normalise() (Config, error) {
	c.Locales = nonBlank(c.Locales)
	if len(c.Locales) > 0 {
		locales, err := translatable.CanonicalLocales(c.Locales)
		if err != nil {
			return Config{}, err
		}
		c.Locales = locales
	}
	c.SortLocale = strings.TrimSpace(c.SortLocale)
	if c.SortLocale != "" {
		locale, err := translatable.CanonicalLocale(c.SortLocale)
		if err != nil {
			return Config{}, err
		}
		c.SortLocale = locale
	}
	return c, nil
}

// RenderingContext maps Context onto a visibility context.
func (c Config) RenderingContext() visibility.Context {
	return visibility.ParseContext(c.Context)
}

// Apply seeds registry with the configured defaults.
func (c Config) Apply(registry *translatable.Registry) {
	if len(c.Locales) > 0 {
		registry.SetDefaultLocales(c.Locales...)
	}
	if c.SortLocale != "" {
		registry.SetDefaultSortLocale(c.SortLocale)
	}
}

func nonBlank(values []string) []string {
	var out []string
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}
