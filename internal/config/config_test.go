package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-translatable/pkg/translatable"
	"github.com/goliatone/go-translatable/pkg/visibility"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TRANSLATABLE_LOCALES", "en,pt_br,en")
	t.Setenv("TRANSLATABLE_SORT_LOCALE", "EN")
	t.Setenv("TRANSLATABLE_CONTEXT", "index")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "pt-BR"}, cfg.Locales); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
	if cfg.SortLocale != "en" {
		t.Fatalf("sort locale mismatch: %q", cfg.SortLocale)
	}
	if cfg.RenderingContext() != visibility.ContextIndex {
		t.Fatalf("expected index context")
	}

	reg := translatable.NewRegistry()
	cfg.Apply(reg)
	snapshot := reg.Snapshot()
	if diff := cmp.Diff([]string{"en", "pt-BR"}, snapshot.Locales); diff != "" {
		t.Fatalf("registry locales mismatch (-want +got):\n%s", diff)
	}
	if snapshot.SortLocale != "en" {
		t.Fatalf("registry sort locale mismatch: %q", snapshot.SortLocale)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TRANSLATABLE_LOCALES", "TRANSLATABLE_SORT_LOCALE", "TRANSLATABLE_CONTEXT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Locales) != 0 {
		t.Fatalf("expected no locales, got %v", cfg.Locales)
	}
	if cfg.RenderingContext() != visibility.ContextDetail {
		t.Fatalf("expected detail context")
	}
}

func TestLoad_InvalidLocale(t *testing.T) {
	t.Setenv("TRANSLATABLE_LOCALES", "en,!!")

	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid locale error")
	}
}
