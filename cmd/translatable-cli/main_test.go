package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-translatable/pkg/translatable"
	"github.com/goliatone/go-translatable/pkg/uischema"
)

func TestLocaleChoices(t *testing.T) {
	store, err := uischema.LoadFS(uischema.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	registry := translatable.NewRegistry()
	store.ApplyDefaults(registry)

	cases := []struct {
		name       string
		resource   string
		fromSchema bool
		want       []string
	}{
		{name: "resource locales", resource: "categories", fromSchema: true, want: []string{"en", "fr", "de"}},
		{name: "registry fallback", resource: "posts", fromSchema: true, want: []string{"en", "fr"}},
		{name: "unknown resource", resource: "missing", fromSchema: true, want: []string{"en", "fr"}},
		{name: "openapi source", resource: "categories", fromSchema: false, want: []string{"en", "fr"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := localeChoices(store, tc.resource, tc.fromSchema, registry)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("choices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" en, ,fr,")
	if diff := cmp.Diff([]string{"en", "fr"}, got); diff != "" {
		t.Fatalf("splitList mismatch (-want +got):\n%s", diff)
	}
}
