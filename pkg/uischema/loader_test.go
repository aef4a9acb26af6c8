package uischema_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-translatable/pkg/model"
	"github.com/goliatone/go-translatable/pkg/translatable"
	"github.com/goliatone/go-translatable/pkg/uischema"
	"github.com/goliatone/go-translatable/pkg/visibility"
)

func attributes(fields []*model.Field) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.Attribute)
	}
	return out
}

func TestLoadFS_Embedded(t *testing.T) {
	store, err := uischema.LoadFS(uischema.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"categories", "posts"}, store.Resources()); diff != "" {
		t.Fatalf("resources mismatch (-want +got):\n%s", diff)
	}

	defaults := store.Defaults()
	if diff := cmp.Diff([]string{"en", "fr"}, defaults.Locales); diff != "" {
		t.Fatalf("default locales mismatch (-want +got):\n%s", diff)
	}
	if defaults.SortLocale == nil || *defaults.SortLocale != "en" {
		t.Fatalf("expected sort locale en, got %v", defaults.SortLocale)
	}

	posts, ok := store.Resource("posts")
	if !ok {
		t.Fatalf("posts resource missing")
	}
	if posts.Panel != "Content" {
		t.Fatalf("panel mismatch: %q", posts.Panel)
	}
	fields := posts.LogicalFields()
	if diff := cmp.Diff([]string{"title", "summary", "body"}, attributes(fields)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"required", "max:120"}, fields[0].Rules); diff != "" {
		t.Fatalf("title rules mismatch (-want +got):\n%s", diff)
	}
	if fields[2].Type != model.FieldTypeRichText || fields[2].StorageDisk() != "public" {
		t.Fatalf("body field mismatch: %+v", fields[2])
	}
}

func TestStore_BuildAppliesResourceConfiguration(t *testing.T) {
	store, err := uischema.LoadFS(uischema.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reg := translatable.NewRegistry()
	store.ApplyDefaults(reg)

	set, err := store.Build("posts", translatable.WithRegistry(reg))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{
		"translations_title_en",
		"translations_summary_en",
		"translations_body_en",
		"translations_body_en_upload",
		"translations_title_fr",
		"translations_summary_fr",
		"translations_body_fr",
		"translations_body_fr_upload",
	}
	fields := set.Fields()
	if diff := cmp.Diff(want, attributes(fields)); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"required", "max:120"}, fields[0].Rules); diff != "" {
		t.Fatalf("en title keeps logical rules (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"required", "max:140"}, fields[4].Rules); diff != "" {
		t.Fatalf("fr title override mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"required"}, fields[2].CreationRules); diff != "" {
		t.Fatalf("en body creation override mismatch (-want +got):\n%s", diff)
	}
	if fields[0].Panel != "Content" {
		t.Fatalf("panel not applied: %q", fields[0].Panel)
	}
}

func TestStore_BuildResourceSortLocaleOverridesDefaults(t *testing.T) {
	store, err := uischema.LoadFS(uischema.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reg := translatable.NewRegistry()
	store.ApplyDefaults(reg)

	set, err := store.Build("categories",
		translatable.WithRegistry(reg),
		translatable.WithDetector(visibility.Fixed(visibility.ContextIndex)),
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if set.SortLocale() != "" {
		t.Fatalf("expected resource to disable sort locale, got %q", set.SortLocale())
	}
	field := set.Fields()[0]
	if field.Sortable {
		t.Fatalf("expected unsortable field without sort locale")
	}
	if diff := cmp.Diff([]string{"en", "fr", "de"}, set.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_BuildEmptyCallerLocalesKeepResourceLocales(t *testing.T) {
	store, err := uischema.LoadFS(uischema.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reg := translatable.NewRegistry()
	store.ApplyDefaults(reg)

	var none []string
	set, err := store.Build("categories",
		translatable.WithRegistry(reg),
		translatable.WithLocales(none...),
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "fr", "de"}, set.Locales()); diff != "" {
		t.Fatalf("resource locales lost (-want +got):\n%s", diff)
	}
	if got := len(set.Fields()); got != 3 {
		t.Fatalf("expected one field per resource locale, got %d", got)
	}
}

func TestStore_BuildUnknownResource(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
	if _, err := store.Build("missing"); !errors.Is(err, uischema.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"articles.json": {Data: []byte(`{
			"resources": {
				"articles": {
					"locales": ["en", "pt_br"],
					"fields": [{"attribute": "headline", "name": "Headline", "rules": ["required", "string"]}],
					"updateRules": {"headline": {"pt_br": "sometimes|max:10"}}
				}
			}
		}`)},
	}
	store, err := uischema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	set, err := store.Build("articles", translatable.WithRegistry(translatable.NewRegistry()))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	fields := set.Fields()
	if diff := cmp.Diff([]string{"translations_headline_en", "translations_headline_pt-BR"}, attributes(fields)); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if fields[1].Name != "Headline (pt-BR)" {
		t.Fatalf("name mismatch: %q", fields[1].Name)
	}
	if diff := cmp.Diff([]string{"sometimes", "max:10"}, fields[1].UpdateRules); diff != "" {
		t.Fatalf("update rules mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "empty file",
			files: fstest.MapFS{"a.yaml": {Data: []byte("  ")}},
			want:  "is empty",
		},
		{
			name: "duplicate resource",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("resources:\n  posts:\n    fields: [{attribute: title}]\n")},
				"b.yaml": {Data: []byte("resources:\n  posts:\n    fields: [{attribute: title}]\n")},
			},
			want: "duplicate resource",
		},
		{
			name:  "duplicate attribute",
			files: fstest.MapFS{"a.yaml": {Data: []byte("resources:\n  posts:\n    fields: [{attribute: title}, {attribute: title}]\n")}},
			want:  "duplicate attribute",
		},
		{
			name:  "missing attribute",
			files: fstest.MapFS{"a.yaml": {Data: []byte("resources:\n  posts:\n    fields: [{name: Title}]\n")}},
			want:  "has no attribute",
		},
		{
			name:  "unknown type",
			files: fstest.MapFS{"a.yaml": {Data: []byte("resources:\n  posts:\n    fields: [{attribute: title, type: date}]\n")}},
			want:  "unknown type",
		},
		{
			name:  "invalid locale",
			files: fstest.MapFS{"a.yaml": {Data: []byte("defaults:\n  locales: [\"!!\"]\n")}},
			want:  "invalid locale",
		},
		{
			name: "defaults declared twice",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("defaults:\n  locales: [en]\n")},
				"b.yaml": {Data: []byte("defaults:\n  locales: [fr]\n")},
			},
			want: "defaults declared in both",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := uischema.LoadFS(tc.files)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestApplyDefaults_LeavesUndeclaredValues(t *testing.T) {
	store, err := uischema.LoadFS(fstest.MapFS{"a.yaml": {Data: []byte("defaults:\n  locales: [en]\n")}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reg := translatable.NewRegistry()
	reg.SetDefaultSortLocale("fr")
	store.ApplyDefaults(reg)

	snapshot := reg.Snapshot()
	if diff := cmp.Diff([]string{"en"}, snapshot.Locales); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
	if snapshot.SortLocale != "fr" {
		t.Fatalf("expected sort locale untouched, got %q", snapshot.SortLocale)
	}
}
