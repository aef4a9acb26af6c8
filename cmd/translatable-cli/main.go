package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-translatable/internal/config"
	"github.com/goliatone/go-translatable/pkg/openapi"
	"github.com/goliatone/go-translatable/pkg/translatable"
	"github.com/goliatone/go-translatable/pkg/uischema"
	"github.com/goliatone/go-translatable/pkg/visibility"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	schemaPath := flag.String("schema", env.Schema, "UI schema file or directory (embedded sample if empty)")
	resource := flag.String("resource", "posts", "resource to expand from the UI schema")
	openapiPath := flag.String("openapi", "", "OpenAPI document to derive fields from instead of a UI schema")
	component := flag.String("component", "", "component schema name used with -openapi")
	includeAll := flag.Bool("include-all", false, "with -openapi, keep properties not marked x-translatable")
	locales := flag.String("locales", strings.Join(env.Locales, ","), "comma separated locales")
	sortLocale := flag.String("sort-locale", env.SortLocale, "locale list views sort by")
	renderContext := flag.String("context", env.Context, "rendering context: detail or index")
	interactive := flag.Bool("interactive", false, "prompt for locales and rendering context")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()
	registry := translatable.NewRegistry()
	env.Apply(registry)

	store, err := loadStore(*schemaPath)
	if err != nil {
		log.Fatalf("Failed to load UI schema: %v", err)
	}
	store.ApplyDefaults(registry)

	selected, err := translatable.CanonicalLocales(splitList(*locales))
	if err != nil {
		log.Fatalf("Invalid locales: %v", err)
	}
	rendering := visibility.ParseContext(*renderContext)

	if *interactive {
		available := localeChoices(store, *resource, *openapiPath == "", registry)
		selected, rendering, err = prompt(selected, available, rendering)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	opts := []translatable.Option{
		translatable.WithRegistry(registry),
		translatable.WithDetector(visibility.Fixed(rendering)),
	}
	if len(selected) > 0 {
		opts = append(opts, translatable.WithLocales(selected...))
	}
	if isFlagSet("sort-locale") || env.SortLocale != "" {
		opts = append(opts, translatable.WithSortLocale(*sortLocale))
	}

	var set *translatable.Set
	if *openapiPath != "" {
		set, err = fromOpenAPI(ctx, *openapiPath, *component, *includeAll, opts)
	} else {
		set, err = store.Build(*resource, opts...)
	}
	if err != nil {
		log.Fatalf("Failed to expand fields: %v", err)
	}

	payload, err := json.MarshalIndent(set.Fields(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode fields: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Fields written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func loadStore(path string) (*uischema.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return uischema.LoadFS(uischema.EmbeddedFS())
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	var fsys fs.FS
	if info.IsDir() {
		fsys = os.DirFS(path)
	} else {
		fsys = singleFileFS(path)
	}
	return uischema.LoadFS(fsys)
}

func singleFileFS(path string) fs.FS {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return filteredFS{FS: os.DirFS(dir), name: name}
}

// filteredFS exposes a single file of a directory to fs.WalkDir.
type filteredFS struct {
	fs.FS
	name string
}

func (f filteredFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(f.FS, name)
	if err != nil {
		return nil, err
	}
	if name != "." {
		return nil, nil
	}
	for _, entry := range entries {
		if entry.Name() == f.name {
			return []fs.DirEntry{entry}, nil
		}
	}
	return nil, nil
}

func fromOpenAPI(ctx context.Context, path, component string, includeAll bool, opts []translatable.Option) (*translatable.Set, error) {
	if component == "" {
		return nil, fmt.Errorf("-component is required with -openapi")
	}
	doc, err := openapi.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields, err := openapi.Fields(ctx, doc, component, openapi.FieldsOptions{IncludeAll: includeAll})
	if err != nil {
		return nil, err
	}
	return translatable.New(fields, opts...)
}

// localeChoices lists the locales offered by the interactive prompt. A UI
// schema resource that declares its own locales wins over the registry.
func localeChoices(store *uischema.Store, resource string, fromSchema bool, registry *translatable.Registry) []string {
	if fromSchema {
		if res, ok := store.Resource(resource); ok && len(res.Locales) > 0 {
			return append([]string(nil), res.Locales...)
		}
	}
	return registry.Snapshot().Locales
}

func prompt(selected, available []string, rendering visibility.Context) ([]string, visibility.Context, error) {
	options := available
	if len(options) == 0 {
		options = selected
	}
	if len(options) > 0 {
		defaults := selected
		if len(defaults) == 0 {
			defaults = options
		}
		var chosen []string
		err := survey.AskOne(&survey.MultiSelect{
			Message: "Locales to expand:",
			Options: options,
			Default: defaults,
		}, &chosen)
		if err != nil {
			return nil, rendering, err
		}
		selected = chosen
	}

	var view string
	err := survey.AskOne(&survey.Select{
		Message: "Rendering context:",
		Options: []string{visibility.ContextDetail.String(), visibility.ContextIndex.String()},
		Default: rendering.String(),
	}, &view)
	if err != nil {
		return nil, rendering, err
	}
	return selected, visibility.ParseContext(view), nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
