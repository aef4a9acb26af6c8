package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-translatable/pkg/model"
	"github.com/goliatone/go-translatable/pkg/openapi"
)

// FieldSnapshot is the JSON friendly projection of an expanded field used by
// golden files. Resolver and filler closures are left out.
type FieldSnapshot struct {
	Attribute     string   `json:"attribute"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Panel         string   `json:"panel,omitempty"`
	Sortable      bool     `json:"sortable,omitempty"`
	SortKey       string   `json:"sortKey,omitempty"`
	Rules         []string `json:"rules,omitempty"`
	CreationRules []string `json:"creationRules,omitempty"`
	UpdateRules   []string `json:"updateRules,omitempty"`
	Storage       string   `json:"storage,omitempty"`
	Hidden        bool     `json:"hidden,omitempty"`
}

// Snapshot projects fields into golden form.
func Snapshot(fields []*model.Field) []FieldSnapshot {
	out := make([]FieldSnapshot, 0, len(fields))
	for _, field := range fields {
		if field == nil {
			continue
		}
		snap := FieldSnapshot{
			Attribute:     field.Attribute,
			Name:          field.Name,
			Type:          string(field.Type),
			Panel:         field.Panel,
			Sortable:      field.Sortable,
			SortKey:       field.SortKey,
			Rules:         orNil(field.Rules),
			CreationRules: orNil(field.CreationRules),
			UpdateRules:   orNil(field.UpdateRules),
			Hidden:        field.Hidden.HiddenEverywhere(),
		}
		if field.SupportsAttachments() {
			snap.Storage = field.StorageDisk() + ":" + field.StorageDir()
		}
		out = append(out, snap)
	}
	return out
}

func orNil(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}

// LoadDocument reads an OpenAPI fixture. Failures stop the test.
func LoadDocument(t *testing.T, path string) openapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (openapi.Document, error) {
	if path == "" {
		return openapi.Document{}, errors.New("testsupport: document path is required")
	}
	doc, err := openapi.ReadFile(path)
	if err != nil {
		return openapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	return doc, nil
}

// MustLoadSnapshot loads a JSON golden file of field snapshots.
func MustLoadSnapshot(t *testing.T, path string) []FieldSnapshot {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out []FieldSnapshot
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
