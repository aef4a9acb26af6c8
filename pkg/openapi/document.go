package openapi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Document wraps a raw OpenAPI payload and the name it was read from. The
// public API never exposes kin-openapi types.
type Document struct {
	source string
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(source string, raw []byte) (Document, error) {
	if source == "" {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: source, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(source string, raw []byte) Document {
	doc, err := NewDocument(source, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// ReadFile loads a document from disk.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return NewDocument(path, data)
}

// ReadFS loads a document from an fs.FS.
func ReadFS(fsys fs.FS, name string) (Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return NewDocument(name, data)
}

// Source returns the name the document was read from.
func (d Document) Source() string {
	return d.source
}

// Raw returns a copy of the underlying payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}
