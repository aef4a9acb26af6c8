package model

import "github.com/goliatone/go-translatable/pkg/visibility"

// FieldType is the simplified enum for admin field kinds.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeRichText FieldType = "richtext"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
)

// Input is the request collaborator a fill callback reads submitted values
// from.
type Input interface {
	Get(key string) any
}

// InputMap adapts a plain map into an Input.
type InputMap map[string]any

// Get returns the value stored under key, or nil.
func (m InputMap) Get(key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

// ResolveFunc reads the display value of a field from a record.
type ResolveFunc func(record any) any

// FillFunc writes the submitted value for requestKey onto a record.
type FillFunc func(in Input, record any, requestKey string) error

// Attachments configures where files uploaded through a field are stored.
type Attachments struct {
	Disk string `json:"disk,omitempty"`
	Dir  string `json:"dir,omitempty"`
}

// Field is a host field descriptor. Attribute identifies the record
// attribute the field reads and writes; Name is the label shown to users.
// Struct fields are annotated so callers can serialise expanded sets.
type Field struct {
	Attribute     string            `json:"attribute"`
	Name          string            `json:"name"`
	Type          FieldType         `json:"type"`
	Panel         string            `json:"panel,omitempty"`
	Description   string            `json:"description,omitempty"`
	Sortable      bool              `json:"sortable"`
	SortKey       string            `json:"sortKey,omitempty"`
	Rules         []string          `json:"rules,omitempty"`
	CreationRules []string          `json:"creationRules,omitempty"`
	UpdateRules   []string          `json:"updateRules,omitempty"`
	Attachments   *Attachments      `json:"attachments,omitempty"`
	Hidden        visibility.Hidden `json:"hidden,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`

	Resolver ResolveFunc `json:"-"`
	Filler   FillFunc    `json:"-"`
}

// SupportsAttachments reports whether the field accepts file uploads.
func (f *Field) SupportsAttachments() bool {
	return f != nil && f.Attachments != nil
}

// StorageDisk returns the attachment disk, or an empty string.
func (f *Field) StorageDisk() string {
	if !f.SupportsAttachments() {
		return ""
	}
	return f.Attachments.Disk
}

// StorageDir returns the attachment directory, or an empty string.
func (f *Field) StorageDir() string {
	if !f.SupportsAttachments() {
		return ""
	}
	return f.Attachments.Dir
}

// Resolve reads the field value from record. Fields without a resolver read
// nothing.
func (f *Field) Resolve(record any) any {
	if f == nil || f.Resolver == nil {
		return nil
	}
	return f.Resolver(record)
}

// Fill writes the submitted value onto record using the field attribute as
// the request key. Fields without a filler are a no-op.
func (f *Field) Fill(in Input, record any) error {
	if f == nil || f.Filler == nil {
		return nil
	}
	return f.Filler(in, record, f.Attribute)
}
