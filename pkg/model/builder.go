package model

// Text declares a single-line string field. The name defaults to the
// attribute, mirroring how host frameworks label fields declared by attribute
// only.
func Text(attribute string) *Field {
	return &Field{Attribute: attribute, Name: attribute, Type: FieldTypeString}
}

// Textarea declares a multi-line text field.
func Textarea(attribute string) *Field {
	return &Field{Attribute: attribute, Name: attribute, Type: FieldTypeText}
}

// RichText declares a rich-text (HTML) field.
func RichText(attribute string) *Field {
	return &Field{Attribute: attribute, Name: attribute, Type: FieldTypeRichText}
}

// Named sets the display name.
func Named(field *Field, name string) *Field {
	field.Name = name
	return field
}

// Sortable marks the field sortable on list views.
func Sortable(field *Field) *Field {
	field.Sortable = true
	return field
}

// WithSortKey sets an explicit list-view sort key. Expansion never overrides
// an explicit key.
func WithSortKey(field *Field, key string) *Field {
	field.SortKey = key
	return field
}

// WithFiles enables attachment uploads stored on disk under dir.
func WithFiles(field *Field, disk, dir string) *Field {
	field.Attachments = &Attachments{Disk: disk, Dir: dir}
	return field
}

// WithRules replaces the general validation rules.
func WithRules(field *Field, rules ...string) *Field {
	field.Rules = append([]string(nil), rules...)
	return field
}

// WithMeta merges metadata entries into the field.
func WithMeta(field *Field, meta map[string]string) *Field {
	if len(meta) == 0 {
		return field
	}
	if field.Metadata == nil {
		field.Metadata = make(map[string]string, len(meta))
	}
	for k, v := range meta {
		field.Metadata[k] = v
	}
	return field
}
