package translatable

import "github.com/goliatone/go-translatable/pkg/model"

// NamingPolicy computes the display name of a field expanded for locale. It
// receives a copy of the logical field, so it cannot alter the original.
type NamingPolicy func(field model.Field, locale string) string

// DefaultNaming renders "Title (en)" for a field named "title".
func DefaultNaming(field model.Field, locale string) string {
	return model.UpperFirst(field.Name) + " (" + locale + ")"
}
