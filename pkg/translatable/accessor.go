package translatable

import (
	"fmt"

	"github.com/goliatone/go-translatable/pkg/model"
)

// TranslationAccessor is the record capability expanded fields read and
// write through. Storage of the translations belongs to the host model layer.
type TranslationAccessor interface {
	Translation(attribute, locale string) (any, bool)
	SetTranslation(attribute, locale string, value any)
}

// Sanitizer cleans submitted rich-text markup before it is stored.
// *bluemonday.Policy and *richtext.Sanitizer satisfy it.
type Sanitizer interface {
	Sanitize(raw string) string
}

// Translations is an in-memory TranslationAccessor keyed attribute, then
// locale. The outer map must be non-nil before SetTranslation is called.
type Translations map[string]map[string]any

// Translation returns the stored value for (attribute, locale).
func (t Translations) Translation(attribute, locale string) (any, bool) {
	value, ok := t[attribute][locale]
	return value, ok
}

// SetTranslation stores value for (attribute, locale).
func (t Translations) SetTranslation(attribute, locale string, value any) {
	if t[attribute] == nil {
		t[attribute] = make(map[string]any)
	}
	t[attribute][locale] = value
}

// slot binds one concrete field to its (attribute, locale) pair. Resolver
// and filler callbacks are method values on a copy of the slot, so later
// expansions cannot alter what an earlier field reads or writes.
type slot struct {
	attribute string
	locale    string
	richText  bool
	sanitizer Sanitizer
}

func (s slot) resolve(record any) any {
	accessor, ok := record.(TranslationAccessor)
	if !ok {
		return ""
	}
	value, ok := accessor.Translation(s.attribute, s.locale)
	if !ok || value == nil {
		return ""
	}
	return value
}

func (s slot) fill(in model.Input, record any, requestKey string) error {
	accessor, ok := record.(TranslationAccessor)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	var value any
	if in != nil {
		value = in.Get(requestKey)
	}
	if s.richText && s.sanitizer != nil {
		if raw, ok := value.(string); ok {
			value = s.sanitizer.Sanitize(raw)
		}
	}
	accessor.SetTranslation(s.attribute, s.locale, value)
	return nil
}
