package translatable

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const (
	keyPrefix    = "translations"
	uploadSuffix = "_upload"
	sortOperator = "->"
)

// SyntheticKey is the request/storage key of the concrete field bound to
// (attribute, locale). Attribute names may contain underscores, so the key is
// never parsed back; fill callbacks carry the pair explicitly.
func SyntheticKey(attribute, locale string) string {
	return keyPrefix + "_" + attribute + "_" + locale
}

// UploadKey is the key of the hidden attachment sibling of a rich-text field.
func UploadKey(attribute, locale string) string {
	return SyntheticKey(attribute, locale) + uploadSuffix
}

// SortKey is the JSON path list views sort by, e.g. "title->en".
func SortKey(attribute, locale string) string {
	return attribute + sortOperator + locale
}

// CanonicalLocale validates a BCP 47 tag and returns its canonical form
// ("pt_br" becomes "pt-BR").
func CanonicalLocale(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("translatable: locale is empty")
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("translatable: invalid locale %q: %w", raw, err)
	}
	return tag.String(), nil
}

// CanonicalLocales applies CanonicalLocale to every entry, preserving order.
func CanonicalLocales(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, locale := range raw {
		canonical, err := CanonicalLocale(locale)
		if err != nil {
			return nil, err
		}
		out = append(out, canonical)
	}
	return uniqueLocales(out), nil
}
