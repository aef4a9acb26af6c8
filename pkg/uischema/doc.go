// Package uischema loads JSON/YAML documents that declare translatable field
// sets. A document may carry registry defaults (locales, sort locale) and any
// number of named resources, each listing its logical fields and per-locale
// rule overrides for the general, creation and update tiers. Rules are
// written either as "required|max:120" or as a list of tokens. Locale tags
// are validated and canonicalised, so "pt_br" and "pt-BR" address the same
// translation slot.
package uischema
