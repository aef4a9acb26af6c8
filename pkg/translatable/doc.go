// Package translatable edits one multi-locale record attribute through one
// admin field per locale.
//
// A Set takes logical field descriptors and a locale list and expands them
// into concrete fields. On detail, create and update views each (locale,
// field) pair becomes a clone keyed "translations_<attribute>_<locale>",
// named through a NamingPolicy ("Title (en)" by default) and bound to the
// (attribute, locale) translation slot of the record for reading and
// writing. Rich-text fields that accept attachments gain a hidden upload
// sibling per locale. On list views the logical fields pass through, with
// sortable ones redirected to "<attribute>-><sortLocale>" or made unsortable
// when no sort locale is configured.
//
// Process-wide defaults live in a Registry configured during bootstrap:
//
//	translatable.SetDefaultLocales("en", "fr")
//	translatable.SetDefaultSortLocale("en")
//
//	set, err := translatable.Make(model.Sortable(model.Text("title")))
//	if err != nil {
//		// no locales configured
//	}
//	set.RuleFor("title", "en", translatable.Pipe("required|max:120"))
package translatable
