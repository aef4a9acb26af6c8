package translatable

import (
	"github.com/goliatone/go-translatable/pkg/model"
	"github.com/goliatone/go-translatable/pkg/visibility"
)

// Config is everything an expansion depends on besides the logical fields
// and the rendering context.
type Config struct {
	Locales    []string
	Naming     NamingPolicy
	SortLocale string
	Panel      string
	Sanitizer  Sanitizer
	Rules      map[Tier]RuleMap
}

// Expand turns logical fields into the concrete fields for ctx. It is a pure
// function: the same inputs always yield equal output and no input field is
// mutated. Nil fields are skipped.
//
// In the index context the logical fields come back one-to-one; sortable
// fields are cloned and either redirected to the sort locale or made
// unsortable. In the detail context every (locale, field) pair yields a clone
// bound to that translation slot, locale-outer and field-inner, followed by a
// hidden upload sibling for fields that accept attachments.
func Expand(fields []*model.Field, cfg Config, ctx visibility.Context) []*model.Field {
	rules := make(ruleTable, len(cfg.Rules))
	for tier, m := range cfg.Rules {
		rules[tier] = m
	}
	return expand(fields, cfg, rules, ctx).fields
}

type expansion struct {
	fields   []*model.Field
	byLocale map[string][]*model.Field
}

func expand(fields []*model.Field, cfg Config, rules ruleTable, ctx visibility.Context) expansion {
	if ctx == visibility.ContextIndex {
		return expansion{fields: expandIndex(fields, cfg.SortLocale)}
	}
	return expandDetail(fields, cfg, rules)
}

func expandIndex(fields []*model.Field, sortLocale string) []*model.Field {
	out := make([]*model.Field, 0, len(fields))
	for _, field := range fields {
		if field == nil {
			continue
		}
		if !field.Sortable {
			out = append(out, field)
			continue
		}
		clone := field.Clone()
		switch {
		case sortLocale == "":
			clone.Sortable = false
		case clone.SortKey == "":
			clone.SortKey = SortKey(field.Attribute, sortLocale)
		}
		out = append(out, clone)
	}
	return out
}

func expandDetail(fields []*model.Field, cfg Config, rules ruleTable) expansion {
	naming := cfg.Naming
	if naming == nil {
		naming = DefaultNaming
	}
	rename := len(cfg.Locales) > 1

	result := expansion{
		fields:   make([]*model.Field, 0, len(cfg.Locales)*len(fields)),
		byLocale: make(map[string][]*model.Field, len(cfg.Locales)),
	}
	for _, locale := range cfg.Locales {
		for _, field := range fields {
			if field == nil {
				continue
			}
			translated := translatedField(field, locale, cfg, rules, naming, rename)
			result.fields = append(result.fields, translated)
			result.byLocale[locale] = append(result.byLocale[locale], translated)

			if field.SupportsAttachments() {
				result.fields = append(result.fields, uploadField(field, locale, cfg.Panel))
			}
		}
	}
	return result
}

func translatedField(field *model.Field, locale string, cfg Config, rules ruleTable, naming NamingPolicy, rename bool) *model.Field {
	s := slot{
		attribute: field.Attribute,
		locale:    locale,
		richText:  field.Type == model.FieldTypeRichText,
		sanitizer: cfg.Sanitizer,
	}

	clone := field.Clone()
	clone.Attribute = SyntheticKey(field.Attribute, locale)
	if rename {
		clone.Name = naming(*field, locale)
	}
	if cfg.Panel != "" {
		clone.Panel = cfg.Panel
	}
	clone.Resolver = s.resolve
	clone.Filler = s.fill
	rules.apply(clone, field.Attribute, locale)
	return clone
}

func uploadField(field *model.Field, locale, panel string) *model.Field {
	key := UploadKey(field.Attribute, locale)
	return &model.Field{
		Attribute: key,
		Name:      key,
		Type:      model.FieldTypeRichText,
		Panel:     panel,
		Attachments: &model.Attachments{
			Disk: field.StorageDisk(),
			Dir:  field.StorageDir(),
		},
		Hidden: visibility.Hidden(0).Hide(visibility.AllViews),
	}
}
