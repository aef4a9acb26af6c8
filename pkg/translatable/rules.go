package translatable

import (
	"strings"

	"github.com/goliatone/go-translatable/pkg/model"
)

// Tier selects one of the independent validation rule sets of a field.
type Tier int

const (
	TierGeneral Tier = iota
	TierCreation
	TierUpdate
)

var tiers = [...]Tier{TierGeneral, TierCreation, TierUpdate}

func (t Tier) String() string {
	switch t {
	case TierCreation:
		return "creation"
	case TierUpdate:
		return "update"
	default:
		return "general"
	}
}

// RuleSpec is a validation rule override for one (attribute, locale) cell.
// Build it from a pipe-delimited string with Pipe or from explicit tokens
// with List.
type RuleSpec struct {
	tokens []string
}

// Pipe splits "required|min:3" into its rule tokens. Blank tokens are
// dropped.
func Pipe(rule string) RuleSpec {
	parts := strings.Split(rule, "|")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return RuleSpec{tokens: tokens}
}

// List keeps the supplied tokens verbatim.
func List(rules ...string) RuleSpec {
	return RuleSpec{tokens: append([]string{}, rules...)}
}

// Tokens returns a copy of the rule tokens.
func (r RuleSpec) Tokens() []string {
	return append([]string{}, r.tokens...)
}

// RuleMap addresses overrides by attribute, then locale.
type RuleMap map[string]map[string]RuleSpec

// Lookup returns the override stored for (attribute, locale).
func (m RuleMap) Lookup(attribute, locale string) (RuleSpec, bool) {
	spec, ok := m[attribute][locale]
	return spec, ok
}

func (m RuleMap) clone() RuleMap {
	if m == nil {
		return nil
	}
	out := make(RuleMap, len(m))
	for attribute, locales := range m {
		inner := make(map[string]RuleSpec, len(locales))
		for locale, spec := range locales {
			inner[locale] = spec
		}
		out[attribute] = inner
	}
	return out
}

// ruleTable maps each tier to its overrides.
type ruleTable map[Tier]RuleMap

func (t ruleTable) replace(tier Tier, rules RuleMap) {
	if len(rules) == 0 {
		delete(t, tier)
		return
	}
	t[tier] = rules.clone()
}

func (t ruleTable) patch(tier Tier, attribute, locale string, spec RuleSpec) {
	rules := t[tier]
	if rules == nil {
		rules = make(RuleMap)
		t[tier] = rules
	}
	if rules[attribute] == nil {
		rules[attribute] = make(map[string]RuleSpec)
	}
	rules[attribute][locale] = spec
}

func (t ruleTable) clone() ruleTable {
	out := make(ruleTable, len(t))
	for tier, rules := range t {
		out[tier] = rules.clone()
	}
	return out
}

// apply copies the overrides for (attribute, locale) onto field. Tiers
// without an override keep the rules cloned from the logical field.
func (t ruleTable) apply(field *model.Field, attribute, locale string) {
	for _, tier := range tiers {
		spec, ok := t[tier].Lookup(attribute, locale)
		if !ok {
			continue
		}
		switch tier {
		case TierGeneral:
			field.Rules = spec.Tokens()
		case TierCreation:
			field.CreationRules = spec.Tokens()
		case TierUpdate:
			field.UpdateRules = spec.Tokens()
		}
	}
}
