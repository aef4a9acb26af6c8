package uischema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-translatable/pkg/model"
	"github.com/goliatone/go-translatable/pkg/translatable"
)

// Store keeps the resources parsed from UI schema documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	defaults       Defaults
	defaultsSource string
	resources      map[string]Resource
}

// Defaults mirrors the registry defaults a document may declare.
type Defaults struct {
	Locales    []string `json:"locales" yaml:"locales"`
	SortLocale *string  `json:"sortLocale,omitempty" yaml:"sortLocale,omitempty"`
}

func (d Defaults) empty() bool {
	return len(d.Locales) == 0 && d.SortLocale == nil
}

// Resource describes one translatable field set.
type Resource struct {
	Name          string
	Source        string
	Locales       []string
	SortLocale    *string
	Panel         string
	Fields        []FieldConfig
	Rules         translatable.RuleMap
	CreationRules translatable.RuleMap
	UpdateRules   translatable.RuleMap
}

// FieldConfig declares one logical field.
type FieldConfig struct {
	Attribute     string             `json:"attribute" yaml:"attribute"`
	Name          string             `json:"name,omitempty" yaml:"name,omitempty"`
	Type          model.FieldType    `json:"type,omitempty" yaml:"type,omitempty"`
	Description   string             `json:"description,omitempty" yaml:"description,omitempty"`
	Sortable      bool               `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	SortKey       string             `json:"sortKey,omitempty" yaml:"sortKey,omitempty"`
	Rules         *RuleValue         `json:"rules,omitempty" yaml:"rules,omitempty"`
	CreationRules *RuleValue         `json:"creationRules,omitempty" yaml:"creationRules,omitempty"`
	UpdateRules   *RuleValue         `json:"updateRules,omitempty" yaml:"updateRules,omitempty"`
	Attachments   *model.Attachments `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	Metadata      map[string]string  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Field builds the logical field descriptor.
func (c FieldConfig) Field() *model.Field {
	field := &model.Field{
		Attribute:     c.Attribute,
		Name:          c.Name,
		Type:          c.Type,
		Description:   c.Description,
		Sortable:      c.Sortable,
		SortKey:       c.SortKey,
		Rules:         c.Rules.tokens(),
		CreationRules: c.CreationRules.tokens(),
		UpdateRules:   c.UpdateRules.tokens(),
	}
	if field.Name == "" {
		field.Name = c.Attribute
	}
	if field.Type == "" {
		field.Type = model.FieldTypeString
	}
	if c.Attachments != nil {
		attachments := *c.Attachments
		field.Attachments = &attachments
	}
	return model.WithMeta(field, c.Metadata)
}

// RuleValue decodes a rule written either as a pipe-delimited string or as
// a list of tokens.
type RuleValue struct {
	Spec translatable.RuleSpec
}

func (v *RuleValue) tokens() []string {
	if v == nil {
		return nil
	}
	return v.Spec.Tokens()
}

// UnmarshalJSON accepts "required|min:3" or ["required", "min:3"].
func (v *RuleValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		v.Spec = translatable.Pipe(raw)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("uischema: rule must be a string or a list of strings: %w", err)
	}
	v.Spec = translatable.List(list...)
	return nil
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON.
func (v *RuleValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v.Spec = translatable.Pipe(node.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		v.Spec = translatable.List(list...)
		return nil
	default:
		return fmt.Errorf("uischema: rule must be a string or a list of strings (line %d)", node.Line)
	}
}
