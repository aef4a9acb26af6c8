package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-translatable/internal/model"
)

const (
	ExtensionTranslatable = "x-translatable"
	ExtensionSortable     = "x-sortable"
	ExtensionSortKey      = "x-sort-key"
	ExtensionAttachments  = "x-attachments"
	extensionOrder        = "x-order"
)

// ErrComponentNotFound is returned when the requested component schema does
// not exist.
var ErrComponentNotFound = errors.New("openapi fields: component schema not found")

// Options mirrors the public FieldsOptions.
type Options struct {
	IncludeAll bool
}

type property struct {
	name   string
	order  int
	schema *openapi3.Schema
}

// Fields loads raw with kin-openapi and converts the properties of the named
// component schema into field descriptors.
func Fields(ctx context.Context, raw []byte, component string, opts Options) ([]*model.Field, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi fields: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi fields: load document: %w", err)
	}

	if spec.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}
	schema := ref.Value

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	properties := make([]property, 0, len(schema.Properties))
	for name, propRef := range schema.Properties {
		if propRef == nil || propRef.Value == nil {
			continue
		}
		if !opts.IncludeAll && !extensionBool(propRef.Value.Extensions, ExtensionTranslatable) {
			continue
		}
		properties = append(properties, property{
			name:   name,
			order:  extensionInt(propRef.Value.Extensions, extensionOrder, math.MaxInt),
			schema: propRef.Value,
		})
	}
	sort.SliceStable(properties, func(i, j int) bool {
		if properties[i].order != properties[j].order {
			return properties[i].order < properties[j].order
		}
		return properties[i].name < properties[j].name
	})

	fields := make([]*model.Field, 0, len(properties))
	for _, prop := range properties {
		_, isRequired := required[prop.name]
		fields = append(fields, buildField(prop.name, prop.schema, isRequired))
	}
	return fields, nil
}

func buildField(name string, schema *openapi3.Schema, required bool) *model.Field {
	field := &model.Field{
		Attribute:   name,
		Name:        schema.Title,
		Type:        fieldType(schema),
		Description: schema.Description,
		Sortable:    extensionBool(schema.Extensions, ExtensionSortable),
		SortKey:     extensionString(schema.Extensions, ExtensionSortKey),
	}
	if field.Name == "" {
		field.Name = model.DefaultLabeler(name)
	}

	if required {
		field.Rules = append(field.Rules, "required")
	}
	if schema.MinLength > 0 {
		field.Rules = append(field.Rules, "min:"+strconv.FormatUint(schema.MinLength, 10))
	}
	if schema.MaxLength != nil {
		field.Rules = append(field.Rules, "max:"+strconv.FormatUint(*schema.MaxLength, 10))
	}

	if attachments, ok := schema.Extensions[ExtensionAttachments].(map[string]any); ok {
		field.Attachments = &model.Attachments{
			Disk: anyToString(attachments["disk"]),
			Dir:  anyToString(attachments["dir"]),
		}
	}
	return field
}

func fieldType(schema *openapi3.Schema) model.FieldType {
	switch {
	case schema.Type.Is(openapi3.TypeInteger):
		return model.FieldTypeInteger
	case schema.Type.Is(openapi3.TypeNumber):
		return model.FieldTypeNumber
	case schema.Type.Is(openapi3.TypeBoolean):
		return model.FieldTypeBoolean
	}
	switch schema.Format {
	case "html", "richtext":
		return model.FieldTypeRichText
	case "textarea":
		return model.FieldTypeText
	default:
		return model.FieldTypeString
	}
}

func extensionBool(ext map[string]any, key string) bool {
	switch value := ext[key].(type) {
	case bool:
		return value
	case string:
		parsed, err := strconv.ParseBool(value)
		return err == nil && parsed
	default:
		return false
	}
}

func extensionInt(ext map[string]any, key string, fallback int) int {
	switch value := ext[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func extensionString(ext map[string]any, key string) string {
	return anyToString(ext[key])
}

func anyToString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}
