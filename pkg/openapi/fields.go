package openapi

import (
	"context"

	internalopenapi "github.com/goliatone/go-translatable/internal/openapi"
	"github.com/goliatone/go-translatable/pkg/model"
)

// Extension keys read from schema properties.
const (
	ExtensionTranslatable = internalopenapi.ExtensionTranslatable
	ExtensionSortable     = internalopenapi.ExtensionSortable
	ExtensionSortKey      = internalopenapi.ExtensionSortKey
	ExtensionAttachments  = internalopenapi.ExtensionAttachments
)

// FieldsOptions tunes field derivation.
type FieldsOptions struct {
	// IncludeAll keeps properties that are not marked x-translatable.
	IncludeAll bool
}

// Fields derives logical fields from the properties of the named component
// schema (#/components/schemas/<component>). Properties come back in
// x-order, then lexical order.
func Fields(ctx context.Context, doc Document, component string, opts FieldsOptions) ([]*model.Field, error) {
	return internalopenapi.Fields(ctx, doc.Raw(), component, internalopenapi.Options{
		IncludeAll: opts.IncludeAll,
	})
}
