// Package openapi derives translatable logical fields from OpenAPI component
// schemas. Properties opt in with `x-translatable: true`; `x-sortable`,
// `x-sort-key` and `x-attachments` ({disk, dir}) configure list sorting and
// rich-text uploads, `format: html` marks rich text, and `required`,
// `minLength` and `maxLength` become rule tokens. The kin-openapi
// implementation lives under internal/openapi.
package openapi
