package model

import internalmodel "github.com/goliatone/go-translatable/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString   = internalmodel.FieldTypeString
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeRichText = internalmodel.FieldTypeRichText
	FieldTypeInteger  = internalmodel.FieldTypeInteger
	FieldTypeNumber   = internalmodel.FieldTypeNumber
	FieldTypeBoolean  = internalmodel.FieldTypeBoolean
)

type Field = internalmodel.Field
type Attachments = internalmodel.Attachments
type Input = internalmodel.Input
type InputMap = internalmodel.InputMap
type ResolveFunc = internalmodel.ResolveFunc
type FillFunc = internalmodel.FillFunc

// Label converts an attribute name into a human-friendly label.
func Label(attribute string) string {
	return internalmodel.DefaultLabeler(attribute)
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	return internalmodel.UpperFirst(s)
}
