// Package model defines the field descriptors the translatable expander
// consumes and produces. A Field names the record attribute it edits, the
// label shown to users, whether list views may sort by it, validation rules
// for the general/creation/update tiers and, for rich-text fields, the
// storage disk and directory used for attachment uploads. Read and write
// behaviour is attached through ResolveFunc and FillFunc callbacks so the
// host admin layer can resolve and fill fields without knowing how a value
// is stored. Fields are always handled by pointer; expansion clones them with
// Field.Clone and never mutates a caller's descriptor.
package model
