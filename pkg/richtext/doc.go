// Package richtext sanitises HTML submitted through rich-text fields before
// it is written to a translation slot.
package richtext
