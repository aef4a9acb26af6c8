// Package visibility describes where expanded fields show up. It carries the
// rendering context an expansion runs under (index versus detail/edit), the
// Detector contract hosts implement to report it, and per-view visibility
// flags for concrete fields.
package visibility
