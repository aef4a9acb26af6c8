package visibility

// View names a host screen a concrete field can be shown on.
type View uint8

const (
	ViewIndex View = 1 << iota
	ViewDetail
	ViewCreate
	ViewUpdate
)

// AllViews hides a field from every screen. Upload-only siblings use it.
const AllViews = ViewIndex | ViewDetail | ViewCreate | ViewUpdate

// Hidden is a bit set of views a field is hidden from. The zero value shows
// the field everywhere.
type Hidden uint8

// Hide returns a copy of h with the supplied views added.
func (h Hidden) Hide(views ...View) Hidden {
	for _, v := range views {
		h |= Hidden(v)
	}
	return h
}

// Show returns a copy of h with the supplied views removed.
func (h Hidden) Show(views ...View) Hidden {
	for _, v := range views {
		h &^= Hidden(v)
	}
	return h
}

// Visible reports whether the view is not hidden.
func (h Hidden) Visible(v View) bool {
	return h&Hidden(v) == 0
}

// HiddenEverywhere reports whether every view is hidden.
func (h Hidden) HiddenEverywhere() bool {
	return h&Hidden(AllViews) == Hidden(AllViews)
}
