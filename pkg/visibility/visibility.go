package visibility

import "context"

// Context identifies which host view a field set is being expanded for. The
// index (list) view receives the original fields; every other view receives
// the locale-expanded fields.
type Context int

const (
	// ContextDetail covers detail, create and update views.
	ContextDetail Context = iota
	// ContextIndex covers resource list views.
	ContextIndex
)

// String returns the canonical name used in configuration and CLI flags.
func (c Context) String() string {
	if c == ContextIndex {
		return "index"
	}
	return "detail"
}

// ParseContext maps "index"/"list" onto ContextIndex. Anything else is treated
// as a detail view.
func ParseContext(raw string) Context {
	switch raw {
	case "index", "list":
		return ContextIndex
	default:
		return ContextDetail
	}
}

// Detector reports the rendering context for the current expansion. Set
// implementations consult it on every expansion and never cache the answer.
type Detector interface {
	Context() Context
}

// DetectorFunc adapts a function into a Detector.
type DetectorFunc func() Context

// Context delegates to the underlying function.
func (fn DetectorFunc) Context() Context {
	if fn == nil {
		return ContextDetail
	}
	return fn()
}

// ListViewFunc adapts a host routing check ("is the current request a list
// view?") into a Detector.
type ListViewFunc func() bool

// Context maps the routing answer onto a rendering context.
func (fn ListViewFunc) Context() Context {
	if fn != nil && fn() {
		return ContextIndex
	}
	return ContextDetail
}

// Fixed returns a Detector that always reports ctx.
func Fixed(ctx Context) Detector {
	return DetectorFunc(func() Context { return ctx })
}

type contextKey struct{}

// WithContext stores the rendering context on a request context so handlers
// can decide the view once and expanders deeper in the call chain can read it.
func WithContext(parent context.Context, c Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, contextKey{}, c)
}

// FromContext returns the rendering context stored by WithContext. Contexts
// without a value (including calls made outside any request) report
// ContextDetail.
func FromContext(ctx context.Context) Context {
	if ctx == nil {
		return ContextDetail
	}
	if c, ok := ctx.Value(contextKey{}).(Context); ok {
		return c
	}
	return ContextDetail
}

// RequestDetector returns a Detector backed by the rendering context stored on
// ctx.
func RequestDetector(ctx context.Context) Detector {
	return DetectorFunc(func() Context { return FromContext(ctx) })
}
