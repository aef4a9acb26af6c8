package richtext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     *bluemonday.Policy
)

// Sanitizer cleans rich-text submissions with a bluemonday policy. It is
// safe for concurrent use once constructed.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New returns a Sanitizer using the shared editor policy.
func New() *Sanitizer {
	return &Sanitizer{policy: Policy()}
}

// NewWithPolicy wraps a caller supplied policy. A nil policy falls back to
// the shared editor policy.
func NewWithPolicy(policy *bluemonday.Policy) *Sanitizer {
	if policy == nil {
		policy = Policy()
	}
	return &Sanitizer{policy: policy}
}

// Sanitize strips disallowed markup and surrounding whitespace.
func (s *Sanitizer) Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := s.policy
	if policy == nil {
		policy = Policy()
	}
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

// Policy returns the shared editor policy: user generated content rules plus
// the figure/attachment markup rich-text editors emit for uploaded files.
func Policy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("figure", "figcaption", "del", "pre")

		policy.AllowAttrs(
			"data-trix-attachment", "data-trix-content-type",
			"data-trix-attributes", "class",
		).OnElements("figure")

		policy.AllowAttrs("width", "height").OnElements("img")
		policy.AllowDataURIImages()

		defaultPolicy = policy
	})
	return defaultPolicy
}
