package style

import "fmt"

// Value is an opaque tagged variant. The cascade engine distinguishes
// exactly two variants of its own (Inherit and Computed); everything else is
// a manager-defined type it never inspects.
type Value interface {
	isCSSValue()
}

// inheritT is the singleton implementation behind the exported Inherit value.
type inheritT struct{}

func (inheritT) isCSSValue() {}

func (inheritT) String() string { return "inherit" }

// Inherit is the CSS `inherit` keyword value.
var Inherit Value = inheritT{}

// IsInherit reports whether v is the `inherit` keyword.
func IsInherit(v Value) bool {
	_, ok := v.(inheritT)
	return ok
}

// Computed wraps a cascaded value together with its resolved computed form.
// Retaining both lets the resolver restart computation from the original
// cascaded value after invalidation clears the `computed` flag.
type Computed struct {
	Cascaded Value
	Resolved Value
}

func (Computed) isCSSValue() {}

func (c Computed) String() string {
	return fmt.Sprintf("computed(%v -> %v)", c.Cascaded, c.Resolved)
}

// Unwrap returns the resolved value if v is a Computed wrapper, else v
// itself. Layout/render code should always read through Unwrap.
func Unwrap(v Value) Value {
	if c, ok := v.(Computed); ok {
		return c.Resolved
	}
	return v
}

// CascadedOf returns the original cascaded value backing v: v itself, or the
// Cascaded field if v is a Computed wrapper.
func CascadedOf(v Value) Value {
	if c, ok := v.(Computed); ok {
		return c.Cascaded
	}
	return v
}

// Keyword is a manager-defined value variant for simple keyword properties
// (e.g. `display: block`, `visibility: hidden`).
type Keyword string

func (Keyword) isCSSValue() {}

func (k Keyword) String() string { return string(k) }

// LexicalUnit is the minimal parsed representation of a property value's
// source text handed to ValueManager.CreateValue. Per-property grammar and
// arithmetic are the value manager's own responsibility; the cascade engine
// itself never interprets Text.
type LexicalUnit struct {
	Text      string
	Important bool
}
