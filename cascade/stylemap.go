package cascade

import "github.com/inkbound/cssengine/style"

// Origin is a cascade origin. Ordering matters: higher numeric value wins
// at equal importance, per the author-write override rule.
type Origin int

const (
	UserAgent Origin = iota
	User
	NonCSS
	Author
	InlineAuthor
)

func (o Origin) String() string {
	switch o {
	case UserAgent:
		return "user-agent"
	case User:
		return "user"
	case NonCSS:
		return "non-css"
	case Author:
		return "author"
	case InlineAuthor:
		return "inline-author"
	}
	return "unknown"
}

// slot is one property's cascade/compute state, dense-indexed by
// PropertyIndex within a StyleMap.
type slot struct {
	value     style.Value
	present   bool // false means an empty slot: no cascaded value was ever written
	origin    Origin
	important bool

	computed     bool
	nullCascaded bool

	parentRelative     bool
	fontSizeRelative   bool
	lineHeightRelative bool
	colorRelative      bool
}

// StyleMap is the dense per-element, per-pseudo cascade/compute state: a
// fixed-length vector of slots indexed by PropertyIndex.
type StyleMap struct {
	slots []slot
	// fixedCascadedStyle marks a style map installed wholesale via
	// ImportCascadedStyleMaps; the cascade assembler must never rewrite it,
	// and invalidateTree/invalidateNode/propagate (invalidate.go) skip it
	// rather than clearing it back to nothing.
	fixedCascadedStyle bool
}

func newStyleMap(size int) *StyleMap {
	return &StyleMap{slots: make([]slot, size)}
}

func (m *StyleMap) ensure(idx PropertyIndex) {
	if int(idx) >= len(m.slots) {
		grown := make([]slot, int(idx)+1)
		copy(grown, m.slots)
		m.slots = grown
	}
}

// Value returns the slot's stored value (cascaded, or a Computed wrapper
// once resolved) and whether the slot has ever been written.
func (m *StyleMap) Value(idx PropertyIndex) (style.Value, bool) {
	if int(idx) >= len(m.slots) {
		return nil, false
	}
	s := &m.slots[idx]
	return s.value, s.present
}

func (m *StyleMap) Origin(idx PropertyIndex) Origin {
	if int(idx) >= len(m.slots) {
		return UserAgent
	}
	return m.slots[idx].origin
}

func (m *StyleMap) Important(idx PropertyIndex) bool {
	if int(idx) >= len(m.slots) {
		return false
	}
	return m.slots[idx].important
}

func (m *StyleMap) Computed(idx PropertyIndex) bool {
	if int(idx) >= len(m.slots) {
		return false
	}
	return m.slots[idx].computed
}

func (m *StyleMap) NullCascaded(idx PropertyIndex) bool {
	if int(idx) >= len(m.slots) {
		return false
	}
	return m.slots[idx].nullCascaded
}

func (m *StyleMap) ParentRelative(idx PropertyIndex) bool {
	if int(idx) >= len(m.slots) {
		return false
	}
	return m.slots[idx].parentRelative
}

func (m *StyleMap) FontSizeRelative(idx PropertyIndex) bool {
	if int(idx) >= len(m.slots) {
		return false
	}
	return m.slots[idx].fontSizeRelative
}

func (m *StyleMap) LineHeightRelative(idx PropertyIndex) bool {
	if int(idx) >= len(m.slots) {
		return false
	}
	return m.slots[idx].lineHeightRelative
}

func (m *StyleMap) ColorRelative(idx PropertyIndex) bool {
	if int(idx) >= len(m.slots) {
		return false
	}
	return m.slots[idx].colorRelative
}

// write installs a cascaded value unconditionally, clearing any flags left
// over from a previous compute pass. Used by both the cascade assembler and
// the invalidator's write paths (inline/hint updates).
func (m *StyleMap) write(idx PropertyIndex, v style.Value, origin Origin, important bool) {
	m.ensure(idx)
	m.slots[idx] = slot{value: v, present: true, origin: origin, important: important}
}

// clearComputed resets a single slot back to its pre-compute cascaded
// state, forcing getComputedStyle to re-resolve it from scratch on next
// query. A slot that was null-cascaded (no declaration ever wrote it; the
// stored value is the resolver's own default/inherited result) reverts to
// empty; otherwise finishCompute's Computed wrapper, if any, is unwrapped
// back to the cascaded value it was built from.
func (m *StyleMap) clearComputed(idx PropertyIndex) {
	if int(idx) >= len(m.slots) {
		return
	}
	s := &m.slots[idx]
	if s.nullCascaded {
		s.value = nil
		s.present = false
	} else {
		s.value = style.CascadedOf(s.value)
	}
	s.computed = false
	s.nullCascaded = false
	s.parentRelative = false
	s.fontSizeRelative = false
	s.lineHeightRelative = false
	s.colorRelative = false
}

// markParentRelative flags idx as having been resolved by inheriting from
// the parent's computed value.
func (m *StyleMap) markParentRelative(idx PropertyIndex) {
	m.ensure(idx)
	m.slots[idx].parentRelative = true
}

// finishCompute writes the resolver's result into idx and marks it
// computed: if the cascaded value was absent, nullCascaded is set; else if
// result differs from cascaded, it is wrapped in a Computed
// value pairing both forms so a later invalidation can restart resolution
// from the original cascaded value.
func (m *StyleMap) finishCompute(idx PropertyIndex, cascaded style.Value, cascadedPresent bool, result style.Value) {
	m.ensure(idx)
	s := &m.slots[idx]
	switch {
	case !cascadedPresent:
		s.value = result
		s.present = true
		s.nullCascaded = true
	case !valuesEqual(result, cascaded):
		s.value = style.Computed{Cascaded: cascaded, Resolved: result}
	default:
		s.value = result
	}
	s.computed = true
}

// valuesEqual compares two Values for the writeback identity check.
// Manager-defined Value implementations are typically small
// comparable structs or pointers; == is sufficient and avoids requiring
// managers to implement an Equal method. A value that panics on == (e.g. a
// slice-holding struct) is treated as unequal, so its result is always
// stored in a Computed wrapper.
func valuesEqual(a, b style.Value) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// setRelative marks the given relative-dependence flag on idx. anchor
// selects which flag; used by the ComputeContext implementation when a
// value manager consults a same-element computed value.
func (m *StyleMap) setRelative(idx PropertyIndex, anchor PropertyIndex, registry *Registry) {
	if int(idx) >= len(m.slots) {
		return
	}
	s := &m.slots[idx]
	switch anchor {
	case registry.FontSizeIndex():
		s.fontSizeRelative = true
	case registry.LineHeightIndex():
		s.lineHeightRelative = true
	case registry.ColorIndex():
		s.colorRelative = true
	}
}
