package cascade

import (
	"fmt"

	"github.com/inkbound/cssengine/style"
)

// PropertyIndex is a dense, nonnegative slot index assigned at registry
// construction. NoProperty is the "not a known property" sentinel.
type PropertyIndex int

// NoProperty is returned by name lookups that miss.
const NoProperty PropertyIndex = -1

// Registry is the immutable property table: an ordered list of value
// managers, one per longhand property, plus a table of shorthand
// managers. It is built once at Engine construction and never mutated
// afterwards, so it needs no synchronization of its own.
type Registry struct {
	managers    []style.ValueManager
	shorthands  map[string]style.ShorthandManager
	nameToIndex map[string]PropertyIndex

	fontSizeIdx   PropertyIndex
	lineHeightIdx PropertyIndex
	colorIdx      PropertyIndex

	allProperties []PropertyIndex

	// hintNames maps a presentational-hint attribute's local name to the
	// property index it feeds, restricted at registration time to
	// whatever namespace the caller configured.
	hintNames map[string]PropertyIndex
}

// NewRegistry builds a Registry from an ordered list of value managers and
// a list of shorthand managers. Property indices are assigned in the order
// managers are given; that order is stable for the registry's lifetime.
func NewRegistry(managers []style.ValueManager, shorthands []style.ShorthandManager) (*Registry, error) {
	r := &Registry{
		managers:      managers,
		shorthands:    make(map[string]style.ShorthandManager, len(shorthands)),
		nameToIndex:   make(map[string]PropertyIndex, len(managers)),
		fontSizeIdx:   NoProperty,
		lineHeightIdx: NoProperty,
		colorIdx:      NoProperty,
		hintNames:     make(map[string]PropertyIndex),
	}
	for i, m := range managers {
		name := m.PropertyName()
		if _, dup := r.nameToIndex[name]; dup {
			return nil, fmt.Errorf("cascade: duplicate value manager for property %q", name)
		}
		idx := PropertyIndex(i)
		r.nameToIndex[name] = idx
		r.allProperties = append(r.allProperties, idx)
		switch name {
		case "font-size":
			r.fontSizeIdx = idx
		case "line-height":
			r.lineHeightIdx = idx
		case "color":
			r.colorIdx = idx
		}
	}
	for _, s := range shorthands {
		r.shorthands[s.PropertyName()] = s
	}
	return r, nil
}

// IndexOf returns the property index for name, or NoProperty.
func (r *Registry) IndexOf(name string) PropertyIndex {
	if idx, ok := r.nameToIndex[name]; ok {
		return idx
	}
	return NoProperty
}

// Manager returns the value manager at idx. Callers must only pass indices
// obtained from IndexOf or AllProperties.
func (r *Registry) Manager(idx PropertyIndex) style.ValueManager {
	return r.managers[idx]
}

// Shorthand returns the shorthand manager registered under name, if any.
func (r *Registry) Shorthand(name string) (style.ShorthandManager, bool) {
	sh, ok := r.shorthands[name]
	return sh, ok
}

// AllProperties returns every known property index, used for bulk
// all-properties invalidation notifications.
func (r *Registry) AllProperties() []PropertyIndex {
	return r.allProperties
}

// FontSizeIndex, LineHeightIndex and ColorIndex return the cached indices
// of the three relative-value anchor properties, or NoProperty if this
// registry has no manager for them.
func (r *Registry) FontSizeIndex() PropertyIndex   { return r.fontSizeIdx }
func (r *Registry) LineHeightIndex() PropertyIndex { return r.lineHeightIdx }
func (r *Registry) ColorIndex() PropertyIndex      { return r.colorIdx }

// RegisterHint associates a presentational-hint attribute's local name with
// a property name already known to this registry. It is a configuration
// error to reference an unknown property.
func (r *Registry) RegisterHint(attrLocalName, propertyName string) error {
	idx := r.IndexOf(propertyName)
	if idx == NoProperty {
		return fmt.Errorf("cascade: cannot register hint %q: unknown property %q", attrLocalName, propertyName)
	}
	r.hintNames[attrLocalName] = idx
	return nil
}

// HintProperty reports whether attrLocalName is a registered presentational
// hint and, if so, which property index it feeds.
func (r *Registry) HintProperty(attrLocalName string) (PropertyIndex, bool) {
	idx, known := r.hintNames[attrLocalName]
	return idx, known
}

func (r *Registry) Len() int { return len(r.managers) }
