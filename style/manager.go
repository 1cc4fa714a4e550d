package style

// ComputeContext is the slice of the cascade engine a ValueManager needs
// while computing a value: same-element access to already-computed
// properties (font-size, line-height, color) and the means to flag that this
// property's computed value depends on one of them (the
// fontSizeRelative/lineHeightRelative/colorRelative flags tracked per slot).
//
// Package cascade implements this interface; package style only depends on
// it as an interface, so there is no import cycle.
type ComputeContext interface {
	// ComputedFontSize/-LineHeight/-Color return the same element's already
	// resolved computed value for that property, recursing through
	// getComputedStyle as needed. Calling one of these also marks the
	// corresponding *Relative flag on the property currently being computed.
	// Called while that same property is being computed (font-size in em/%,
	// color: currentColor), it returns the nearest stylable ancestor's
	// computed value instead (the default when there is none) and marks the
	// property parent-relative.
	ComputedFontSize() (Value, error)
	ComputedLineHeight() (Value, error)
	ComputedColor() (Value, error)

	// HasFontSize / HasLineHeight / HasColor report whether the registry
	// knows about that property at all (its index may be -1 otherwise).
	HasFontSize() bool
	HasLineHeight() bool
	HasColor() bool
}

// ValueManager is the cascade engine's external per-property collaborator.
type ValueManager interface {
	// PropertyName is the property's canonical name, e.g. "font-size".
	PropertyName() string
	// IsInheritedProperty reports whether the property inherits by default.
	IsInheritedProperty() bool
	// DefaultValue is the property's initial value (used by resolver Case A).
	DefaultValue() Value
	// CreateValue parses a cascaded value out of a declaration's lexical
	// unit. It never sees `inherit`; the engine handles that keyword itself
	// before a manager is consulted.
	CreateValue(lex LexicalUnit) (Value, error)
	// ComputeValue turns a cascaded value into a computed one (resolver Case
	// D). ctx gives access to the same-element font-size/line-height/color.
	ComputeValue(ctx ComputeContext, cascaded Value) (Value, error)
}

// LonghandEmit is the callback a ShorthandManager uses to emit expanded
// longhand declarations.
type LonghandEmit func(propertyName string, lex LexicalUnit, important bool)

// ShorthandManager is the cascade engine's external per-shorthand collaborator.
type ShorthandManager interface {
	PropertyName() string
	SetValues(lex LexicalUnit, important bool, emit LonghandEmit) error
}
