package style

import "fmt"

// DisplayMode is a bitset for the outer/inner CSS display property, covering
// the values this engine needs to distinguish between (block, inline,
// inline-block, list-item, none).
type DisplayMode uint8

const (
	DisplayNone DisplayMode = 1 << iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayListItem
)

func (d DisplayMode) String() string {
	switch d {
	case DisplayNone:
		return "none"
	case DisplayBlock:
		return "block"
	case DisplayInline:
		return "inline"
	case DisplayInlineBlock:
		return "inline-block"
	case DisplayListItem:
		return "list-item"
	}
	return "?"
}

func (DisplayMode) isCSSValue() {}

// DisplayManager implements ValueManager for `display`.
type DisplayManager struct{}

func (DisplayManager) PropertyName() string     { return "display" }
func (DisplayManager) IsInheritedProperty() bool { return false }
func (DisplayManager) DefaultValue() Value       { return DisplayInline }

func (DisplayManager) CreateValue(lex LexicalUnit) (Value, error) {
	switch lex.Text {
	case "none":
		return DisplayNone, nil
	case "block":
		return DisplayBlock, nil
	case "inline":
		return DisplayInline, nil
	case "inline-block":
		return DisplayInlineBlock, nil
	case "list-item":
		return DisplayListItem, nil
	}
	return nil, fmt.Errorf("style: unrecognized display value %q", lex.Text)
}

func (DisplayManager) ComputeValue(_ ComputeContext, cascaded Value) (Value, error) {
	return cascaded, nil
}
