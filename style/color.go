package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ColorValue is the concrete Value produced by the color and
// background-color managers.
type ColorValue struct {
	color.Color
	Keyword string // "" unless the source was a keyword such as "currentColor"
}

func (ColorValue) isCSSValue() {}

func (c ColorValue) String() string {
	if c.Keyword != "" {
		return c.Keyword
	}
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
}

// namedColors is a small, representative subset of the CSS extended color
// keyword table. Layout and paint code needing the full X11/CSS palette
// should extend this table rather than the manager's parsing logic.
var namedColors = map[string]color.RGBA{
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0x80, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"orange":      {0xff, 0xa5, 0, 0xff},
	"purple":      {0x80, 0, 0x80, 0xff},
	"transparent": {0, 0, 0, 0},
}

func parseColor(text string) (ColorValue, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return ColorValue{}, fmt.Errorf("style: empty color value")
	}
	if strings.EqualFold(s, "currentColor") {
		return ColorValue{Keyword: "currentColor"}, nil
	}
	if rgba, ok := namedColors[strings.ToLower(s)]; ok {
		return ColorValue{Color: rgba}, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(strings.ToLower(s), "rgb") {
		return parseRGBFunc(s)
	}
	return ColorValue{}, fmt.Errorf("style: unrecognized color %q", text)
}

func parseHexColor(s string) (ColorValue, error) {
	h := strings.TrimPrefix(s, "#")
	expand := func(c byte) byte { return c<<4 | c }
	switch len(h) {
	case 3:
		r, g, b := h[0], h[1], h[2]
		return ColorValue{Color: color.RGBA{
			R: expand(hexNibble(r)), G: expand(hexNibble(g)), B: expand(hexNibble(b)), A: 0xff,
		}}, nil
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return ColorValue{}, fmt.Errorf("style: bad hex color %q: %w", s, err)
		}
		return ColorValue{Color: color.RGBA{
			R: byte(v >> 16), G: byte(v >> 8), B: byte(v), A: 0xff,
		}}, nil
	}
	return ColorValue{}, fmt.Errorf("style: bad hex color %q", s)
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func parseRGBFunc(s string) (ColorValue, error) {
	open, close := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return ColorValue{}, fmt.Errorf("style: malformed rgb() value %q", s)
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) < 3 {
		return ColorValue{}, fmt.Errorf("style: rgb() needs 3 components: %q", s)
	}
	chan8 := func(p string) byte {
		n, _ := strconv.Atoi(strings.TrimSpace(p))
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		return byte(n)
	}
	return ColorValue{Color: color.RGBA{
		R: chan8(parts[0]), G: chan8(parts[1]), B: chan8(parts[2]), A: 0xff,
	}}, nil
}

// ColorManager implements ValueManager for the `color` property.
type ColorManager struct{}

func (ColorManager) PropertyName() string     { return "color" }
func (ColorManager) IsInheritedProperty() bool { return true }
func (ColorManager) DefaultValue() Value       { return ColorValue{Color: color.Black} }

func (ColorManager) CreateValue(lex LexicalUnit) (Value, error) {
	return parseColor(lex.Text)
}

func (ColorManager) ComputeValue(ctx ComputeContext, cascaded Value) (Value, error) {
	cv, ok := cascaded.(ColorValue)
	if !ok {
		return cascaded, nil
	}
	if cv.Keyword == "currentColor" {
		if !ctx.HasColor() {
			return ColorManager{}.DefaultValue(), nil
		}
		return ctx.ComputedColor()
	}
	return cv, nil
}

// BackgroundColorManager implements ValueManager for `background-color`.
// Unlike `color` it does not inherit; its initial value is "transparent".
type BackgroundColorManager struct{}

func (BackgroundColorManager) PropertyName() string     { return "background-color" }
func (BackgroundColorManager) IsInheritedProperty() bool { return false }
func (BackgroundColorManager) DefaultValue() Value {
	return ColorValue{Color: namedColors["transparent"]}
}

func (BackgroundColorManager) CreateValue(lex LexicalUnit) (Value, error) {
	return parseColor(lex.Text)
}

func (m BackgroundColorManager) ComputeValue(ctx ComputeContext, cascaded Value) (Value, error) {
	cv, ok := cascaded.(ColorValue)
	if !ok {
		return cascaded, nil
	}
	if cv.Keyword == "currentColor" {
		if !ctx.HasColor() {
			return m.DefaultValue(), nil
		}
		return ctx.ComputedColor()
	}
	return cv, nil
}
