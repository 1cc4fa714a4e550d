package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// LengthUnit distinguishes the handful of CSS units the built-in length
// managers understand. Real layout code would need the full CSS unit set;
// this is illustrative, not exhaustive (see package doc).
type LengthUnit int

const (
	UnitPX LengthUnit = iota
	UnitEM
	UnitPercent
	UnitAuto
)

func (u LengthUnit) String() string {
	switch u {
	case UnitPX:
		return "px"
	case UnitEM:
		return "em"
	case UnitPercent:
		return "%"
	case UnitAuto:
		return "auto"
	}
	return "?"
}

// pxPerBP is the ratio this engine assumes between a CSS pixel and
// dimen.DU's big-point unit. tyse has no notion of a physical viewport
// (spec Non-goals exclude layout), so there is no real DPI to convert
// through; one CSS px is taken to be one big point.
const pxPerBP = 1.0

func pxToDU(px float64) dimen.DU { return dimen.DU(px * pxPerBP * float64(dimen.BP)) }
func duToPX(d dimen.DU) float64  { return float64(d) / (pxPerBP * float64(dimen.BP)) }

// LengthValue is the concrete Value produced by length-flavored managers
// (font-size, line-height, margin-*). Absolute amounts are carried in
// dimen.DU and percentages in percent.Percent rather than a bare float64,
// mirroring how css.DimenT keeps a dimen.DU/percent.Percent pair
// discriminated by a unit tag instead of two competing numeric fields. The
// em case has no tyse counterpart in the demonstrated DimenT surface, so it
// keeps its own float64 multiplier, resolved against a font-size the way
// FontSizeManager and LineHeightManager already do.
type LengthValue struct {
	Unit LengthUnit

	Abs     dimen.DU        // meaningful when Unit == UnitPX
	Pct     percent.Percent // meaningful when Unit == UnitPercent
	EmScale float64         // meaningful when Unit == UnitEM
}

func (LengthValue) isCSSValue() {}

func (l LengthValue) String() string {
	switch l.Unit {
	case UnitAuto:
		return "auto"
	case UnitPercent:
		return fmt.Sprintf("%v%%", l.Pct)
	case UnitEM:
		return fmt.Sprintf("%gem", l.EmScale)
	default:
		return fmt.Sprintf("%gpx", duToPX(l.Abs))
	}
}

// PXAmount returns the pixel amount of a UnitPX length. Callers that don't
// know the unit ahead of time should check Unit first.
func (l LengthValue) PXAmount() float64 { return duToPX(l.Abs) }

// PX is a convenience constructor for an absolute pixel length.
func PX(n float64) LengthValue { return LengthValue{Unit: UnitPX, Abs: pxToDU(n)} }

func parseLength(text string, allowAuto bool) (LengthValue, error) {
	s := strings.TrimSpace(text)
	if allowAuto && s == "auto" {
		return LengthValue{Unit: UnitAuto}, nil
	}
	switch {
	case strings.HasSuffix(s, "%"):
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return LengthValue{}, fmt.Errorf("style: bad length %q: %w", text, err)
		}
		return LengthValue{Unit: UnitPercent, Pct: percent.Percent(n)}, nil
	case strings.HasSuffix(s, "em"):
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "em")), 64)
		if err != nil {
			return LengthValue{}, fmt.Errorf("style: bad length %q: %w", text, err)
		}
		return LengthValue{Unit: UnitEM, EmScale: n}, nil
	case strings.HasSuffix(s, "px"):
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "px")), 64)
		if err != nil {
			return LengthValue{}, fmt.Errorf("style: bad length %q: %w", text, err)
		}
		return PX(n), nil
	case s == "0":
		return PX(0), nil
	default:
		return LengthValue{}, fmt.Errorf("style: unrecognized length %q", text)
	}
}

// FontSizeManager implements ValueManager for `font-size`. It resolves `em`
// and `%` against the parent's computed font-size, which ctx.ComputedFontSize
// returns while font-size itself is being computed; the engine records that
// dependency as parent-relative.
type FontSizeManager struct{}

const defaultFontSizePX = 16.0

func (FontSizeManager) PropertyName() string      { return "font-size" }
func (FontSizeManager) IsInheritedProperty() bool { return true }
func (FontSizeManager) DefaultValue() Value       { return PX(defaultFontSizePX) }

func (FontSizeManager) CreateValue(lex LexicalUnit) (Value, error) {
	return parseLength(lex.Text, false)
}

func (FontSizeManager) ComputeValue(ctx ComputeContext, cascaded Value) (Value, error) {
	lv, ok := cascaded.(LengthValue)
	if !ok {
		return cascaded, nil
	}
	switch lv.Unit {
	case UnitPX:
		return lv, nil
	case UnitEM, UnitPercent:
		if !ctx.HasFontSize() {
			return FontSizeManager{}.DefaultValue(), nil
		}
		parent, err := ctx.ComputedFontSize()
		if err != nil {
			return nil, err
		}
		basePX := lengthPX(parent, defaultFontSizePX)
		if lv.Unit == UnitPercent {
			return PX(basePX * float64(lv.Pct) / 100), nil
		}
		return PX(basePX * lv.EmScale), nil
	}
	return lv, nil
}

// LineHeightManager implements ValueManager for `line-height`. A unitless
// number is a multiplier of the element's own computed font-size; `em`/`%`
// behave the same way (CSS2.1 §10.8.1).
type LineHeightManager struct{}

func (LineHeightManager) PropertyName() string      { return "line-height" }
func (LineHeightManager) IsInheritedProperty() bool { return true }
func (LineHeightManager) DefaultValue() Value       { return Keyword("normal") }

func (LineHeightManager) CreateValue(lex LexicalUnit) (Value, error) {
	s := strings.TrimSpace(lex.Text)
	if s == "normal" {
		return Keyword("normal"), nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return LengthValue{Unit: UnitEM, EmScale: n}, nil
	}
	return parseLength(s, false)
}

func (LineHeightManager) ComputeValue(ctx ComputeContext, cascaded Value) (Value, error) {
	if k, ok := cascaded.(Keyword); ok {
		return k, nil
	}
	lv, ok := cascaded.(LengthValue)
	if !ok {
		return cascaded, nil
	}
	if lv.Unit == UnitPX {
		return lv, nil
	}
	if !ctx.HasFontSize() {
		return cascaded, nil
	}
	fs, err := ctx.ComputedFontSize()
	if err != nil {
		return nil, err
	}
	basePX := lengthPX(fs, defaultFontSizePX)
	if lv.Unit == UnitPercent {
		return PX(basePX * float64(lv.Pct) / 100), nil
	}
	return PX(basePX * lv.EmScale), nil
}

// lengthPX extracts a pixel amount from an already-computed length Value,
// falling back to def when v isn't a resolvable length (e.g. still a
// keyword because the property was never set).
func lengthPX(v Value, def float64) float64 {
	v = Unwrap(v)
	if lv, ok := v.(LengthValue); ok && lv.Unit == UnitPX {
		return lv.PXAmount()
	}
	return def
}

// marginManager implements ValueManager for one of the four margin-*
// longhands. `auto` and percentages are carried through uncomputed, since
// resolving them requires the containing block's width, which is a layout
// concern outside this engine's scope (spec Non-goals).
type marginManager struct{ name string }

func (m marginManager) PropertyName() string      { return m.name }
func (marginManager) IsInheritedProperty() bool { return false }
func (marginManager) DefaultValue() Value       { return PX(0) }

func (marginManager) CreateValue(lex LexicalUnit) (Value, error) {
	return parseLength(lex.Text, true)
}

func (marginManager) ComputeValue(_ ComputeContext, cascaded Value) (Value, error) {
	return cascaded, nil
}

// MarginTopManager, MarginRightManager, MarginBottomManager and
// MarginLeftManager are the four margin-* longhand managers, split out as
// named types so callers can register them individually without knowing
// about the unexported marginManager.
type (
	MarginTopManager    struct{ marginManager }
	MarginRightManager  struct{ marginManager }
	MarginBottomManager struct{ marginManager }
	MarginLeftManager   struct{ marginManager }
)

// NewMarginLonghands returns the four margin-* longhand managers in
// top/right/bottom/left order, matching the shorthand's expansion order.
func NewMarginLonghands() [4]ValueManager {
	return [4]ValueManager{
		MarginTopManager{marginManager{"margin-top"}},
		MarginRightManager{marginManager{"margin-right"}},
		MarginBottomManager{marginManager{"margin-bottom"}},
		MarginLeftManager{marginManager{"margin-left"}},
	}
}
