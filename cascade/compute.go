package cascade

import (
	"fmt"

	"github.com/inkbound/cssengine/dom"
	"github.com/inkbound/cssengine/style"
)

// computeCtx implements style.ComputeContext for one in-progress
// computeSlot call, giving the value manager access to the same element's
// already-computed font-size/line-height/color and recording the
// corresponding relative-dependence flag on the property being computed.
type computeCtx struct {
	engine     *Engine
	element    *dom.Node
	pseudo     string
	sm         *StyleMap
	currentIdx PropertyIndex
}

func (c *computeCtx) ComputedFontSize() (style.Value, error) {
	return c.sameElementComputed(c.engine.registry.FontSizeIndex())
}

func (c *computeCtx) ComputedLineHeight() (style.Value, error) {
	return c.sameElementComputed(c.engine.registry.LineHeightIndex())
}

func (c *computeCtx) ComputedColor() (style.Value, error) {
	return c.sameElementComputed(c.engine.registry.ColorIndex())
}

func (c *computeCtx) HasFontSize() bool   { return c.engine.registry.FontSizeIndex() != NoProperty }
func (c *computeCtx) HasLineHeight() bool { return c.engine.registry.LineHeightIndex() != NoProperty }
func (c *computeCtx) HasColor() bool      { return c.engine.registry.ColorIndex() != NoProperty }

func (c *computeCtx) sameElementComputed(anchor PropertyIndex) (style.Value, error) {
	if anchor == NoProperty {
		return nil, fmt.Errorf("cascade: property not registered")
	}
	if anchor == c.currentIdx {
		// A property relative to itself (font-size in em/%, color:
		// currentColor) resolves against the nearest stylable ancestor.
		parent := nearestStylableAncestor(c.element)
		if parent == nil {
			return c.engine.registry.Manager(anchor).DefaultValue(), nil
		}
		v, err := c.engine.GetComputedStyle(parent, "", anchor)
		if err != nil {
			return nil, err
		}
		c.sm.markParentRelative(c.currentIdx)
		return v, nil
	}
	v, err := c.engine.computeSlot(c.element, c.pseudo, c.sm, anchor)
	if err != nil {
		return nil, err
	}
	c.sm.setRelative(c.currentIdx, anchor, c.engine.registry)
	return v, nil
}

// GetComputedStyle is the public entry point for resolving a single
// property's computed value on element.
func (e *Engine) GetComputedStyle(element *dom.Node, pseudo string, idx PropertyIndex) (style.Value, error) {
	sm, err := e.GetCascadedStyleMap(element, pseudo)
	if err != nil {
		return nil, err
	}
	return e.computeSlot(element, pseudo, sm, idx)
}

// computeSlot implements the computed-value resolver's four-case table plus
// writeback. It is the shared entry point for both the public
// GetComputedStyle and same-element lookups a ComputeContext performs on
// behalf of a value manager.
func (e *Engine) computeSlot(element *dom.Node, pseudo string, sm *StyleMap, idx PropertyIndex) (style.Value, error) {
	if sm.Computed(idx) {
		v, _ := sm.Value(idx)
		return v, nil
	}
	cascaded, present := sm.Value(idx)
	vm := e.registry.Manager(idx)
	parent := nearestStylableAncestor(element)

	var result style.Value
	var err error
	inheritedKeyword := present && style.IsInherit(cascaded)

	switch {
	case !present && (!vm.IsInheritedProperty() || parent == nil):
		// Case A
		result = vm.DefaultValue()
	case inheritedKeyword && parent != nil:
		// Case B
		result, err = e.GetComputedStyle(parent, "", idx)
		if err == nil {
			sm.markParentRelative(idx)
		}
	case inheritedKeyword && parent == nil:
		// `inherit` with no stylable ancestor: fall back to the default,
		// the only sensible reading left once case B's precondition fails.
		result = vm.DefaultValue()
	case !present && vm.IsInheritedProperty() && parent != nil:
		// Case C
		result, err = e.GetComputedStyle(parent, "", idx)
		if err == nil {
			sm.markParentRelative(idx)
		}
	default:
		// Case D
		ctx := &computeCtx{engine: e, element: element, pseudo: pseudo, sm: sm, currentIdx: idx}
		result, err = vm.ComputeValue(ctx, cascaded)
	}
	if err != nil {
		return nil, err
	}
	sm.finishCompute(idx, cascaded, present, result)
	v, _ := sm.Value(idx)
	return v, nil
}
