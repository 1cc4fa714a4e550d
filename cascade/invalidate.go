package cascade

import "github.com/inkbound/cssengine/dom"

// invalidateTree clears the computed maps of node (if stylable) and every
// logical descendant, firing an all-properties change event on each
// element that actually held one.
func (e *Engine) invalidateTree(node *dom.Node) {
	if node == nil {
		return
	}
	walkLogical(node, func(n *dom.Node) {
		if n.IsStylable() {
			e.fireAllForNode(n)
		}
	})
}

// invalidateNode clears node's own computed map, fires an all-properties
// change event, then propagates every known property into every logical
// child (rather than clearing their maps outright — a descendant only
// loses cached state for the specific properties that actually depend on
// the changed ancestor).
func (e *Engine) invalidateNode(node *dom.Node) {
	if node == nil {
		return
	}
	if node.IsStylable() {
		e.fireAllForNode(node)
	}
	for _, ch := range logicalChildren(node) {
		e.propagate(ch, e.registry.AllProperties())
	}
}

// fireAllForNode clears every pseudo-keyed style map on n and, for each one
// that existed, fires a change event listing every known property index. A
// map installed via ImportCascadedStyleMaps is fixed and survives: it was
// built by a different engine for a structurally parallel subtree, and
// this engine's own mutations must not make it disappear only to have it
// rebuilt from n's own (likely nonexistent) cascade inputs.
func (e *Engine) fireAllForNode(n *dom.Node) {
	keys := n.StyleSlotKeys()
	if len(keys) == 0 {
		return
	}
	for _, pseudo := range keys {
		if sm, ok := e.styleMapOf(n, pseudo); ok && sm.fixedCascadedStyle {
			continue
		}
		n.ClearStyleSlot(pseudo)
		e.bus.Fire(ChangeEvent{Engine: e, Element: n, Pseudo: pseudo, Properties: e.registry.AllProperties()})
	}
}

// propagate walks node's cached style maps, clearing and collecting the
// subset of props that are parentRelative, extends that set with
// same-element relative dependents, fires a change event for the union,
// and recurses into logical children with that union (stopping once it's
// empty).
func (e *Engine) propagate(node *dom.Node, props []PropertyIndex) {
	if node == nil || len(props) == 0 {
		return
	}
	var aggregated []PropertyIndex
	aggSeen := make(map[PropertyIndex]bool)

	if node.IsStylable() {
		for _, pseudo := range node.StyleSlotKeys() {
			sm, ok := e.styleMapOf(node, pseudo)
			if !ok || sm.fixedCascadedStyle {
				continue
			}
			seen := make(map[PropertyIndex]bool)
			var touched []PropertyIndex
			for _, idx := range props {
				if seen[idx] {
					continue
				}
				if sm.ParentRelative(idx) {
					sm.clearComputed(idx)
					touched = append(touched, idx)
					seen[idx] = true
				}
			}
			touched = append(touched, e.relativeDependents(sm, touched, seen)...)
			if len(touched) == 0 {
				continue
			}
			e.bus.Fire(ChangeEvent{Engine: e, Element: node, Pseudo: pseudo, Properties: touched})
			for _, idx := range touched {
				if !aggSeen[idx] {
					aggregated = append(aggregated, idx)
					aggSeen[idx] = true
				}
			}
		}
	}

	if len(aggregated) == 0 {
		return
	}
	for _, ch := range logicalChildren(node) {
		e.propagate(ch, aggregated)
	}
}

// relativeDependents extends a touched-property set with the same-element
// relative dependents: if touched contains the element's own
// font-size/line-height/color index, every slot flagged
// fontSizeRelative/lineHeightRelative/colorRelative is added too (and its
// computed state cleared). seen is mutated to include whatever is returned.
func (e *Engine) relativeDependents(sm *StyleMap, touched []PropertyIndex, seen map[PropertyIndex]bool) []PropertyIndex {
	fsIdx, lhIdx, colorIdx := e.registry.FontSizeIndex(), e.registry.LineHeightIndex(), e.registry.ColorIndex()
	var wantFS, wantLH, wantColor bool
	for _, idx := range touched {
		switch idx {
		case fsIdx:
			wantFS = true
		case lhIdx:
			wantLH = true
		case colorIdx:
			wantColor = true
		}
	}
	if !wantFS && !wantLH && !wantColor {
		return nil
	}
	var extra []PropertyIndex
	for _, idx := range e.registry.AllProperties() {
		if seen[idx] {
			continue
		}
		if (wantFS && sm.FontSizeRelative(idx)) || (wantLH && sm.LineHeightRelative(idx)) || (wantColor && sm.ColorRelative(idx)) {
			sm.clearComputed(idx)
			seen[idx] = true
			extra = append(extra, idx)
		}
	}
	return extra
}
