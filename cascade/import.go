package cascade

import "github.com/inkbound/cssengine/dom"

// ImportCascadedStyleMaps recursively copies every cascaded/computed style
// map srcEngine built for srcRoot's subtree onto the structurally parallel
// dstRoot subtree, marking each installed map fixedCascadedStyle so this
// engine's own cascade assembler treats it as read-only and never
// rewrites it.
//
// srcRoot and dstRoot must be root nodes of structurally identical
// subtrees (same shape, same traversal order); this is the caller's
// responsibility to guarantee, typically because dstRoot was itself built
// by cloning srcRoot's document.
func (e *Engine) ImportCascadedStyleMaps(srcRoot *dom.Node, srcEngine *Engine, dstRoot *dom.Node) {
	importOne(srcEngine, e, srcRoot, dstRoot)
}

func importOne(src, dst *Engine, srcNode, dstNode *dom.Node) {
	if srcNode == nil || dstNode == nil {
		return
	}
	if srcNode.IsStylable() && dstNode.IsStylable() {
		for _, pseudo := range srcNode.StyleSlotKeys() {
			sm, ok := src.styleMapOf(srcNode, pseudo)
			if !ok {
				continue
			}
			clone := cloneStyleMap(sm)
			clone.fixedCascadedStyle = true
			dst.setStyleMap(dstNode, pseudo, clone)
		}
	}
	srcChildren := srcNode.Children()
	dstChildren := dstNode.Children()
	n := len(srcChildren)
	if len(dstChildren) < n {
		n = len(dstChildren)
	}
	for i := 0; i < n; i++ {
		importOne(src, dst, srcChildren[i], dstChildren[i])
	}
}

func cloneStyleMap(sm *StyleMap) *StyleMap {
	clone := &StyleMap{slots: make([]slot, len(sm.slots))}
	copy(clone.slots, sm.slots)
	return clone
}
