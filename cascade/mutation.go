package cascade

import "github.com/inkbound/cssengine/dom"

// HandleMutation implements dom.MutationListener, dispatching each event
// kind to its corresponding invalidation handler. Engines subscribe to
// their document at construction time (NewEngine) and unsubscribe on
// Dispose.
func (e *Engine) HandleMutation(evt dom.MutationEvent) {
	if e.disposed {
		return
	}
	switch evt.Kind {
	case dom.AttributeModified:
		e.onAttributeModified(evt)
	case dom.NodeInserted:
		e.onNodeInserted(evt)
	case dom.NodeRemoved:
		e.onNodeRemoved(evt)
	case dom.SubtreeModified:
		e.onSubtreeModified(evt)
	case dom.CharacterDataModified:
		e.onCharacterDataModified(evt)
	}
}

func (e *Engine) onAttributeModified(evt dom.MutationEvent) {
	if evt.AttrChange > dom.Removal {
		panic("cascade: attribute mutation with unrecognised AttrChange code")
	}
	target := evt.Target
	if !target.IsStylable() {
		return
	}
	sm, ok := e.styleMapOf(target, "")
	if !ok {
		return
	}
	attr := evt.RelatedNode
	if attr == nil {
		return
	}

	if e.cfg.StyleAttrLocal != "" && attr.Local == e.cfg.StyleAttrLocal && attr.Namespace == e.cfg.StyleAttrNS {
		e.inlineStyleUpdate(target, sm, evt)
		return
	}
	if e.cfg.WantsHints && attr.Namespace == e.cfg.HintsNS {
		if idx, ok := e.registry.HintProperty(attr.Local); ok {
			e.hintUpdate(target, sm, idx, evt)
			return
		}
	}
	if _, ok := e.selectorAttributes()[attr.Local]; ok {
		e.invalidateNode(target)
		return
	}
	// Not a style-affecting attribute: ignore, so mutating it never fires a
	// spurious change event.
}

// inlineStyleUpdate handles a change to the inline style attribute,
// unified across ADDITION, MODIFICATION and REMOVAL: a removal is simply a
// modification to an empty declaration list.
func (e *Engine) inlineStyleUpdate(target *dom.Node, sm *StyleMap, evt dom.MutationEvent) {
	decl := &StyleDeclaration{}
	if evt.AttrChange != dom.Removal {
		text, _ := target.GetAttribute(e.cfg.StyleAttrNS, e.cfg.StyleAttrLocal)
		parsed, err := e.ParseStyleDeclaration(text)
		if err != nil {
			tracer().Errorf("cascade: inline style parse error on %q: %s", target.LocalName(), err)
			return
		}
		decl = parsed
	}

	writtenIdx := make(map[PropertyIndex]bool)
	var touched []PropertyIndex
	for _, d := range decl.Declarations {
		writtenIdx[d.PropertyIndex] = true
		if sm.Important(d.PropertyIndex) {
			continue
		}
		wasComputed := sm.Computed(d.PropertyIndex)
		sm.write(d.PropertyIndex, d.Value, InlineAuthor, d.Important)
		if wasComputed {
			touched = append(touched, d.PropertyIndex)
		}
	}

	for _, idx := range e.registry.AllProperties() {
		if writtenIdx[idx] {
			continue
		}
		if sm.Computed(idx) && sm.Origin(idx) == InlineAuthor {
			e.invalidateNode(target)
			return
		}
	}

	seen := make(map[PropertyIndex]bool, len(touched))
	for _, idx := range touched {
		seen[idx] = true
	}
	touched = append(touched, e.relativeDependents(sm, touched, seen)...)
	if len(touched) == 0 {
		return
	}
	e.bus.Fire(ChangeEvent{Engine: e, Element: target, Pseudo: "", Properties: touched})
	for _, ch := range logicalChildren(target) {
		e.propagate(ch, touched)
	}
}

// hintUpdate handles a change to a presentational hint attribute mapped to
// property idx.
func (e *Engine) hintUpdate(target *dom.Node, sm *StyleMap, idx PropertyIndex, evt dom.MutationEvent) {
	if sm.Important(idx) {
		return
	}
	if origin := sm.Origin(idx); origin == Author || origin == InlineAuthor {
		return
	}
	if evt.AttrChange == dom.Removal {
		e.invalidateNode(target)
		return
	}
	v, err := e.ParsePropertyValue(e.registry.Manager(idx).PropertyName(), evt.NewValue)
	if err != nil {
		tracer().Debugf("cascade: dropping hint update: %s", err)
		return
	}
	wasComputed := sm.Computed(idx)
	sm.write(idx, v, NonCSS, false)
	if !wasComputed {
		return
	}
	seen := map[PropertyIndex]bool{idx: true}
	touched := append([]PropertyIndex{idx}, e.relativeDependents(sm, []PropertyIndex{idx}, seen)...)
	e.bus.Fire(ChangeEvent{Engine: e, Element: target, Pseudo: "", Properties: touched})
	for _, ch := range logicalChildren(target) {
		e.propagate(ch, touched)
	}
}

func (e *Engine) onNodeInserted(evt dom.MutationEvent) {
	target := evt.Target
	if target.IsStylesheetCarrier() {
		e.invalidateStylesheetCache()
		e.invalidateTree(e.doc.Root())
		return
	}
	if target.IsStylable() {
		for sib := target.NextSibling(); sib != nil; sib = sib.NextSibling() {
			e.invalidateNode(sib)
		}
	}
}

func (e *Engine) onNodeRemoved(evt dom.MutationEvent) {
	target := evt.Target
	// The subtree's own cached maps must go immediately: nothing else will
	// ever invalidate them once the node is detached.
	walkLogical(target, func(n *dom.Node) {
		if n.IsStylable() {
			n.ClearAllStyleSlots()
		}
	})
	if target.IsStylesheetCarrier() {
		e.styleSheetRemoved = true
		return
	}
	if target.IsStylable() {
		e.removedStylableSibling = target.NextSibling()
	}
}

func (e *Engine) onSubtreeModified(evt dom.MutationEvent) {
	if e.styleSheetRemoved {
		e.invalidateStylesheetCache()
		e.invalidateTree(e.doc.Root())
		e.styleSheetRemoved = false
		return
	}
	if e.removedStylableSibling != nil {
		for sib := e.removedStylableSibling; sib != nil; sib = sib.NextSibling() {
			e.invalidateNode(sib)
		}
		e.removedStylableSibling = nil
	}
}

// onCharacterDataModified handles both the direct model (the mutated node
// is itself the stylesheet carrier, e.g. dom.CreateStyleSheetCarrier's
// single-node representation) and the classic child-text-node model (the
// carrier is the mutated node's parent), since this engine's concrete dom
// package uses the former for stylesheet carriers even though a DOM built
// on a real markup parser would more commonly use the latter.
func (e *Engine) onCharacterDataModified(evt dom.MutationEvent) {
	target := evt.Target
	carrier := target
	if !carrier.IsStylesheetCarrier() {
		carrier = target.Parent()
	}
	if carrier == nil || !carrier.IsStylesheetCarrier() {
		return
	}
	e.invalidateStylesheetCache()
	e.invalidateTree(e.doc.Root())
}
