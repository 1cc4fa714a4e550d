package cascade

import "github.com/inkbound/cssengine/dom"

// scanStylesheetNodes walks the document collecting every stylesheet-
// carrier node in document order. Cached until a mutation invalidates it:
// node insert/remove/subtree-modified/character-data-modified on a
// stylesheet carrier.
func (e *Engine) scanStylesheetNodes() []*dom.Node {
	if e.stylesheetNodesValid {
		return e.stylesheetNodes
	}
	var nodes []*dom.Node
	if root := e.doc.Root(); root != nil {
		dom.Walk(root, func(n *dom.Node) {
			if n.IsStylesheetCarrier() {
				nodes = append(nodes, n)
			}
		})
	}
	e.stylesheetNodes = nodes
	e.stylesheetNodesValid = true
	return nodes
}

// authorStyleSheets returns the parsed Stylesheet for every stylesheet-
// carrier node currently in the document, reparsing lazily whenever the
// stylesheet-node scan itself was invalidated (a cheap proxy for "the
// carrier's text may have changed" that also covers carriers being
// added/removed).
func (e *Engine) authorStyleSheets() []*Stylesheet {
	if e.authorSheetsValid {
		return e.authorSheets
	}
	nodes := e.scanStylesheetNodes()
	sheets := make([]*Stylesheet, 0, len(nodes))
	for _, n := range nodes {
		sheet, err := e.ParseStyleSheet(n.SheetText(), e.documentURI)
		if err != nil {
			tracer().Errorf("cascade: author stylesheet parse error: %s", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	e.authorSheets = sheets
	e.authorSheetsValid = true
	e.selectorAttrsValid = false
	return sheets
}

// invalidateStylesheetCache drops the cached stylesheet-node list and the
// parsed author sheets it feeds, forcing both to be rebuilt on next use.
func (e *Engine) invalidateStylesheetCache() {
	e.stylesheetNodesValid = false
	e.authorSheetsValid = false
	e.selectorAttrsValid = false
}

// selectorAttributes returns the set of attribute names referenced by any
// selector in any currently-active stylesheet (UA, User or author), used by
// the attribute-mutation dispatch to decide whether a mutated attribute can
// possibly affect the cascade through selector matching.
func (e *Engine) selectorAttributes() map[string]struct{} {
	if e.selectorAttrsValid {
		return e.selectorAttrs
	}
	set := make(map[string]struct{})
	fill := func(sheet *Stylesheet) {
		if sheet == nil {
			return
		}
		fillFromRules(sheet.Rules, set)
	}
	fill(e.uaSheet)
	fill(e.userSheet)
	for _, sheet := range e.authorStyleSheets() {
		fill(sheet)
	}
	e.selectorAttrs = set
	e.selectorAttrsValid = true
	return set
}

func fillFromRules(rules []Rule, set map[string]struct{}) {
	for _, r := range rules {
		switch rr := r.(type) {
		case *StyleRule:
			rr.Selectors.FillAttributeSet(set)
		case *MediaRule:
			fillFromRules(rr.Rules, set)
		case *ImportRule:
			fillFromRules(rr.Rules, set)
		}
	}
}
