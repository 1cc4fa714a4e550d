package cssdbg

import (
	"fmt"

	"github.com/inkbound/cssengine/cascade"
	"github.com/inkbound/cssengine/dom"
	"github.com/xlab/treeprint"
)

// Dump renders root's subtree as indented text, annotating every stylable
// element that already has a cached style map for pseudo with its known
// property slots (origin, importance, cascaded/computed value). Elements
// with no cached map yet are shown bare — Dump never triggers a cascade
// query itself, so it reflects exactly what has been resolved so far.
func Dump(engine *cascade.Engine, root *dom.Node, pseudo string) string {
	t := treeprint.New()
	buildBranch(engine, t, root, pseudo)
	return t.String()
}

func buildBranch(engine *cascade.Engine, parent treeprint.Tree, n *dom.Node, pseudo string) {
	branch := parent.AddBranch(nodeLabel(n))
	if n.IsStylable() {
		if sm, ok := engine.PeekStyleMap(n, pseudo); ok {
			addStyleNodes(engine, branch, sm)
		}
	}
	for _, ch := range n.Children() {
		buildBranch(engine, branch, ch, pseudo)
	}
}

func nodeLabel(n *dom.Node) string {
	switch n.Kind() {
	case dom.ElementNode:
		return "<" + n.LocalName() + ">"
	case dom.TextNode:
		return fmt.Sprintf("#text %q", truncate(n.Data(), 24))
	case dom.CommentNode:
		return "#comment"
	case dom.DocumentNode:
		return "#document"
	}
	return "?"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func addStyleNodes(engine *cascade.Engine, branch treeprint.Tree, sm *cascade.StyleMap) {
	registry := engine.Registry()
	for _, idx := range registry.AllProperties() {
		v, present := sm.Value(idx)
		if !present {
			continue
		}
		name := registry.Manager(idx).PropertyName()
		branch.AddNode(fmt.Sprintf("%s: %v [%s%s%s]", name, v, sm.Origin(idx),
			importantSuffix(sm.Important(idx)), computedSuffix(sm.Computed(idx))))
	}
}

func importantSuffix(important bool) string {
	if important {
		return " !important"
	}
	return ""
}

func computedSuffix(computed bool) string {
	if computed {
		return " computed"
	}
	return " cascaded"
}
