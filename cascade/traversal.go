package cascade

import "github.com/inkbound/cssengine/dom"

// logicalParent reports an imported subtree's root's host element's parent
// as its logical parent, so cascade and invalidation see the import as a
// live subtree rather than a disjoint tree.
func logicalParent(n *dom.Node) *dom.Node {
	if host := n.ImportHost(); host != nil {
		return host.Parent()
	}
	return n.Parent()
}

// importedChild reports that an import host's logical first child is the
// first child of the subtree it imports, not any physical child it might
// also have.
func importedChild(n *dom.Node) *dom.Node {
	if !n.IsImportHost() {
		return nil
	}
	root := n.ImportedRoot()
	if root == nil {
		return nil
	}
	return root.FirstChild()
}

// logicalChildren returns n's logical children: the imported root in place
// of any physical children. Import hosts in this engine are
// leaf-like from the physical tree's perspective (their real content lives
// in the imported subtree), so the imported root, if any, is returned
// instead of physical children.
func logicalChildren(n *dom.Node) []*dom.Node {
	if n.IsImportHost() {
		if root := n.ImportedRoot(); root != nil {
			return []*dom.Node{root}
		}
		return nil
	}
	return n.Children()
}

// nearestStylableAncestor ascends logical parents starting at n's own
// logical parent, stopping at the first stylable element; used by the
// computed-value resolver's inheritance lookup.
func nearestStylableAncestor(n *dom.Node) *dom.Node {
	cur := logicalParent(n)
	for cur != nil {
		if cur.IsStylable() {
			return cur
		}
		cur = logicalParent(cur)
	}
	return nil
}

// walkLogical visits n and every logical descendant, depth-first pre-order.
func walkLogical(n *dom.Node, visit func(*dom.Node)) {
	visit(n)
	for _, ch := range logicalChildren(n) {
		walkLogical(ch, visit)
	}
}
