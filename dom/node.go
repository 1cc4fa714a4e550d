package dom

import (
	"github.com/inkbound/cssengine/tree"
)

// Kind distinguishes the handful of node types the engine needs to reason
// about. It intentionally does not attempt to be a complete DOM NodeType
// enumeration (no processing instructions, no CDATA sections, ...).
type Kind uint8

const (
	DocumentNode Kind = iota
	ElementNode
	TextNode
	CommentNode
)

// Node is a single node of a markup tree. Every Node embeds the generic,
// concurrency-safe tree.Node so parent/child/sibling navigation is shared
// with any other tree package built on top of package tree.
type Node struct {
	tree.Node[*Node]

	kind      Kind
	namespace string
	local     string // local (tag) name for elements; empty otherwise
	data      string // character data for text/comment nodes

	attrs []*Attr

	// stylable marks an element as participating in cascade/computed-style
	// queries. Only stylable elements ever carry style maps.
	stylable bool

	// stylesheetCarrier marks a node (typically a <style> element or a
	// processing-instruction stand-in) whose character-data content is a
	// CSS stylesheet the engine must track.
	stylesheetCarrier bool
	sheetText         string

	// importHost/importedRoot implement the "imported subtree" concept: an
	// import host's imported subtree participates in cascade and
	// invalidation as if it were a logical child of the host.
	importHost   bool
	importedRoot *Node
	importHostOf *Node // set on the root of an imported subtree, pointing back to its host

	owner *Document

	// styleSlots holds up to one opaque per-pseudo style map per element
	// (one for the element itself plus one per supported pseudo-element).
	// The concrete value stored here is owned and type-asserted by package
	// cascade; dom never looks inside it,
	// which keeps this package free of any dependency on cascade.
	styleSlots map[string]any
}

// NewElement creates a new, unattached element node.
func NewElement(namespace, local string) *Node {
	n := &Node{kind: ElementNode, namespace: namespace, local: local, stylable: true}
	n.Payload = n
	return n
}

// NewText creates a new, unattached text node.
func NewText(data string) *Node {
	n := &Node{kind: TextNode, data: data}
	n.Payload = n
	return n
}

// NewComment creates a new, unattached comment node.
func NewComment(data string) *Node {
	n := &Node{kind: CommentNode, data: data}
	n.Payload = n
	return n
}

func newDocumentNode() *Node {
	n := &Node{kind: DocumentNode}
	n.Payload = n
	return n
}

// Of returns the Node payload of a generic tree node, or nil.
func Of(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// AsTreeNode exposes the embedded generic tree node explicitly; useful when
// calling tree.Node methods that return *tree.Node[*Node] and need to be
// converted back with Of.
func (n *Node) AsTreeNode() *tree.Node[*Node] {
	return &n.Node
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// LocalName returns the local (tag) name of an element, or "" otherwise.
func (n *Node) LocalName() string { return n.local }

// Namespace returns the element's namespace URI, or "".
func (n *Node) Namespace() string { return n.namespace }

// Data returns character data for text/comment nodes.
func (n *Node) Data() string { return n.data }

// Owner returns the owning Document, if the node has been attached to one.
func (n *Node) Owner() *Document { return n.owner }

// IsStylable reports whether this node participates in cascade queries.
func (n *Node) IsStylable() bool { return n.kind == ElementNode && n.stylable }

// IsStylesheetCarrier reports whether this node's character data is tracked
// as a CSS stylesheet source.
func (n *Node) IsStylesheetCarrier() bool { return n.stylesheetCarrier }

// IsImportHost reports whether this node hosts an imported subtree.
func (n *Node) IsImportHost() bool { return n.importHost }

// ImportedRoot returns the root of the imported subtree, or nil.
func (n *Node) ImportedRoot() *Node { return n.importedRoot }

// SetImportedRoot marks n as an import host for root. Passing nil clears the
// import relationship. The imported root's host link is updated so
// logical-parent traversal (package cascade) can walk back out of the
// imported subtree.
func (n *Node) SetImportedRoot(root *Node) {
	if n.importedRoot != nil {
		n.importedRoot.importHostOf = nil
	}
	n.importHost = root != nil
	n.importedRoot = root
	if root != nil {
		root.importHostOf = n
	}
}

// ImportHost returns the host element for a node that is the root of an
// imported subtree, or nil.
func (n *Node) ImportHost() *Node { return n.importHostOf }

// MarkStylesheetCarrier flags a node as carrying stylesheet character data.
// Used by tests and document builders; ordinarily this would be decided by
// the concrete document format (e.g. a <style> element).
func (n *Node) MarkStylesheetCarrier() { n.stylesheetCarrier = true }

// SheetText returns the raw text tracked for a stylesheet-carrying node.
func (n *Node) SheetText() string { return n.sheetText }

// StyleSlot returns the opaque style-map value stored for a given pseudo key
// ("" for the element itself), and whether one is present.
func (n *Node) StyleSlot(pseudo string) (any, bool) {
	if n.styleSlots == nil {
		return nil, false
	}
	v, ok := n.styleSlots[pseudo]
	return v, ok
}

// SetStyleSlot installs an opaque style-map value for a pseudo key.
func (n *Node) SetStyleSlot(pseudo string, v any) {
	if n.styleSlots == nil {
		n.styleSlots = make(map[string]any)
	}
	n.styleSlots[pseudo] = v
}

// StyleSlotKeys returns the pseudo keys currently holding a cached style
// map on n, in no particular order.
func (n *Node) StyleSlotKeys() []string {
	if len(n.styleSlots) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.styleSlots))
	for k := range n.styleSlots {
		keys = append(keys, k)
	}
	return keys
}

// ClearStyleSlot removes the style-map value for a single pseudo key.
func (n *Node) ClearStyleSlot(pseudo string) {
	delete(n.styleSlots, pseudo)
}

// ClearAllStyleSlots removes every cached style map (all pseudo keys) for n.
// Reports whether anything was actually cleared.
func (n *Node) ClearAllStyleSlots() bool {
	if len(n.styleSlots) == 0 {
		return false
	}
	n.styleSlots = nil
	return true
}

// Parent returns the parent Node, or nil at the root.
func (n *Node) Parent() *Node {
	return Of(n.Node.Parent())
}

// FirstChild returns the first child Node, or nil.
func (n *Node) FirstChild() *Node {
	for i := 0; i < n.ChildCount(); i++ {
		if ch, ok := n.Child(i); ok {
			return Of(ch)
		}
	}
	return nil
}

// NextSibling returns the next sibling Node, or nil.
func (n *Node) NextSibling() *Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	idx := p.IndexOfChild(&n.Node)
	if idx < 0 {
		return nil
	}
	for i := idx + 1; i < p.ChildCount(); i++ {
		if ch, ok := p.Child(i); ok {
			return Of(ch)
		}
	}
	return nil
}

// PreviousSibling returns the preceding sibling Node, or nil.
func (n *Node) PreviousSibling() *Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	idx := p.IndexOfChild(&n.Node)
	if idx <= 0 {
		return nil
	}
	for i := idx - 1; i >= 0; i-- {
		if ch, ok := p.Child(i); ok {
			return Of(ch)
		}
	}
	return nil
}

// Children returns the element's direct child nodes, in order.
func (n *Node) Children() []*Node {
	kids := n.Node.Children(true)
	out := make([]*Node, 0, len(kids))
	for _, k := range kids {
		out = append(out, Of(k))
	}
	return out
}

// AppendChild attaches ch as the last child of n and fires a nodeInserted
// mutation event through n's owning document, if any.
func (n *Node) AppendChild(ch *Node) {
	n.AddChild(ch.AsTreeNode())
	ch.owner = n.owner
	if n.owner != nil {
		n.owner.dispatchNodeInserted(ch)
	}
}

// InsertBefore inserts ch as n's child immediately preceding before, or as
// the last child if before is nil or not found among n's current children.
// Fires a NodeInserted mutation event through n's owning document.
func (n *Node) InsertBefore(ch, before *Node) {
	idx := -1
	if before != nil {
		idx = n.IndexOfChild(before.AsTreeNode())
	}
	if idx < 0 {
		n.AppendChild(ch)
		return
	}
	n.InsertChildAt(idx, ch.AsTreeNode())
	ch.owner = n.owner
	if n.owner != nil {
		n.owner.dispatchNodeInserted(ch)
	}
}

// RemoveChild detaches ch from n, firing a NodeRemoved event followed by a
// SubtreeModified event targeting n, mirroring legacy DOM3 mutation events.
func (n *Node) RemoveChild(ch *Node) {
	owner := n.owner
	if owner != nil {
		owner.dispatchNodeRemoved(ch)
	}
	ch.Isolate()
	if owner != nil {
		owner.dispatchSubtreeModified(n)
	}
}

// SetCharacterData replaces the character data of a text/comment node (or the
// tracked source text of a stylesheet-carrying node) and fires a
// characterDataModified event.
func (n *Node) SetCharacterData(text string) {
	old := n.data
	n.data = text
	if n.stylesheetCarrier {
		n.sheetText = text
	}
	if n.owner != nil {
		n.owner.dispatchCharacterDataModified(n, old, text)
	}
}
