package dom

// Document owns the node tree and the mutation-event listener list.
type Document struct {
	root      *Node
	listeners []MutationListener
}

// NewDocument creates an empty document with a synthetic document root.
func NewDocument() *Document {
	d := &Document{}
	d.root = newDocumentNode()
	d.root.owner = d
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node { return d.root }

// CreateElement creates a new, unattached element owned by d.
func (d *Document) CreateElement(namespace, local string) *Node {
	n := NewElement(namespace, local)
	n.owner = d
	return n
}

// CreateText creates a new, unattached text node owned by d.
func (d *Document) CreateText(data string) *Node {
	n := NewText(data)
	n.owner = d
	return n
}

// CreateComment creates a new, unattached comment node owned by d.
func (d *Document) CreateComment(data string) *Node {
	n := NewComment(data)
	n.owner = d
	return n
}

// CreateStyleSheetCarrier creates an element node flagged as a stylesheet
// carrier (the DOM analogue of an HTML <style> element), seeded with source
// text.
func (d *Document) CreateStyleSheetCarrier(namespace, local, cssText string) *Node {
	n := d.CreateElement(namespace, local)
	n.stylable = false
	n.MarkStylesheetCarrier()
	n.sheetText = cssText
	return n
}

// Walk visits n and every descendant, depth first, pre-order.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, ch := range n.Children() {
		Walk(ch, visit)
	}
}
