package dom

// Attr is a single attribute of an element: a namespaced name and a value.
type Attr struct {
	Namespace string
	Local     string
	Value     string
}

// Attributes returns all attributes of an element, in declaration order.
func (n *Node) Attributes() []*Attr {
	return n.attrs
}

// GetAttribute returns an attribute's value and whether it is present.
func (n *Node) GetAttribute(namespace, local string) (string, bool) {
	if a := n.findAttr(namespace, local); a != nil {
		return a.Value, true
	}
	return "", false
}

// GetAttributeLocal is a namespace-agnostic convenience wrapper used by
// callers that only care about local name (e.g. class/id/style lookups on
// HTML-like documents where attributes live in the empty namespace).
func (n *Node) GetAttributeLocal(local string) (string, bool) {
	return n.GetAttribute("", local)
}

func (n *Node) findAttr(namespace, local string) *Attr {
	for _, a := range n.attrs {
		if a.Namespace == namespace && a.Local == local {
			return a
		}
	}
	return nil
}

// SetAttribute adds or updates an attribute, dispatching a MODIFICATION or
// ADDITION mutation event through the owning document.
func (n *Node) SetAttribute(namespace, local, value string) {
	if a := n.findAttr(namespace, local); a != nil {
		old := a.Value
		a.Value = value
		if n.owner != nil {
			n.owner.dispatchAttribute(n, a, Modification, old, value)
		}
		return
	}
	a := &Attr{Namespace: namespace, Local: local, Value: value}
	n.attrs = append(n.attrs, a)
	if n.owner != nil {
		n.owner.dispatchAttribute(n, a, Addition, "", value)
	}
}

// RemoveAttribute removes an attribute, dispatching a REMOVAL mutation event.
func (n *Node) RemoveAttribute(namespace, local string) {
	for i, a := range n.attrs {
		if a.Namespace == namespace && a.Local == local {
			old := a.Value
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			if n.owner != nil {
				n.owner.dispatchAttribute(n, a, Removal, old, "")
			}
			return
		}
	}
}
