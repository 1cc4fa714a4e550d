package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LoadHTML parses r as HTML using golang.org/x/net/html and converts the
// result into a Document built from this package's own node type. <style>
// elements are marked as stylesheet carriers (their text content becomes
// the tracked sheet text) rather than being given ordinary text-node
// children, since this package has no separate "child text node" model for
// carrier content (see cascade's onCharacterDataModified for the two
// character-data models this implies).
func LoadHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := NewDocument()
	convertChildren(doc, doc.Root(), root)
	return doc, nil
}

func convertChildren(doc *Document, parent *Node, htmlParent *html.Node) {
	for c := htmlParent.FirstChild; c != nil; c = c.NextSibling {
		if n := convertNode(doc, c); n != nil {
			parent.AppendChild(n)
			if !n.IsStylesheetCarrier() {
				convertChildren(doc, n, c)
			}
		} else if c.Type == html.DocumentNode || c.Type == html.DoctypeNode {
			convertChildren(doc, parent, c)
		}
	}
}

func convertNode(doc *Document, hn *html.Node) *Node {
	switch hn.Type {
	case html.ElementNode:
		local := elementLocalName(hn)
		if local == "style" {
			return doc.CreateStyleSheetCarrier("", local, styleElementText(hn))
		}
		n := doc.CreateElement(hn.Namespace, local)
		for _, a := range hn.Attr {
			n.SetAttribute(a.Namespace, a.Key, a.Val)
		}
		return n
	case html.TextNode:
		return doc.CreateText(hn.Data)
	case html.CommentNode:
		return doc.CreateComment(hn.Data)
	default:
		return nil
	}
}

// elementLocalName prefers the well-known atom's string form so that a tag
// spelled with unusual casing in the source still normalizes the way an
// HTML parser is expected to.
func elementLocalName(hn *html.Node) string {
	if hn.DataAtom != atom.Atom(0) {
		return hn.DataAtom.String()
	}
	return hn.Data
}

func styleElementText(hn *html.Node) string {
	var b strings.Builder
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
