package dom_test

import (
	"strings"
	"testing"

	"github.com/inkbound/cssengine/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHTMLExtractsStyleAndElements(t *testing.T) {
	src := `<html><head><style>p { color: red }</style></head><body><P class="a">hi</P></body></html>`
	doc, err := dom.LoadHTML(strings.NewReader(src))
	require.NoError(t, err)

	var style, p *dom.Node
	dom.Walk(doc.Root(), func(n *dom.Node) {
		if n.IsStylesheetCarrier() {
			style = n
		}
		if n.Kind() == dom.ElementNode && n.LocalName() == "p" {
			p = n
		}
	})
	require.NotNil(t, style)
	require.NotNil(t, p)
	assert.Contains(t, style.SheetText(), "color: red")
	assert.False(t, p.IsStylesheetCarrier())
	class, ok := p.GetAttribute("", "class")
	assert.True(t, ok)
	assert.Equal(t, "a", class)
}
