package selector_test

import (
	"testing"

	"github.com/inkbound/cssengine/dom"
	"github.com/inkbound/cssengine/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAB(t *testing.T) (a1, a2 *dom.Node) {
	t.Helper()
	doc := dom.NewDocument()
	body := doc.CreateElement("", "body")
	doc.Root().AppendChild(body)
	a1 = doc.CreateElement("", "a")
	a2 = doc.CreateElement("", "a")
	body.AppendChild(a1)
	body.AppendChild(a2)
	return
}

func TestAdjacentSiblingCombinator(t *testing.T) {
	_, a2 := buildAB(t)
	sel, err := selector.Parse("a + a")
	require.NoError(t, err)
	assert.True(t, sel.Match(a2, ""))
}

func TestAdjacentSiblingDoesNotMatchFirst(t *testing.T) {
	a1, _ := buildAB(t)
	sel, err := selector.Parse("a + a")
	require.NoError(t, err)
	assert.False(t, sel.Match(a1, ""))
}

func TestSpecificityOrdering(t *testing.T) {
	byID, err := selector.Parse("#hero")
	require.NoError(t, err)
	byType, err := selector.Parse("div")
	require.NoError(t, err)
	assert.True(t, byType.Specificity().Less(byID.Specificity()))
}

func TestFillAttributeSet(t *testing.T) {
	sel, err := selector.Parse("div.card[data-x] > #hero")
	require.NoError(t, err)
	set := map[string]struct{}{}
	sel.FillAttributeSet(set)
	for _, want := range []string{"class", "data-x", "id"} {
		if _, ok := set[want]; !ok {
			t.Errorf("expected attribute set to contain %q, got %v", want, set)
		}
	}
}

func TestChildCombinator(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("", "ul")
	child := doc.CreateElement("", "li")
	grandchild := doc.CreateElement("", "span")
	doc.Root().AppendChild(parent)
	parent.AppendChild(child)
	child.AppendChild(grandchild)

	sel, err := selector.Parse("ul > li")
	require.NoError(t, err)
	assert.True(t, sel.Match(child, ""))

	notChild, err := selector.Parse("ul > span")
	require.NoError(t, err)
	assert.False(t, notChild.Match(grandchild, ""))

	descendant, err := selector.Parse("ul span")
	require.NoError(t, err)
	assert.True(t, descendant.Match(grandchild, ""))
}

func TestSelectorListLargestSpecificity(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("", "p")
	el.SetAttribute("", "id", "hero")
	el.SetAttribute("", "class", "card")
	doc.Root().AppendChild(el)

	list, err := selector.ParseList("p, .card, #hero")
	require.NoError(t, err)
	matched, sp := list.Matches(el, "")
	require.True(t, matched)
	assert.Equal(t, selector.Specificity{1, 0, 0}, sp)
}
