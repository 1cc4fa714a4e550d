package cascade_test

import (
	"testing"

	"github.com/inkbound/cssengine/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Idempotent compute: querying the same property twice without an
// intervening mutation returns an equal value both times.
func TestPropertyIdempotentCompute(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserAgentStyleSheet("p { color: red }"))
	p := doc.CreateElement("", "p")
	doc.Root().AppendChild(p)

	idx := colorIndex(t, engine)
	v1, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)
	v2, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

// Inheritance law: an inherited property with no cascaded value on a child
// resolves to its parent's computed value.
func TestPropertyInheritanceLaw(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserAgentStyleSheet("body { color: red }"))
	body := doc.CreateElement("", "body")
	doc.Root().AppendChild(body)
	span := doc.CreateElement("", "span")
	body.AppendChild(span)

	idx := colorIndex(t, engine)
	parentVal, err := engine.GetComputedStyle(body, "", idx)
	require.NoError(t, err)
	childVal, err := engine.GetComputedStyle(span, "", idx)
	require.NoError(t, err)
	assert.Equal(t, style.Unwrap(parentVal), style.Unwrap(childVal))
}

// Inheritance law after invalidation: once a child's inherited value is
// cached, changing the parent's own cascaded value must make the child
// re-inherit the parent's *new* computed value on next query, not replay
// the stale cached one.
func TestPropertyInheritanceLawAfterParentMutation(t *testing.T) {
	engine, doc := newTestEngine(t)
	carrier := doc.CreateStyleSheetCarrier("", "style", "body { color: red }")
	doc.Root().AppendChild(carrier)
	body := doc.CreateElement("", "body")
	doc.Root().AppendChild(body)
	span := doc.CreateElement("", "span")
	body.AppendChild(span)

	idx := colorIndex(t, engine)
	_, err := engine.GetComputedStyle(span, "", idx)
	require.NoError(t, err)

	carrier.SetCharacterData("body { color: blue }")
	childVal, err := engine.GetComputedStyle(span, "", idx)
	require.NoError(t, err)
	parentVal, err := engine.GetComputedStyle(body, "", idx)
	require.NoError(t, err)
	assert.Equal(t, style.Unwrap(parentVal), style.Unwrap(childVal))
	cv := style.Unwrap(childVal).(style.ColorValue)
	r, g, b, _ := cv.RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.NotZero(t, b, "child must re-inherit the parent's updated color, not the stale cached one")
}

// Default law: a non-inherited property absent from the cascade resolves to
// its manager's default value, never to an ancestor's cascaded value.
func TestPropertyDefaultLaw(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserAgentStyleSheet("body { background-color: red }"))
	body := doc.CreateElement("", "body")
	doc.Root().AppendChild(body)
	span := doc.CreateElement("", "span")
	body.AppendChild(span)

	idx := engine.Registry().IndexOf("background-color")
	require.NotEqual(t, -1, int(idx))
	v, err := engine.GetComputedStyle(span, "", idx)
	require.NoError(t, err)
	cv := style.Unwrap(v).(style.ColorValue)
	_, _, _, a := cv.RGBA()
	assert.Zero(t, a, "background-color default is transparent")
}

// Cascade monotonicity: an author rule beats a user-agent rule with the same
// selector, and once the author sheet's text changes, the updated author
// value still wins rather than reverting to the user-agent declaration it
// had already beaten.
func TestPropertyCascadeMonotonicity(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserAgentStyleSheet("p { color: red }"))
	p := doc.CreateElement("", "p")
	doc.Root().AppendChild(p)
	carrier := doc.CreateStyleSheetCarrier("", "style", "p { color: green }")
	doc.Root().AppendChild(carrier)

	idx := colorIndex(t, engine)
	v, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)
	cv := style.Unwrap(v).(style.ColorValue)
	_, g, _, _ := cv.RGBA()
	assert.NotZero(t, g, "author rule must win over user-agent rule")

	carrier.SetCharacterData("p { color: blue }")
	v2, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)
	cv2 := style.Unwrap(v2).(style.ColorValue)
	r2, g2, b2, _ := cv2.RGBA()
	assert.Zero(t, r2)
	assert.Zero(t, g2)
	assert.NotZero(t, b2, "author rule must still win, now with its updated value")
}

// Relative dependency: a font-size-relative line-height slot is marked
// fontSizeRelative once computed, so a later font-size change invalidates
// it via propagate/relativeDependents.
func TestPropertyRelativeDependency(t *testing.T) {
	engine, doc := newTestEngine(t)
	carrier := doc.CreateStyleSheetCarrier("", "style", "span { line-height: 2 }")
	doc.Root().AppendChild(carrier)
	span := doc.CreateElement("", "span")
	span.SetAttribute("", "style", "font-size:10px")
	doc.Root().AppendChild(span)

	lhIdx := engine.Registry().IndexOf("line-height")
	v, err := engine.GetComputedStyle(span, "", lhIdx)
	require.NoError(t, err)
	lv := style.Unwrap(v).(style.LengthValue)
	assert.InDelta(t, 20.0, lv.PXAmount(), 0.001)

	span.SetAttribute("", "style", "font-size:5px")
	v2, err := engine.GetComputedStyle(span, "", lhIdx)
	require.NoError(t, err)
	lv2 := style.Unwrap(v2).(style.LengthValue)
	assert.InDelta(t, 10.0, lv2.PXAmount(), 0.001)
}

// Selector-attribute minimality: mutating an attribute that no loaded
// selector references, and that is not the style attribute or a
// registered hint, produces zero change events.
func TestPropertySelectorAttributeMinimality(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserAgentStyleSheet("p { color: red }"))
	p := doc.CreateElement("", "p")
	doc.Root().AppendChild(p)

	idx := colorIndex(t, engine)
	_, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)

	listener := &recordingListener{}
	engine.AddChangeListener(listener)
	p.SetAttribute("", "data-irrelevant", "whatever")

	assert.Empty(t, listener.events)
}

// Propagation: mutating an inherited property's cascaded value on a parent
// fires change events reaching a child that has a parent-relative computed
// slot for that property.
func TestPropertyPropagationToDescendants(t *testing.T) {
	engine, doc := newTestEngine(t)
	carrier := doc.CreateStyleSheetCarrier("", "style", "body { color: red }")
	doc.Root().AppendChild(carrier)
	body := doc.CreateElement("", "body")
	doc.Root().AppendChild(body)
	span := doc.CreateElement("", "span")
	body.AppendChild(span)

	idx := colorIndex(t, engine)
	_, err := engine.GetComputedStyle(span, "", idx)
	require.NoError(t, err)

	listener := &recordingListener{}
	engine.AddChangeListener(listener)
	carrier.SetCharacterData("body { color: blue }")

	var sawSpan bool
	for _, evt := range listener.events {
		if evt.Element == span {
			sawSpan = true
		}
	}
	assert.True(t, sawSpan, "child inheriting color must be notified when the parent's cascaded color changes")
}
