package cascade_test

import (
	"testing"

	"github.com/inkbound/cssengine/cascade"
	"github.com/inkbound/cssengine/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: UA sheet sets color:red, author sheet sets color:green with
// no importance -- author wins.
func TestScenarioAuthorOverridesUserAgent(t *testing.T) {
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
	r, g, b, _ := cv.RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, g)
	assert.Zero(t, b)
}

// Scenario 2: user !important beats author !important.
func TestScenarioUserImportantBeatsAuthorImportant(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserStyleSheet("p { color: blue !important }"))
	p := doc.CreateElement("", "p")
	doc.Root().AppendChild(p)
	carrier := doc.CreateStyleSheetCarrier("", "style", "p { color: green !important }")
	doc.Root().AppendChild(carrier)

	idx := colorIndex(t, engine)
	v, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)
	cv := style.Unwrap(v).(style.ColorValue)
	r, g, b, _ := cv.RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.NotZero(t, b)
}

// Scenario 3: inline font-size drives a relative line-height; changing the
// inline font-size fires a change event listing both indices.
func TestScenarioFontSizeLineHeightRelativeInvalidation(t *testing.T) {
	engine, doc := newTestEngine(t)
	carrier := doc.CreateStyleSheetCarrier("", "style", "span { line-height: 1.5 }")
	doc.Root().AppendChild(carrier)
	span := doc.CreateElement("", "span")
	span.SetAttribute("", "style", "font-size:20px")
	doc.Root().AppendChild(span)

	fsIdx := engine.Registry().IndexOf("font-size")
	lhIdx := engine.Registry().IndexOf("line-height")

	lh, err := engine.GetComputedStyle(span, "", lhIdx)
	require.NoError(t, err)
	lv := style.Unwrap(lh).(style.LengthValue)
	assert.InDelta(t, 30.0, lv.PXAmount(), 0.001) // 1.5 * 20px

	listener := &recordingListener{}
	engine.AddChangeListener(listener)
	span.SetAttribute("", "style", "font-size:10px")

	var touched []cascade.PropertyIndex
	for _, evt := range listener.events {
		touched = append(touched, evt.Properties...)
	}
	assert.Contains(t, touched, fsIdx)
	assert.Contains(t, touched, lhIdx)

	lh2, err := engine.GetComputedStyle(span, "", lhIdx)
	require.NoError(t, err)
	lv2 := style.Unwrap(lh2).(style.LengthValue)
	assert.InDelta(t, 15.0, lv2.PXAmount(), 0.001) // 1.5 * 10px
}

// Scenario 4: two sibling <a> elements matched by "a + a"; inserting a new
// <a> between them invalidates a2, which now follows the inserted element.
func TestScenarioSiblingInsertionInvalidatesAdjacency(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserAgentStyleSheet("a + a { color: red }"))
	body := doc.CreateElement("", "body")
	doc.Root().AppendChild(body)
	a1 := doc.CreateElement("", "a")
	a2 := doc.CreateElement("", "a")
	body.AppendChild(a1)
	body.AppendChild(a2)

	idx := colorIndex(t, engine)
	_, err := engine.GetComputedStyle(a2, "", idx)
	require.NoError(t, err)
	_, hadMap := engine.PeekStyleMap(a2, "")
	require.True(t, hadMap)

	a3 := doc.CreateElement("", "a")
	body.InsertBefore(a3, a2)

	_, stillCached := engine.PeekStyleMap(a2, "")
	assert.False(t, stillCached, "inserting a preceding sibling must invalidate a2's cached style")
}
