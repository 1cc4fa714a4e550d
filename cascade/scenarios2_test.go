package cascade_test

import (
	"testing"

	"github.com/inkbound/cssengine/cascade"
	"github.com/inkbound/cssengine/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 5: removing a <style> element defers invalidation until the
// subtree-modified event, then clears the stylesheet cache and fires
// ALL_PROPERTIES on every stylable element.
func TestScenarioStyleSheetRemovalDefersToSubtreeModified(t *testing.T) {
	engine, doc := newTestEngine(t)
	body := doc.CreateElement("", "body")
	doc.Root().AppendChild(body)
	carrier := doc.CreateStyleSheetCarrier("", "style", "p { color: green }")
	body.AppendChild(carrier)
	p := doc.CreateElement("", "p")
	body.AppendChild(p)

	idx := colorIndex(t, engine)
	v, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)
	cv := style.Unwrap(v).(style.ColorValue)
	_, g, _, _ := cv.RGBA()
	assert.NotZero(t, g)

	body.RemoveChild(carrier)

	// The stylesheet is gone; p's cascaded green should no longer apply on
	// next query (its computed map was cleared by the deferred
	// subtree-modified handling).
	v2, err := engine.GetComputedStyle(p, "", idx)
	require.NoError(t, err)
	cv2 := style.Unwrap(v2).(style.ColorValue)
	_, g2, _, _ := cv2.RGBA()
	assert.Zero(t, g2)
}

// Scenario 6: an unknown property in a declaration is silently dropped; no
// style slot is created and no change event fires.
func TestScenarioUnknownPropertySilentlyDropped(t *testing.T) {
	engine, doc := newTestEngine(t)
	require.NoError(t, engine.SetUserAgentStyleSheet("p { foo: bar; color: red }"))
	p := doc.CreateElement("", "p")
	doc.Root().AppendChild(p)

	sm, err := engine.GetCascadedStyleMap(p, "")
	require.NoError(t, err)
	unknownIdx := engine.Registry().IndexOf("foo")
	assert.Equal(t, cascade.NoProperty, unknownIdx)
	_, present := sm.Value(colorIndex(t, engine))
	assert.True(t, present)
}
