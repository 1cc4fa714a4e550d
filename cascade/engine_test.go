package cascade_test

import (
	"testing"

	"github.com/inkbound/cssengine/cascade"
	"github.com/inkbound/cssengine/dom"
	"github.com/inkbound/cssengine/style"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *cascade.Registry {
	t.Helper()
	managers := []style.ValueManager{
		style.ColorManager{},
		style.BackgroundColorManager{},
		style.FontSizeManager{},
		style.LineHeightManager{},
		style.DisplayManager{},
	}
	for _, m := range style.NewMarginLonghands() {
		managers = append(managers, m)
	}
	registry, err := cascade.NewRegistry(managers, []style.ShorthandManager{
		style.MarginShorthandManager{},
	})
	require.NoError(t, err)
	return registry
}

func newTestEngine(t *testing.T) (*cascade.Engine, *dom.Document) {
	t.Helper()
	doc := dom.NewDocument()
	registry := newTestRegistry(t)
	engine := cascade.NewEngine(doc, "test://doc", registry, cascade.Config{
		StyleAttrLocal: "style",
	})
	return engine, doc
}

type recordingListener struct {
	events []cascade.ChangeEvent
}

func (r *recordingListener) StyleChanged(evt cascade.ChangeEvent) {
	r.events = append(r.events, evt)
}

func (r *recordingListener) reset() { r.events = nil }

func colorIndex(t *testing.T, e *cascade.Engine) cascade.PropertyIndex {
	t.Helper()
	idx := e.Registry().IndexOf("color")
	require.NotEqual(t, cascade.NoProperty, idx)
	return idx
}
