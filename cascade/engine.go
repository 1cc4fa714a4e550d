package cascade

import (
	"github.com/inkbound/cssengine/cssparser"
	"github.com/inkbound/cssengine/dom"
)

// SecurityHook is invoked before fetching any @import target. A nil hook
// allows every load.
type SecurityHook func(targetURL, documentURL string) error

// Config groups the engine's configuration options: which attribute carries
// inline style, which carries the class list, whether and where to look for
// non-CSS presentational hints, and the set of recognised pseudo-element
// names.
type Config struct {
	StyleAttrNS, StyleAttrLocal string
	ClassAttrNS, ClassAttrLocal string
	WantsHints                  bool
	HintsNS                     string
	PseudoElementNames          []string
	Security                    SecurityHook
}

// Engine is the cascade/compute/invalidation engine. One Engine instance is
// bound to exactly one dom.Document for its lifetime.
type Engine struct {
	registry    *Registry
	doc         *dom.Document
	documentURI string
	cfg         Config

	pseudoNames map[string]struct{}

	uaSheet   *Stylesheet
	userSheet *Stylesheet
	media     cssparser.MediaQuery

	alternateTitle string

	authorSheets      []*Stylesheet
	authorSheetsValid bool

	stylesheetNodes      []*dom.Node
	stylesheetNodesValid bool

	selectorAttrs      map[string]struct{}
	selectorAttrsValid bool

	bus listenerBus

	// Deferred invalidation state: a stylesheet-carrier removal or a
	// stylable-sibling removal defers its tree-wide effect until the
	// matching subtree-modified event, because the node is still attached
	// (and its siblings still addressable) at removal time.
	styleSheetRemoved      bool
	removedStylableSibling *dom.Node

	// cssBaseURI is scratch state during one cascade/parse call; every
	// public entry point clears it on exit, including error paths.
	cssBaseURI string

	disposed bool
}

// NewEngine constructs an Engine bound to doc, using registry for property
// dispatch. The engine subscribes to doc's mutation stream immediately;
// call Dispose to unsubscribe and release cached style maps.
func NewEngine(doc *dom.Document, documentURI string, registry *Registry, cfg Config) *Engine {
	e := &Engine{
		registry:    registry,
		doc:         doc,
		documentURI: documentURI,
		cfg:         cfg,
		pseudoNames: make(map[string]struct{}, len(cfg.PseudoElementNames)),
		media:       cssparser.MediaQuery{Types: []cssparser.MediaType{{Name: "all"}}},
	}
	for _, p := range cfg.PseudoElementNames {
		e.pseudoNames[p] = struct{}{}
	}
	doc.AddMutationListener(e)
	return e
}

// Registry returns the engine's property registry.
func (e *Engine) Registry() *Registry { return e.registry }

// SetUserAgentStyleSheet installs the origin-UserAgent stylesheet, replacing
// any previous one, and invalidates every stylable element's computed style.
func (e *Engine) SetUserAgentStyleSheet(cssText string) error {
	sheet, err := e.ParseStyleSheet(cssText, e.documentURI)
	if err != nil {
		return err
	}
	e.uaSheet = sheet
	e.invalidateTree(e.doc.Root())
	return nil
}

// SetUserStyleSheet installs the origin-User stylesheet.
func (e *Engine) SetUserStyleSheet(cssText string) error {
	sheet, err := e.ParseStyleSheet(cssText, e.documentURI)
	if err != nil {
		return err
	}
	e.userSheet = sheet
	e.invalidateTree(e.doc.Root())
	return nil
}

// SetMedia parses mediaString into the engine's active media list and
// invalidates the whole document, since any @media-scoped rule may now
// apply or cease to apply.
func (e *Engine) SetMedia(mediaString string) error {
	mq, err := cssparser.ParseMediaQuery(mediaString)
	if err != nil {
		return &SyntaxError{URI: e.documentURI, Err: err}
	}
	e.media = mq
	e.invalidateTree(e.doc.Root())
	return nil
}

// SetAlternateStyleSheet selects the active alternate-stylesheet title and
// invalidates the whole document.
func (e *Engine) SetAlternateStyleSheet(title string) {
	e.alternateTitle = title
	e.invalidateTree(e.doc.Root())
}

// AddChangeListener and RemoveChangeListener register/unregister a
// ChangeListener for the change-notification bus. Safe to call while a
// notification is in flight.
func (e *Engine) AddChangeListener(l ChangeListener)    { e.bus.Add(l) }
func (e *Engine) RemoveChangeListener(l ChangeListener) { e.bus.Remove(l) }

// Dispose detaches the engine from its document's mutation stream and
// clears every computed style map it created.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.doc.RemoveMutationListener(e)
	if root := e.doc.Root(); root != nil {
		dom.Walk(root, func(n *dom.Node) {
			n.ClearAllStyleSlots()
		})
	}
}

func (e *Engine) clearScratch() {
	e.cssBaseURI = ""
}

// styleMapKey returns the key an element's computed style map is stored
// under in its StyleSlot table: "" for the plain element style, or the
// pseudo name.
func styleMapKey(pseudo string) string {
	return pseudo
}

func (e *Engine) styleMapOf(element *dom.Node, pseudo string) (*StyleMap, bool) {
	v, ok := element.StyleSlot(styleMapKey(pseudo))
	if !ok {
		return nil, false
	}
	sm, ok := v.(*StyleMap)
	return sm, ok
}

func (e *Engine) setStyleMap(element *dom.Node, pseudo string, sm *StyleMap) {
	element.SetStyleSlot(styleMapKey(pseudo), sm)
}

func (e *Engine) clearStyleMap(element *dom.Node, pseudo string) {
	element.ClearStyleSlot(styleMapKey(pseudo))
}

// PeekStyleMap returns element's cached style map for pseudo without
// building one, for diagnostics (package cssdbg) and tests that need to
// assert on cache state directly.
func (e *Engine) PeekStyleMap(element *dom.Node, pseudo string) (*StyleMap, bool) {
	return e.styleMapOf(element, pseudo)
}
