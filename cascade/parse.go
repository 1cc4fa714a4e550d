package cascade

import (
	"fmt"
	"strings"

	"github.com/inkbound/cssengine/cssparser"
	"github.com/inkbound/cssengine/selector"
	"github.com/inkbound/cssengine/style"
)

// ParseStyleSheet parses cssText (sourced from baseURI, used only for error
// context and as the base for resolving @import URIs) into a Stylesheet.
// @import rules are resolved via the engine's security hook. CSS requires
// an @import to precede any non-import rule in the source, so any @import
// appearing after the first non-import rule is ignored during resolution
// (it is still recorded as an ImportRule, just never loaded).
func (e *Engine) ParseStyleSheet(cssText, baseURI string) (*Stylesheet, error) {
	defer e.clearScratch()
	e.cssBaseURI = baseURI
	raw, err := cssparser.ParseStyleSheet(cssText)
	if err != nil {
		return nil, &SyntaxError{URI: baseURI, Snippet: snippet(cssText), Err: err}
	}
	sheet := &Stylesheet{}
	seenNonImport := false
	for _, r := range raw.Rules {
		rule, isImport, err := e.convertRule(r, baseURI, &seenNonImport)
		if err != nil {
			return nil, err
		}
		if rule != nil {
			sheet.Rules = append(sheet.Rules, rule)
		}
		if !isImport {
			seenNonImport = true
		}
	}
	return sheet, nil
}

func (e *Engine) convertRule(r *cssparser.RawRule, baseURI string, seenNonImport *bool) (Rule, bool, error) {
	switch r.Kind {
	case cssparser.StyleRuleKind:
		sel, err := selector.ParseList(r.Selector)
		if err != nil {
			tracer().Debugf("cascade: dropping rule with unparsable selector %q: %s", r.Selector, err)
			return nil, false, nil
		}
		return &StyleRule{Selectors: sel, Decl: dispatchDeclarations(e.registry, r.Declarations)}, false, nil
	case cssparser.MediaRuleKind:
		mq, err := cssparser.ParseMediaQuery(r.MediaQuery)
		if err != nil {
			mq = cssparser.MediaQuery{Types: []cssparser.MediaType{{Name: "all"}}}
		}
		mr := &MediaRule{Media: mq}
		for _, child := range r.Children {
			cr, _, err := e.convertRule(child, baseURI, seenNonImport)
			if err != nil {
				return nil, false, err
			}
			if cr != nil {
				mr.Rules = append(mr.Rules, cr)
			}
		}
		return mr, false, nil
	case cssparser.ImportRuleKind:
		if *seenNonImport {
			// Late @import: recorded but never resolved.
			return &ImportRule{URI: ""}, true, nil
		}
		mq, err := cssparser.ParseMediaQuery(r.ImportMediaQuery)
		if err != nil {
			mq = cssparser.MediaQuery{Types: []cssparser.MediaType{{Name: "all"}}}
		}
		ir := &ImportRule{MediaRule: MediaRule{Media: mq}, URI: r.ImportURL}
		if ir.URI == "" {
			return ir, true, nil
		}
		if e.cfg.Security != nil {
			if err := e.cfg.Security(ir.URI, baseURI); err != nil {
				return nil, true, &SecurityError{TargetURL: ir.URI, DocumentURL: baseURI, Err: err}
			}
		}
		// Fetching the target resource is out of scope for this engine;
		// callers that have the imported CSS text available should populate
		// ir.Rules themselves via ResolveImport.
		return ir, true, nil
	}
	return nil, false, nil
}

// ResolveImport attaches parsed rules to a previously returned ImportRule
// once its target CSS text has been fetched by the caller. It re-runs the
// engine's normal rule conversion so nested @media/@import inside the
// imported sheet are handled uniformly.
func (e *Engine) ResolveImport(ir *ImportRule, cssText string) error {
	sheet, err := e.ParseStyleSheet(cssText, ir.URI)
	if err != nil {
		return err
	}
	ir.Rules = sheet.Rules
	e.invalidateTree(e.doc.Root())
	return nil
}

// ParseStyleDeclaration parses a plain declaration list (e.g. the contents
// of a style="" attribute) into a StyleDeclaration.
func (e *Engine) ParseStyleDeclaration(text string) (*StyleDeclaration, error) {
	raw, err := cssparser.ParseStyleDeclaration(text)
	if err != nil {
		return nil, &SyntaxError{Snippet: snippet(text), Err: err}
	}
	return dispatchDeclarations(e.registry, raw), nil
}

// ParsePropertyValue parses a single property's value text using the value
// manager registered for name.
func (e *Engine) ParsePropertyValue(name, text string) (style.Value, error) {
	idx := e.registry.IndexOf(name)
	if idx == NoProperty {
		return nil, fmt.Errorf("cascade: unknown property %q", name)
	}
	lex, err := cssparser.ParsePropertyValue(text)
	if err != nil {
		return nil, &SyntaxError{Attr: name, Snippet: snippet(text), Err: err}
	}
	if strings.EqualFold(lex.Text, "inherit") {
		return style.Inherit, nil
	}
	return e.registry.Manager(idx).CreateValue(lex)
}

func snippet(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
