package cascade

import (
	"sort"

	"github.com/inkbound/cssengine/dom"
	"github.com/inkbound/cssengine/selector"
)

// matchedRule pairs a StyleRule with the specificity of whichever of its
// selectors matched, for the stable specificity sort below.
type matchedRule struct {
	rule        *StyleRule
	specificity selector.Specificity
	sourceOrder int
}

// collectMatchingRules recurses into MediaRule/ImportRule nested lists iff
// their media matches; for StyleRules, keeps the rule once if any selector
// in its list matches, using the largest matching specificity.
func (e *Engine) collectMatchingRules(rules []Rule, element *dom.Node, pseudo string, order *int, out *[]matchedRule) {
	for _, r := range rules {
		switch rr := r.(type) {
		case *StyleRule:
			if ok, sp := rr.Selectors.Matches(element, pseudo); ok {
				*out = append(*out, matchedRule{rule: rr, specificity: sp, sourceOrder: *order})
			}
			*order++
		case *MediaRule:
			if mediaMatches(rr.Media, e.media) {
				e.collectMatchingRules(rr.Rules, element, pseudo, order, out)
			}
		case *ImportRule:
			if mediaMatches(rr.Media, e.media) {
				e.collectMatchingRules(rr.Rules, element, pseudo, order, out)
			}
		}
	}
}

// sortBySpecificity performs a stable ascending-specificity sort, so equal
// specificities preserve source order and later declarations win ties.
func sortBySpecificity(matches []matchedRule) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].specificity.Less(matches[j].specificity)
	})
}

// writeUnconditional installs every declaration of decl at origin,
// overwriting whatever was there regardless of importance (used for UA/User
// sheets, whose matches are already in ascending specificity order; the
// later author-side origins go through authorWrite instead).
func writeUnconditional(m *StyleMap, decl *StyleDeclaration, origin Origin) {
	for _, d := range decl.Declarations {
		m.write(d.PropertyIndex, d.Value, origin, d.Important)
	}
}

// authorWrite implements the write rule used for origins NonCSS, Author and
// InlineAuthor: an incoming (value, important, origin) overwrites
// the existing slot iff the slot is empty, or its origin is UserAgent, or
// its origin is User without !important, or its origin is Author/NonCSS/
// InlineAuthor and (the existing slot isn't important, or the incoming
// write is important).
func authorWrite(m *StyleMap, decl *StyleDeclaration, origin Origin) {
	for _, d := range decl.Declarations {
		_, present := m.Value(d.PropertyIndex)
		if !present {
			m.write(d.PropertyIndex, d.Value, origin, d.Important)
			continue
		}
		existingOrigin := m.Origin(d.PropertyIndex)
		existingImportant := m.Important(d.PropertyIndex)
		allow := false
		switch existingOrigin {
		case UserAgent:
			allow = true
		case User:
			allow = !existingImportant
		case NonCSS, Author, InlineAuthor:
			allow = !existingImportant || d.Important
		}
		if allow {
			m.write(d.PropertyIndex, d.Value, origin, d.Important)
		}
	}
}

// getCascadedStyleMap applies UA, User, non-CSS hints, document (author)
// sheets and inline style, in that order, into a fresh StyleMap.
func (e *Engine) getCascadedStyleMap(element *dom.Node, pseudo string) (*StyleMap, error) {
	m := newStyleMap(e.registry.Len())

	if e.uaSheet != nil {
		var matches []matchedRule
		order := 0
		e.collectMatchingRules(e.uaSheet.Rules, element, pseudo, &order, &matches)
		sortBySpecificity(matches)
		for _, mr := range matches {
			writeUnconditional(m, mr.rule.Decl, UserAgent)
		}
	}

	if e.userSheet != nil {
		var matches []matchedRule
		order := 0
		e.collectMatchingRules(e.userSheet.Rules, element, pseudo, &order, &matches)
		sortBySpecificity(matches)
		for _, mr := range matches {
			writeUnconditional(m, mr.rule.Decl, User)
		}
	}

	if e.cfg.WantsHints && pseudo == "" {
		e.applyPresentationalHints(element, m)
	}

	if pseudo == "" || e.isRecognisedPseudo(pseudo) {
		var matches []matchedRule
		order := 0
		for _, sheet := range e.authorStyleSheets() {
			if !sheet.appliesAsAlternate(e.alternateTitle) {
				continue
			}
			e.collectMatchingRules(sheet.Rules, element, pseudo, &order, &matches)
		}
		sortBySpecificity(matches)
		for _, mr := range matches {
			authorWrite(m, mr.rule.Decl, Author)
		}
	}

	if pseudo == "" && e.cfg.StyleAttrLocal != "" {
		if text, ok := element.GetAttribute(e.cfg.StyleAttrNS, e.cfg.StyleAttrLocal); ok && text != "" {
			decl, err := e.ParseStyleDeclaration(text)
			if err != nil {
				tracer().Errorf("cascade: inline style parse error: %s", err)
			} else {
				authorWrite(m, decl, InlineAuthor)
			}
		}
	}

	return m, nil
}

func (e *Engine) isRecognisedPseudo(pseudo string) bool {
	_, ok := e.pseudoNames[pseudo]
	return ok
}

// applyPresentationalHints scans element's attributes in the configured
// hints namespace; for each one whose local name is a known property, it
// parses the value and installs it at origin NonCSS via the author-write
// rule.
func (e *Engine) applyPresentationalHints(element *dom.Node, m *StyleMap) {
	for _, attr := range element.Attributes() {
		if attr.Namespace != e.cfg.HintsNS {
			continue
		}
		idx, ok := e.registry.HintProperty(attr.Local)
		if !ok {
			continue
		}
		v, err := e.ParsePropertyValue(e.registry.Manager(idx).PropertyName(), attr.Value)
		if err != nil {
			tracer().Debugf("cascade: dropping presentational hint %q=%q: %s", attr.Local, attr.Value, err)
			continue
		}
		decl := &StyleDeclaration{}
		decl.add(idx, v, false)
		authorWrite(m, decl, NonCSS)
	}
}

// GetCascadedStyleMap is the public entry point for fetching an element's
// cached cascaded/computed style map, building it via getCascadedStyleMap
// if absent.
func (e *Engine) GetCascadedStyleMap(element *dom.Node, pseudo string) (*StyleMap, error) {
	if sm, ok := e.styleMapOf(element, pseudo); ok {
		return sm, nil
	}
	sm, err := e.getCascadedStyleMap(element, pseudo)
	if err != nil {
		return nil, err
	}
	e.setStyleMap(element, pseudo, sm)
	return sm, nil
}
