package selector

import (
	"fmt"

	"github.com/inkbound/cssengine/dom"
)

// Specificity is CSS specificity as [A,B,C]: A = ID count, B = class /
// attribute / pseudo-class count, C = type-selector / pseudo-element count.
// The representation and comparison mirror andybalholm/cascadia's
// Specificity type.
type Specificity [3]int

// Less reports whether s is strictly less specific than other.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

func (s Specificity) add(other Specificity) Specificity {
	for i := range other {
		s[i] += other[i]
	}
	return s
}

// attrOp is the comparison an attribute-selector applies.
type attrOp uint8

const (
	attrExists attrOp = iota
	attrEquals
)

type attrTest struct {
	name  string
	op    attrOp
	value string
}

// compound is a single simple-selector-sequence: an optional type selector
// plus any number of #id, .class and [attr] tests.
type compound struct {
	tag     string // "" or "*" match any type
	id      string
	classes []string
	attrs   []attrTest
	pseudo  []string // pseudo-classes/elements, matched only for specificity
}

func (c *compound) specificity() Specificity {
	var s Specificity
	if c.id != "" {
		s[0]++
	}
	s[1] += len(c.classes) + len(c.attrs) + len(c.pseudo)
	if c.tag != "" && c.tag != "*" {
		s[2]++
	}
	return s
}

func (c *compound) fillAttributeNames(set map[string]struct{}) {
	if c.id != "" {
		set["id"] = struct{}{}
	}
	if len(c.classes) > 0 {
		set["class"] = struct{}{}
	}
	for _, a := range c.attrs {
		set[a.name] = struct{}{}
	}
}

func (c *compound) matches(n *dom.Node) bool {
	if n == nil || !n.IsStylable() {
		return false
	}
	if c.tag != "" && c.tag != "*" && c.tag != n.LocalName() {
		return false
	}
	if c.id != "" {
		v, ok := n.GetAttributeLocal("id")
		if !ok || v != c.id {
			return false
		}
	}
	if len(c.classes) > 0 {
		v, ok := n.GetAttributeLocal("class")
		if !ok {
			return false
		}
		have := splitClasses(v)
		for _, need := range c.classes {
			if !have[need] {
				return false
			}
		}
	}
	for _, at := range c.attrs {
		v, ok := n.GetAttributeLocal(at.name)
		if !ok {
			return false
		}
		if at.op == attrEquals && v != at.value {
			return false
		}
	}
	return true
}

func splitClasses(v string) map[string]bool {
	out := make(map[string]bool)
	start := -1
	for i := 0; i <= len(v); i++ {
		if i < len(v) && v[i] != ' ' && v[i] != '\t' && v[i] != '\n' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out[v[start:i]] = true
			start = -1
		}
	}
	return out
}

// combinator connects two compounds in a chain.
type combinator uint8

const (
	combNone        combinator = iota // the (only, or leftmost) compound
	combDescendant                    // ' '
	combChild                         // '>'
	combAdjacent                      // '+'
	combGeneralSib                    // '~'
)

// step is one (combinator, compound) link of a selector chain, read
// right-to-left: step[0] is the rightmost (subject) compound.
type step struct {
	comb combinator
	comp *compound
}

// Selector is a single compiled selector (no top-level commas).
type Selector struct {
	steps []step // steps[0] is the subject compound; combinators walk leftward
	src   string
}

func (s *Selector) String() string { return s.src }

// Specificity returns this selector's specificity.
func (s *Selector) Specificity() Specificity {
	var total Specificity
	for _, st := range s.steps {
		total = total.add(st.comp.specificity())
	}
	return total
}

// FillAttributeSet adds every attribute name referenced anywhere in the
// selector (including the synthetic "class"/"id" names) to set.
func (s *Selector) FillAttributeSet(set map[string]struct{}) {
	for _, st := range s.steps {
		st.comp.fillAttributeNames(set)
	}
}

// Match reports whether element matches this selector. pseudo is accepted
// for interface symmetry with the rest of the cascade engine, but this
// package does not model pseudo-element generation; a non-empty pseudo
// never matches.
func (s *Selector) Match(element *dom.Node, pseudo string) bool {
	if pseudo != "" {
		return false
	}
	if len(s.steps) == 0 {
		return false
	}
	if !s.steps[0].comp.matches(element) {
		return false
	}
	cur := element
	for i := 1; i < len(s.steps); i++ {
		st := s.steps[i]
		var found *dom.Node
		switch st.comb {
		case combChild:
			if p := cur.Parent(); p != nil && p.IsStylable() && st.comp.matches(p) {
				found = p
			}
		case combDescendant:
			for anc := cur.Parent(); anc != nil; anc = anc.Parent() {
				if anc.IsStylable() && st.comp.matches(anc) {
					found = anc
					break
				}
			}
		case combAdjacent:
			if p := cur.PreviousSibling(); p != nil && p.IsStylable() && st.comp.matches(p) {
				found = p
			}
		case combGeneralSib:
			for sib := cur.PreviousSibling(); sib != nil; sib = sib.PreviousSibling() {
				if sib.IsStylable() && st.comp.matches(sib) {
					found = sib
					break
				}
			}
		default:
			return false
		}
		if found == nil {
			return false
		}
		cur = found
	}
	return true
}

// List is a comma-separated selector list, as used by a StyleRule's prelude.
type List []*Selector

// Matches reports whether any selector in the list matches, and returns the
// largest matching specificity: when multiple selectors in a rule's
// selector list match the element, the largest matching specificity wins.
func (l List) Matches(element *dom.Node, pseudo string) (bool, Specificity) {
	var best Specificity
	matched := false
	for _, s := range l {
		if s.Match(element, pseudo) {
			sp := s.Specificity()
			if !matched || best.Less(sp) {
				best = sp
			}
			matched = true
		}
	}
	return matched, best
}

// FillAttributeSet adds every attribute name referenced by any selector in
// the list to set.
func (l List) FillAttributeSet(set map[string]struct{}) {
	for _, s := range l {
		s.FillAttributeSet(set)
	}
}

// ErrSyntax reports a malformed selector.
type ErrSyntax struct {
	Source string
	Reason string
}

func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("selector syntax error in %q: %s", e.Source, e.Reason)
}
