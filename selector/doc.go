/*
Package selector implements the cascade engine's Selector collaborator:
match(element, pseudo), specificity(), and fillAttributeSet(set). It
supports type, class, id and attribute compound selectors joined by the
descendant, child ('>'), adjacent-sibling ('+') and general-sibling ('~')
combinators — enough CSS to drive the cascade engine's own test suite,
including sibling-adjacency scenarios like `a + a`.

It is not a general-purpose CSS selector engine: pseudo-classes are parsed
(so their specificity and the ':' character in a compound selector are
handled) but never match anything beyond bumping specificity, and
combinators beyond the four above are rejected at parse time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package selector

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.selector")
}
