package cascade

import (
	"strings"

	"github.com/inkbound/cssengine/cssparser"
)

// mediaMatches reports whether a rule's media query applies given the
// engine's active media: either list empty/missing matches all; any item
// equal to "all" (case-insensitive) matches all; otherwise the lists must
// share at least one case-insensitively equal item.
//
// This engine does not evaluate feature queries such as `(max-width: 600px)`
// against a real viewport; a MediaType's Features are carried through but
// ignored by this predicate.
func mediaMatches(rule cssparser.MediaQuery, active cssparser.MediaQuery) bool {
	if len(rule.Types) == 0 || len(active.Types) == 0 {
		return true
	}
	for _, t := range rule.Types {
		if strings.EqualFold(t.Name, "all") {
			return true
		}
	}
	for _, t := range active.Types {
		if strings.EqualFold(t.Name, "all") {
			return true
		}
	}
	for _, a := range rule.Types {
		for _, b := range active.Types {
			if strings.EqualFold(a.Name, b.Name) {
				return true
			}
		}
	}
	return false
}
