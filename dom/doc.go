/*
Package dom provides a minimal, concrete markup tree that plays the role of
the "external DOM" collaborator described by the cascade engine (package
cascade): a node tree with namespaces and attributes, and a synchronous
mutation-event source with kinds ADDITION, MODIFICATION and REMOVAL.

It is deliberately small: only the node/attribute/mutation-event contract
the cascade engine depends on is implemented here. LoadHTML builds a
Document from real HTML source when a caller needs one without
hand-constructing every node, but it is a convenience, not a general HTML
DOM implementation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("cssengine.dom")
}
