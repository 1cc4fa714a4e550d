/*
Package cssdbg renders a styled document tree as indented text for
debugging, using github.com/xlab/treeprint. A library embedded in a
rendering pipeline has no business shelling out to an external "dot"
binary to explain its own state, so this package sticks to an in-process
ASCII tree renderer instead of a GraphViz-based one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssdbg

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.cssdbg")
}
