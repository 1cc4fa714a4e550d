/*
Package cssparser wraps github.com/aymerick/douceur's grammar-level CSS
parser (itself built on github.com/gorilla/css's tokenizer) and exposes it
as a small, neutral rule/declaration tree. It has no notion of cascade,
specificity, selector matching or value managers — those live in package
cascade, which walks the tree this package returns.

It is the cascade engine's CSS-parser collaborator made concrete: it
recognizes qualified rules, @media and @import at the grammar level and
leaves everything else (selector semantics, property semantics) to its
caller.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssparser

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.cssparser")
}
