/*
Package cascade implements the CSS cascade, computed-value resolution and
mutation-driven invalidation engine on top of packages dom, selector, style
and cssparser. It owns none of grammar parsing, selector matching or
per-property value semantics — those are the external collaborators wired
in by cssparser, selector and style respectively — but everything about
combining their outputs into a stable, incrementally-updated computed style
per element lives here.

The engine is single-threaded cooperative: no Engine method may be called
concurrently with another call on the same instance, except for
AddChangeListener/RemoveChangeListener, which are safe to call while a
notification is in flight thanks to the listener bus's snapshot-on-fire
dispatch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cascade

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.cascade")
}
