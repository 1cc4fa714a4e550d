/*
Package style defines the Value/ValueManager/ShorthandManager contracts the
cascade engine delegates to, and a representative set of concrete value
managers (color, font-size, line-height, display, the four margin
longhands and the margin shorthand). Per-property value grammar and
arithmetic is delegated entirely to these managers: package style, not
package cascade, owns "how big is 1.5em" or "what does currentColor mean".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package style

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.style")
}
