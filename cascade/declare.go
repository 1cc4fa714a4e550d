package cascade

import (
	"strings"

	"github.com/inkbound/cssengine/cssparser"
	"github.com/inkbound/cssengine/style"
)

// dispatchDeclarations dispatches each raw declaration to a longhand value
// manager; an unknown name is tried as a shorthand instead. If neither a
// longhand nor a shorthand matches, the declaration is silently dropped as
// an unknown property. A declaration whose value a matching manager
// rejects is also dropped, logged at debug level rather than failing the
// whole stylesheet — one malformed declaration should not take down a
// page's entire style.
func dispatchDeclarations(registry *Registry, raw []cssparser.RawDeclaration) *StyleDeclaration {
	decl := &StyleDeclaration{}
	// The `inherit` keyword is handled here and never reaches a manager.
	create := func(idx PropertyIndex, lex style.LexicalUnit) (style.Value, error) {
		if strings.EqualFold(strings.TrimSpace(lex.Text), "inherit") {
			return style.Inherit, nil
		}
		return registry.Manager(idx).CreateValue(lex)
	}
	var emit style.LonghandEmit
	emit = func(propertyName string, lex style.LexicalUnit, important bool) {
		idx := registry.IndexOf(propertyName)
		if idx == NoProperty {
			return
		}
		v, err := create(idx, lex)
		if err != nil {
			tracer().Debugf("cascade: dropping longhand %q from shorthand expansion: %s", propertyName, err)
			return
		}
		decl.add(idx, v, important)
	}
	for _, d := range raw {
		lex := style.LexicalUnit{Text: d.Value, Important: d.Important}
		if idx := registry.IndexOf(d.Property); idx != NoProperty {
			v, err := create(idx, lex)
			if err != nil {
				tracer().Debugf("cascade: dropping declaration %q: %s", d.Property, err)
				continue
			}
			decl.add(idx, v, d.Important)
			continue
		}
		if sh, ok := registry.Shorthand(d.Property); ok {
			if err := sh.SetValues(lex, d.Important, emit); err != nil {
				tracer().Debugf("cascade: shorthand %q rejected value %q: %s", d.Property, d.Value, err)
			}
			continue
		}
		// Neither longhand nor shorthand: unknown property, dropped silently.
	}
	return decl
}
