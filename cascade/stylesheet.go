package cascade

import (
	"github.com/inkbound/cssengine/cssparser"
	"github.com/inkbound/cssengine/selector"
	"github.com/inkbound/cssengine/style"
)

// Declaration is one (propertyIndex, value, important) triple within a
// StyleDeclaration. PropertyIndex is NoProperty for declarations the
// registry didn't recognize as either a longhand or a shorthand; such
// declarations are dropped before ever reaching a StyleDeclaration.
type Declaration struct {
	PropertyIndex PropertyIndex
	Value         style.Value
	Important     bool
}

// StyleDeclaration is an append-only list of declarations; duplicates are
// allowed; later entries win ties within the same origin.
type StyleDeclaration struct {
	Declarations []Declaration
}

func (d *StyleDeclaration) add(idx PropertyIndex, v style.Value, important bool) {
	d.Declarations = append(d.Declarations, Declaration{idx, v, important})
}

// Rule is the sum type of stylesheet rule variants: StyleRule, MediaRule
// (and ImportRule, which embeds MediaRule once its target stylesheet has
// loaded).
type Rule interface {
	isRule()
}

// StyleRule pairs a selector list with a declaration block.
type StyleRule struct {
	Selectors selector.List
	Decl      *StyleDeclaration
}

func (*StyleRule) isRule() {}

// MediaRule scopes a nested rule list to a media query; it is matched
// against the engine's current media list before its Rules are considered.
type MediaRule struct {
	Media cssparser.MediaQuery
	Rules []Rule
}

func (*MediaRule) isRule() {}

// ImportRule is a MediaRule whose Rules are populated once the resource at
// URI has been fetched and parsed (subject to the security hook); until
// then Rules is nil and the rule contributes nothing to cascade.
type ImportRule struct {
	MediaRule
	URI string
}

// Stylesheet is an ordered rule list, optionally tagged for the
// alternate-stylesheet selection predicate.
type Stylesheet struct {
	Rules []Rule

	// Title and Alternate implement the "alternate stylesheet" predicate:
	// a sheet with Title=="" and Alternate==false always applies; one with
	// a non-empty Title and Alternate==true applies only when Title equals
	// the engine's currently selected alternate title.
	Title     string
	Alternate bool
}

// appliesAsAlternate reports whether this sheet passes the alternate-sheet
// selection predicate given the engine's currently active title.
func (s *Stylesheet) appliesAsAlternate(activeTitle string) bool {
	if s.Title == "" && !s.Alternate {
		return true
	}
	if s.Title != "" && s.Alternate {
		return s.Title == activeTitle
	}
	// Any other combination (e.g. titled but not alternate) is read
	// literally: it applies unconditionally, matching the "preferred
	// stylesheet" case.
	return true
}
