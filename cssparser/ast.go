package cssparser

// RuleKind classifies a RawRule the way the cascade engine needs to dispatch
// it: as a style rule with a selector, an @media conditional group, an
// @import, or something this engine doesn't model and silently drops (e.g.
// @font-face, @page).
type RuleKind int

const (
	StyleRuleKind RuleKind = iota
	MediaRuleKind
	ImportRuleKind
	UnknownRuleKind
)

func (k RuleKind) String() string {
	switch k {
	case StyleRuleKind:
		return "style"
	case MediaRuleKind:
		return "media"
	case ImportRuleKind:
		return "import"
	}
	return "unknown"
}

// RawDeclaration is one `property: value` pair as it appeared in the
// source, before any value-manager has looked at it.
type RawDeclaration struct {
	Property  string
	Value     string
	Important bool
}

// RawRule is one grammar-level CSS rule. Only the fields relevant to Kind
// are populated; a StyleRuleKind rule has Selector/Declarations, a
// MediaRuleKind rule has MediaQuery/Children, an ImportRuleKind rule has
// ImportURL/ImportMediaQuery.
type RawRule struct {
	Kind             RuleKind
	Selector         string
	Declarations     []RawDeclaration
	MediaQuery       string
	Children         []*RawRule
	ImportURL        string
	ImportMediaQuery string
}

// RawStyleSheet is the top-level result of ParseStyleSheet: a flat sequence
// of top-level rules (style rules, @media blocks, @import directives, or
// unknown at-rules cascade will skip).
type RawStyleSheet struct {
	Rules []*RawRule
}
