package cssparser

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/inkbound/cssengine/style"
)

// ParseStyleSheet parses a full CSS stylesheet's source text into a
// RawStyleSheet. Rules that don't fit the style/media/import shapes cascade
// understands (e.g. @font-face, @page, @keyframes) come back tagged
// UnknownRuleKind; the caller drops them rather than this package, so that
// a future extension only has to teach cascade a new kind, not re-parse.
func ParseStyleSheet(source string) (*RawStyleSheet, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("cssparser: %w", err)
	}
	out := &RawStyleSheet{Rules: make([]*RawRule, 0, len(sheet.Rules))}
	for _, r := range sheet.Rules {
		out.Rules = append(out.Rules, convertRule(r))
	}
	return out, nil
}

func convertRule(r *css.Rule) *RawRule {
	if r.Kind == css.QualifiedRule {
		return &RawRule{
			Kind:         StyleRuleKind,
			Selector:     r.Prelude,
			Declarations: convertDeclarations(r.Declarations),
		}
	}
	switch strings.ToLower(r.Name) {
	case "@media", "media":
		children := make([]*RawRule, 0, len(r.Rules))
		for _, child := range r.Rules {
			children = append(children, convertRule(child))
		}
		return &RawRule{
			Kind:       MediaRuleKind,
			MediaQuery: r.Prelude,
			Children:   children,
		}
	case "@import", "import":
		url, media := splitImportPrelude(r.Prelude)
		return &RawRule{
			Kind:             ImportRuleKind,
			ImportURL:        url,
			ImportMediaQuery: media,
		}
	}
	return &RawRule{Kind: UnknownRuleKind, Selector: r.Prelude}
}

func convertDeclarations(decls []*css.Declaration) []RawDeclaration {
	out := make([]RawDeclaration, 0, len(decls))
	for _, d := range decls {
		out = append(out, RawDeclaration{
			Property:  d.Property,
			Value:     d.Value,
			Important: d.Important,
		})
	}
	return out
}

// splitImportPrelude pulls the URL token off the front of an @import
// prelude (either `url(...)` or a bare quoted string) and returns the
// remainder as the raw media query text.
func splitImportPrelude(prelude string) (url, media string) {
	s := strings.TrimSpace(prelude)
	switch {
	case strings.HasPrefix(strings.ToLower(s), "url("):
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return s, ""
		}
		url = strings.Trim(strings.TrimSpace(s[4:end]), `"'`)
		media = strings.TrimSpace(s[end+1:])
	case strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'"):
		quote := s[0]
		end := strings.IndexByte(s[1:], quote)
		if end < 0 {
			return s, ""
		}
		url = s[1 : end+1]
		media = strings.TrimSpace(s[end+2:])
	default:
		fields := strings.Fields(s)
		if len(fields) > 0 {
			url = fields[0]
			media = strings.TrimSpace(strings.Join(fields[1:], " "))
		}
	}
	return url, media
}

// ParseStyleDeclaration parses the contents of an HTML `style="..."` inline
// attribute (a declaration list with no selector or braces). The list is
// terminated with ';' before parsing, so the last declaration's value is
// closed off like every other one even when the text omits the final
// semicolon.
func ParseStyleDeclaration(source string) ([]RawDeclaration, error) {
	src := strings.TrimSpace(source)
	if src != "" && !strings.HasSuffix(src, ";") {
		src += ";"
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		return nil, fmt.Errorf("cssparser: %w", err)
	}
	return convertDeclarations(decls), nil
}

// ParsePropertyValue splits a single property value's source text into a
// style.LexicalUnit, stripping and recording a trailing `!important`. It
// performs no per-property grammar validation; that is a value manager's job.
func ParsePropertyValue(text string) (style.LexicalUnit, error) {
	s := strings.TrimSpace(text)
	important := false
	if idx := strings.LastIndex(strings.ToLower(s), "!important"); idx >= 0 {
		important = true
		s = strings.TrimSpace(s[:idx])
	}
	if s == "" {
		return style.LexicalUnit{}, fmt.Errorf("cssparser: empty property value")
	}
	return style.LexicalUnit{Text: s, Important: important}, nil
}

// MediaQuery is a coarse parse of a media query list: comma-separated media
// types, optionally qualified with "not"/"only". Feature queries such as
// `(max-width: 600px)` are recognized as opaque feature tokens attached to
// the type they follow; this engine never evaluates them against a real
// viewport (spec Non-goals) but a caller wiring one up needs the text.
type MediaQuery struct {
	Types []MediaType
}

// MediaType is one comma-separated entry of a media query list.
type MediaType struct {
	Not      bool
	Only     bool
	Name     string
	Features []string
}

// ParseMediaQuery parses raw @media / media="" prelude text into a
// MediaQuery. An empty or all-whitespace query matches "all" per CSS spec.
func ParseMediaQuery(text string) (MediaQuery, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return MediaQuery{Types: []MediaType{{Name: "all"}}}, nil
	}
	var mq MediaQuery
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mt := MediaType{}
		for {
			lower := strings.ToLower(part)
			switch {
			case strings.HasPrefix(lower, "not "):
				mt.Not = true
				part = strings.TrimSpace(part[4:])
				continue
			case strings.HasPrefix(lower, "only "):
				mt.Only = true
				part = strings.TrimSpace(part[5:])
				continue
			}
			break
		}
		nameEnd := strings.IndexByte(part, '(')
		nameText := part
		rest := ""
		if nameEnd >= 0 {
			nameText = strings.TrimSpace(part[:nameEnd])
			rest = part[nameEnd:]
		}
		fields := strings.Fields(nameText)
		if len(fields) > 0 {
			mt.Name = fields[0]
		} else {
			mt.Name = "all"
		}
		if rest != "" {
			mt.Features = append(mt.Features, rest)
		}
		mq.Types = append(mq.Types, mt)
	}
	if len(mq.Types) == 0 {
		return MediaQuery{}, fmt.Errorf("cssparser: empty media query %q", text)
	}
	return mq, nil
}
