package cssparser_test

import (
	"testing"

	"github.com/inkbound/cssengine/cssparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyleSheetBasicRule(t *testing.T) {
	sheet, err := cssparser.ParseStyleSheet(`div.card { color: red !important; margin: 1px 2px; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	r := sheet.Rules[0]
	assert.Equal(t, cssparser.StyleRuleKind, r.Kind)
	assert.Equal(t, "div.card", r.Selector)
	require.Len(t, r.Declarations, 2)
	assert.Equal(t, "color", r.Declarations[0].Property)
	assert.True(t, r.Declarations[0].Important)
	assert.False(t, r.Declarations[1].Important)
}

func TestParseStyleSheetMediaRule(t *testing.T) {
	sheet, err := cssparser.ParseStyleSheet(`@media screen and (max-width: 600px) { p { color: blue; } }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	r := sheet.Rules[0]
	assert.Equal(t, cssparser.MediaRuleKind, r.Kind)
	require.Len(t, r.Children, 1)
	assert.Equal(t, "p", r.Children[0].Selector)
}

func TestParseStyleSheetImportRule(t *testing.T) {
	sheet, err := cssparser.ParseStyleSheet(`@import url("theme.css") screen;`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	r := sheet.Rules[0]
	assert.Equal(t, cssparser.ImportRuleKind, r.Kind)
	assert.Equal(t, "theme.css", r.ImportURL)
	assert.Equal(t, "screen", r.ImportMediaQuery)
}

func TestParsePropertyValueImportant(t *testing.T) {
	lex, err := cssparser.ParsePropertyValue("red !important")
	require.NoError(t, err)
	assert.Equal(t, "red", lex.Text)
	assert.True(t, lex.Important)
}

func TestParseMediaQueryNotOnly(t *testing.T) {
	mq, err := cssparser.ParseMediaQuery("not screen, only print")
	require.NoError(t, err)
	require.Len(t, mq.Types, 2)
	assert.True(t, mq.Types[0].Not)
	assert.Equal(t, "screen", mq.Types[0].Name)
	assert.True(t, mq.Types[1].Only)
	assert.Equal(t, "print", mq.Types[1].Name)
}

func TestParseStyleDeclarationInline(t *testing.T) {
	decls, err := cssparser.ParseStyleDeclaration("color: green; display: none")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "display", decls[1].Property)
}
