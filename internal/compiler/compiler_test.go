package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileValid(t *testing.T) {
	c := New()
	for _, expr := range []string{
		"foo",
		"foo.bar",
		"foo.bar.baz",
		"foo.\"bar baz\"",
		"@",
		"*",
		"*.foo",
		"foo.*",
		"foo[0]",
		"foo[-1]",
		"foo[1:3]",
		"foo[::2]",
		"foo[*].bar",
		"foo[]",
		"foo[].bar",
		"[0]",
		"[foo, bar]",
		"foo[?bar == `1`]",
		"foo[?a > b].c",
		"{a: foo, b: bar.baz}",
		"foo.{a: bar, \"b c\": baz}",
		"foo | bar",
		"foo || bar",
		"foo && bar && baz",
		"!foo",
		"foo == bar",
		"foo != `null`",
		"length(foo)",
		"starts_with(foo, 'prefix')",
		"sort_by(people, &age)",
		"max_by(items, &price).name",
		"not_null(a, b, 'fallback')",
		"now()",
		"`{\"a\": 1}`",
		"'raw string'",
		"(foo || bar) && baz",
		"foo[?a == `1`] | [0].b",
		"a.b\n  | c",
	} {
		assert.NoError(t, c.Compile(expr), "expression %q", expr)
	}
}

func TestCompileErrorsArePositioned(t *testing.T) {
	c := New()
	tests := []struct {
		expr    string
		line    uint32
		col     uint32
		message string
	}{
		{"foo(bar", 0, 7, "unexpected end of expression"},
		{"", 0, 0, "unexpected end of expression"},
		{"foo.", 0, 4, "unexpected end of expression"},
		{"foo.5", 0, 4, "unexpected token number"},
		{"foo..bar", 0, 4, "unexpected token '.'"},
		{"foo[", 0, 4, "unexpected end of expression"},
		{"foo[}", 0, 4, "unexpected token '}'"},
		{"foo[1:2:3:4]", 0, 9, "too many colons in slice expression"},
		{"{a foo}", 0, 3, "unexpected token identifier"},
		{"foo = bar", 0, 4, "unexpected '=', did you mean '=='"},
		{"'unterminated", 0, 0, "unterminated raw string"},
		{"\"unterminated", 0, 0, "unterminated quoted identifier"},
		{"foo bar", 0, 4, "unexpected token identifier"},
		{"foo #", 0, 4, `unexpected character '#'`},
		{"a.b\n  || ", 1, 5, "unexpected end of expression"},
	}
	for _, tt := range tests {
		err := c.Compile(tt.expr)
		require.Error(t, err, "expression %q", tt.expr)
		cerr, ok := err.(*Error)
		require.True(t, ok, "expression %q should yield *Error, got %T", tt.expr, err)
		assert.Equal(t, tt.line, cerr.Line, "line for %q", tt.expr)
		assert.Equal(t, tt.col, cerr.Column, "column for %q", tt.expr)
		assert.Equal(t, tt.message, cerr.Error(), "message for %q", tt.expr)
	}
}

func TestInvalidJSONLiteralCarriesCause(t *testing.T) {
	err := New().Compile("`{broken`")
	require.Error(t, err)
	cerr, ok := err.(*Error)
	require.True(t, ok)
	assert.NotNil(t, cerr.Cause)
	assert.Contains(t, cerr.Error(), "invalid JSON literal: ")
}

func TestEscapedBacktickInsideLiteral(t *testing.T) {
	assert.NoError(t, New().Compile("`\"tick: \\` here\"`"))
}

func TestMultilinePositions(t *testing.T) {
	err := New().Compile("foo.bar\n  .baz[")
	require.Error(t, err)
	cerr := err.(*Error)
	assert.Equal(t, uint32(1), cerr.Line)
	assert.Equal(t, uint32(7), cerr.Column)
}
