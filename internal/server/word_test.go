package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func at(line, character uint32) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}

func TestWordAt(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  protocol.Position
		want string
		ok   bool
	}{
		{"start of word", "max(values)", at(0, 0), "max", true},
		{"middle of word", "max(values)", at(0, 1), "max", true},
		{"end boundary keeps left word", "max(values)", at(0, 3), "max", true},
		{"inside second word", "max(values)", at(0, 5), "values", true},
		{"underscores and digits", "starts_with2(a)", at(0, 7), "starts_with2", true},
		{"cursor at line end", "foo.bar", at(0, 7), "bar", true},
		{"cursor on dot", "a.b", at(0, 1), "a", true},
		{"second line", "foo\nbar_baz", at(1, 4), "bar_baz", true},
		{"crlf line ending", "foo\r\nbar", at(0, 2), "foo", true},
		{"line out of range", "foo", at(3, 0), "", false},
		{"character past line end", "foo", at(0, 4), "", false},
		{"empty line", "\n\n", at(1, 0), "", false},
		{"empty text", "", at(0, 0), "", false},
		{"boundary with no word", "( )", at(0, 1), "", false},
		{"only punctuation", "...", at(0, 1), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := wordAt(tt.text, tt.pos)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordAtCursorBetweenWordAndBoundary(t *testing.T) {
	// Cursor sits on '(' with "max" to the left: the scan picks up the
	// word ending at the cursor.
	got, ok := wordAt("max(", at(0, 3))
	assert.True(t, ok)
	assert.Equal(t, "max", got)

	// Cursor on '(' with nothing before it.
	_, ok = wordAt("(foo)", at(0, 0))
	assert.False(t, ok)
}
