package server

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// wordAt returns the identifier under the given zero-based position: the
// maximal run of alphanumeric/underscore characters spanning it. Out of
// range positions and positions on a boundary with no adjacent word
// material yield false.
func wordAt(text string, pos protocol.Position) (string, bool) {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return "", false
	}
	line := strings.TrimSuffix(lines[pos.Line], "\r")

	col := int(pos.Character)
	if col > len(line) {
		return "", false
	}

	start := 0
	for i := col; i > 0; i-- {
		if !isWordByte(line[i-1]) {
			start = i
			break
		}
	}
	end := len(line)
	for i := col; i < len(line); i++ {
		if !isWordByte(line[i]) {
			end = i
			break
		}
	}

	if start >= end {
		return "", false
	}
	return line[start:end], true
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
