package compiler

import (
	"encoding/json"
	"fmt"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokIdentifier
	tokQuotedIdentifier
	tokRawString
	tokLiteral
	tokNumber
	tokDot
	tokStar
	tokComma
	tokColon
	tokCurrent
	tokExpref
	tokLparen
	tokRparen
	tokLbracket
	tokRbracket
	tokLbrace
	tokRbrace
	tokFlatten
	tokFilter
	tokPipe
	tokOr
	tokAnd
	tokNot
	tokEQ
	tokNE
	tokLT
	tokLTE
	tokGT
	tokGTE
)

var tokenNames = map[tokenType]string{
	tokEOF:              "end of expression",
	tokIdentifier:       "identifier",
	tokQuotedIdentifier: "quoted identifier",
	tokRawString:        "raw string",
	tokLiteral:          "literal",
	tokNumber:           "number",
	tokDot:              "'.'",
	tokStar:             "'*'",
	tokComma:            "','",
	tokColon:            "':'",
	tokCurrent:          "'@'",
	tokExpref:           "'&'",
	tokLparen:           "'('",
	tokRparen:           "')'",
	tokLbracket:         "'['",
	tokRbracket:         "']'",
	tokLbrace:           "'{'",
	tokRbrace:           "'}'",
	tokFlatten:          "'[]'",
	tokFilter:           "'[?'",
	tokPipe:             "'|'",
	tokOr:               "'||'",
	tokAnd:              "'&&'",
	tokNot:              "'!'",
	tokEQ:               "'=='",
	tokNE:               "'!='",
	tokLT:               "'<'",
	tokLTE:              "'<='",
	tokGT:               "'>'",
	tokGTE:              "'>='",
}

// token is a lexical token with its zero-based source position.
type token struct {
	typ  tokenType
	text string
	line uint32
	col  uint32
}

func (t token) describe() string {
	return tokenNames[t.typ]
}

type lexer struct {
	src  string
	pos  int
	line uint32
	col  uint32
}

// lex tokenizes the whole input. The returned slice always ends with a
// tokEOF carrying the position just past the last character, so the parser
// can locate "unexpected end of expression" errors precisely.
func lex(src string) ([]token, *Error) {
	l := &lexer{src: src}
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.typ == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) errorf(line, col uint32, format string, args ...any) *Error {
	return &Error{Line: line, Column: col, Message: fmt.Sprintf(format, args...)}
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return c
}

func (l *lexer) peek() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) skipWhitespace() {
	for {
		c, ok := l.peek()
		if !ok || (c != ' ' && c != '\t' && c != '\n' && c != '\r') {
			return
		}
		l.advance()
	}
}

func (l *lexer) next() (token, *Error) {
	l.skipWhitespace()

	line, col := l.line, l.col
	c, ok := l.peek()
	if !ok {
		return token{typ: tokEOF, line: line, col: col}, nil
	}
	l.advance()

	mk := func(typ tokenType, text string) token {
		return token{typ: typ, text: text, line: line, col: col}
	}
	follows := func(want byte) bool {
		n, ok := l.peek()
		if ok && n == want {
			l.advance()
			return true
		}
		return false
	}

	switch {
	case isIdentifierStart(c):
		return mk(tokIdentifier, l.scanWhile(c, isIdentifierPart)), nil
	case c >= '0' && c <= '9':
		return mk(tokNumber, l.scanWhile(c, isDigit)), nil
	}

	switch c {
	case '-':
		n, ok := l.peek()
		if !ok || !isDigit(n) {
			return token{}, l.errorf(line, col, "unexpected character '-'")
		}
		l.advance()
		return mk(tokNumber, "-"+l.scanWhile(n, isDigit)), nil
	case '.':
		return mk(tokDot, "."), nil
	case '*':
		return mk(tokStar, "*"), nil
	case ',':
		return mk(tokComma, ","), nil
	case ':':
		return mk(tokColon, ":"), nil
	case '@':
		return mk(tokCurrent, "@"), nil
	case '(':
		return mk(tokLparen, "("), nil
	case ')':
		return mk(tokRparen, ")"), nil
	case ']':
		return mk(tokRbracket, "]"), nil
	case '{':
		return mk(tokLbrace, "{"), nil
	case '}':
		return mk(tokRbrace, "}"), nil
	case '[':
		if follows(']') {
			return mk(tokFlatten, "[]"), nil
		}
		if follows('?') {
			return mk(tokFilter, "[?"), nil
		}
		return mk(tokLbracket, "["), nil
	case '|':
		if follows('|') {
			return mk(tokOr, "||"), nil
		}
		return mk(tokPipe, "|"), nil
	case '&':
		if follows('&') {
			return mk(tokAnd, "&&"), nil
		}
		return mk(tokExpref, "&"), nil
	case '!':
		if follows('=') {
			return mk(tokNE, "!="), nil
		}
		return mk(tokNot, "!"), nil
	case '<':
		if follows('=') {
			return mk(tokLTE, "<="), nil
		}
		return mk(tokLT, "<"), nil
	case '>':
		if follows('=') {
			return mk(tokGTE, ">="), nil
		}
		return mk(tokGT, ">"), nil
	case '=':
		if follows('=') {
			return mk(tokEQ, "=="), nil
		}
		return token{}, l.errorf(line, col, "unexpected '=', did you mean '=='")
	case '"':
		text, terminated := l.scanDelimited('"')
		if !terminated {
			return token{}, l.errorf(line, col, "unterminated quoted identifier")
		}
		return mk(tokQuotedIdentifier, text), nil
	case '\'':
		text, terminated := l.scanDelimited('\'')
		if !terminated {
			return token{}, l.errorf(line, col, "unterminated raw string")
		}
		return mk(tokRawString, text), nil
	case '`':
		text, terminated := l.scanDelimited('`')
		if !terminated {
			return token{}, l.errorf(line, col, "unterminated JSON literal")
		}
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return token{}, &Error{Line: line, Column: col,
				Message: "invalid JSON literal", Cause: err}
		}
		return mk(tokLiteral, text), nil
	}

	return token{}, l.errorf(line, col, "unexpected character %q", c)
}

// scanWhile consumes characters satisfying pred, returning them prefixed
// with the already-consumed first character.
func (l *lexer) scanWhile(first byte, pred func(byte) bool) string {
	text := []byte{first}
	for {
		c, ok := l.peek()
		if !ok || !pred(c) {
			return string(text)
		}
		l.advance()
		text = append(text, c)
	}
}

// scanDelimited consumes up to the closing delimiter, honoring backslash
// escapes. The opening delimiter has already been consumed. Returns the
// raw content and whether the closing delimiter was found.
func (l *lexer) scanDelimited(close byte) (string, bool) {
	var text []byte
	for {
		c, ok := l.peek()
		if !ok {
			return string(text), false
		}
		l.advance()
		if c == close {
			return string(text), true
		}
		if c == '\\' {
			n, ok := l.peek()
			if !ok {
				text = append(text, c)
				return string(text), false
			}
			l.advance()
			// An escaped delimiter loses its backslash, anything else
			// passes through untouched.
			if n != close {
				text = append(text, c)
			}
			text = append(text, n)
			continue
		}
		text = append(text, c)
	}
}

func isIdentifierStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
