package compiler

// Pratt parser for the jpx expression grammar. Binding powers follow the
// JMESPath specification; the parser only checks structure, so "parsing"
// a construct means consuming its tokens and returning the first error.

var bindingPower = map[tokenType]int{
	tokEOF:      0,
	tokRparen:   0,
	tokRbracket: 0,
	tokRbrace:   0,
	tokComma:    0,
	tokColon:    0,
	tokPipe:     1,
	tokOr:       2,
	tokAnd:      3,
	tokEQ:       5,
	tokNE:       5,
	tokLT:       5,
	tokLTE:      5,
	tokGT:       5,
	tokGTE:      5,
	tokFlatten:  9,
	tokStar:     20,
	tokFilter:   21,
	tokDot:      40,
	tokNot:      45,
	tokLbrace:   50,
	tokLbracket: 55,
	tokLparen:   60,
}

type parser struct {
	toks []token
	pos  int
}

// parse checks a complete expression: one top-level expression followed by
// end of input.
func parse(toks []token) *Error {
	p := &parser{toks: toks}
	if err := p.expression(0); err != nil {
		return err
	}
	if tok := p.peek(); tok.typ != tokEOF {
		return p.unexpected(tok)
	}
	return nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	tok := p.toks[p.pos]
	if tok.typ != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) unexpected(tok token) *Error {
	if tok.typ == tokEOF {
		return &Error{Line: tok.line, Column: tok.col, Message: "unexpected end of expression"}
	}
	return &Error{Line: tok.line, Column: tok.col, Message: "unexpected token " + tok.describe()}
}

// expect consumes the next token, which must be of the given type.
func (p *parser) expect(typ tokenType) *Error {
	tok := p.advance()
	if tok.typ != typ {
		return p.unexpected(tok)
	}
	return nil
}

func (p *parser) expression(rbp int) *Error {
	if err := p.nud(p.advance()); err != nil {
		return err
	}
	for bindingPower[p.peek().typ] > rbp {
		if err := p.led(p.advance()); err != nil {
			return err
		}
	}
	return nil
}

// nud handles a token in prefix position.
func (p *parser) nud(tok token) *Error {
	switch tok.typ {
	case tokIdentifier:
		if p.peek().typ == tokLparen {
			p.advance()
			return p.functionArgs()
		}
		return nil
	case tokQuotedIdentifier:
		if p.peek().typ == tokLparen {
			return &Error{Line: tok.line, Column: tok.col,
				Message: "quoted identifier cannot be used as a function name"}
		}
		return nil
	case tokRawString, tokLiteral, tokCurrent:
		return nil
	case tokStar:
		return p.projectionRHS()
	case tokFlatten:
		return p.projectionRHS()
	case tokFilter:
		return p.filterRest()
	case tokLbracket:
		return p.bracketSpecifier(true)
	case tokLbrace:
		return p.multiSelectHash()
	case tokExpref:
		return p.expression(bindingPower[tokExpref])
	case tokNot:
		return p.expression(bindingPower[tokNot])
	case tokLparen:
		if err := p.expression(0); err != nil {
			return err
		}
		return p.expect(tokRparen)
	}
	return p.unexpected(tok)
}

// led handles a token in infix position.
func (p *parser) led(tok token) *Error {
	switch tok.typ {
	case tokDot:
		return p.dotRHS()
	case tokPipe, tokOr, tokAnd, tokEQ, tokNE, tokLT, tokLTE, tokGT, tokGTE:
		return p.expression(bindingPower[tok.typ])
	case tokFlatten:
		return p.projectionRHS()
	case tokFilter:
		return p.filterRest()
	case tokLbracket:
		return p.bracketSpecifier(false)
	}
	return p.unexpected(tok)
}

// functionArgs consumes a comma-separated argument list up to ')'. The
// opening parenthesis has already been consumed.
func (p *parser) functionArgs() *Error {
	if p.peek().typ == tokRparen {
		p.advance()
		return nil
	}
	for {
		if err := p.expression(0); err != nil {
			return err
		}
		switch tok := p.advance(); tok.typ {
		case tokRparen:
			return nil
		case tokComma:
		default:
			return p.unexpected(tok)
		}
	}
}

// dotRHS consumes what may follow '.': an identifier, a quoted identifier,
// '*', a multiselect hash, or a multiselect list.
func (p *parser) dotRHS() *Error {
	tok := p.advance()
	switch tok.typ {
	case tokIdentifier:
		if p.peek().typ == tokLparen {
			p.advance()
			return p.functionArgs()
		}
		return nil
	case tokQuotedIdentifier:
		return nil
	case tokStar:
		return nil
	case tokLbrace:
		return p.multiSelectHash()
	case tokLbracket:
		return p.multiSelectList()
	}
	return p.unexpected(tok)
}

// projectionRHS lets a projection end bare ("foo[]") or continue with a
// sub-expression ("foo[].bar"); the led loop in expression handles the
// continuation, so nothing is consumed here.
func (p *parser) projectionRHS() *Error {
	return nil
}

// filterRest consumes the comparison expression and closing ']' of "[?".
func (p *parser) filterRest() *Error {
	if err := p.expression(0); err != nil {
		return err
	}
	return p.expect(tokRbracket)
}

// bracketSpecifier consumes what may appear inside '[' ... ']': a star, an
// index, or a slice. In prefix position ("[1, 2]") the bracket can also be
// a multiselect list.
func (p *parser) bracketSpecifier(prefix bool) *Error {
	switch p.peek().typ {
	case tokStar:
		p.advance()
		return p.expect(tokRbracket)
	case tokNumber, tokColon:
		return p.sliceRest()
	}
	if prefix {
		return p.multiSelectList()
	}
	return p.unexpected(p.advance())
}

// sliceRest consumes an index or slice expression and its closing ']':
// sequences of numbers and up to two colons.
func (p *parser) sliceRest() *Error {
	colons := 0
	expectNumber := true
	for {
		switch tok := p.advance(); tok.typ {
		case tokRbracket:
			return nil
		case tokColon:
			colons++
			if colons > 2 {
				return &Error{Line: tok.line, Column: tok.col,
					Message: "too many colons in slice expression"}
			}
			expectNumber = true
		case tokNumber:
			if !expectNumber {
				return p.unexpected(tok)
			}
			expectNumber = false
		default:
			return p.unexpected(tok)
		}
	}
}

// multiSelectList consumes "expr, expr, ..." up to ']'. The opening '['
// has already been consumed.
func (p *parser) multiSelectList() *Error {
	for {
		if err := p.expression(0); err != nil {
			return err
		}
		switch tok := p.advance(); tok.typ {
		case tokRbracket:
			return nil
		case tokComma:
		default:
			return p.unexpected(tok)
		}
	}
}

// multiSelectHash consumes "key: expr, ..." up to '}'. The opening '{'
// has already been consumed.
func (p *parser) multiSelectHash() *Error {
	for {
		key := p.advance()
		if key.typ != tokIdentifier && key.typ != tokQuotedIdentifier {
			return p.unexpected(key)
		}
		if err := p.expect(tokColon); err != nil {
			return err
		}
		if err := p.expression(0); err != nil {
			return err
		}
		switch tok := p.advance(); tok.typ {
		case tokRbrace:
			return nil
		case tokComma:
		default:
			return p.unexpected(tok)
		}
	}
}
