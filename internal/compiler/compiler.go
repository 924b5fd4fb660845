// Package compiler validates jpx expression syntax. It does not evaluate
// anything; Compile either accepts the text or reports the first syntax
// error with its zero-based position.
package compiler

// Compiler turns expression text into an accepted/rejected verdict. A nil
// return means the text compiled; a syntax problem comes back as *Error.
type Compiler interface {
	Compile(text string) error
}

// Error is the located syntax error a compile attempt produces. Line and
// Column are zero-based and point at the offending character (or at the
// end of input when the expression is cut short).
type Error struct {
	Line    uint32
	Column  uint32
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

type checker struct{}

// New returns the builtin jpx syntax checker.
func New() Compiler {
	return checker{}
}

func (checker) Compile(text string) error {
	toks, err := lex(text)
	if err != nil {
		return err
	}
	if err := parse(toks); err != nil {
		return err
	}
	return nil
}
