package server

import (
	"errors"
	"testing"

	"jpxls/internal/compiler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseSuccess(t *testing.T) {
	s := testServer(fakeCompiler{})
	diagnostics := s.diagnose("anything")
	require.NotNil(t, diagnostics, "an empty list must still be publishable")
	assert.Empty(t, diagnostics)
}

func TestDiagnoseCompileError(t *testing.T) {
	s := testServer(fakeCompiler{err: &compiler.Error{
		Line:    2,
		Column:  14,
		Message: "unexpected token ')'",
	}})

	diagnostics := s.diagnose("anything")
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, protocol.UInteger(2), d.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(14), d.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(2), d.Range.End.Line)
	assert.Equal(t, protocol.UInteger(15), d.Range.End.Character)
	require.NotNil(t, d.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	require.NotNil(t, d.Source)
	assert.Equal(t, "jpx", *d.Source)
	assert.Equal(t, "unexpected token ')'", d.Message)
}

func TestDiagnoseIncludesNestedCause(t *testing.T) {
	s := testServer(fakeCompiler{err: &compiler.Error{
		Message: "invalid JSON literal",
		Cause:   errors.New("unexpected end of JSON input"),
	}})

	diagnostics := s.diagnose("anything")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "invalid JSON literal: unexpected end of JSON input", diagnostics[0].Message)
}

func TestDiagnoseUnpositionedErrorDegradesToEmpty(t *testing.T) {
	s := testServer(fakeCompiler{err: errors.New("compiler blew up")})
	assert.Empty(t, s.diagnose("anything"))
}

func TestDiagnoseWithRealCompiler(t *testing.T) {
	s := realServer()

	assert.Empty(t, s.diagnose("foo.bar[0] | starts_with(@, 'x')"))

	diagnostics := s.diagnose("foo(bar")
	require.Len(t, diagnostics, 1)
	d := diagnostics[0]
	assert.Equal(t, protocol.UInteger(0), d.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(7), d.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(8), d.Range.End.Character)
	assert.Equal(t, "unexpected end of expression", d.Message)
}
