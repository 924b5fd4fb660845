package server

import (
	"errors"

	"jpxls/internal/compiler"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// diagnosticSource labels published diagnostics with the language they
// come from.
const diagnosticSource = "jpx"

// diagnose compiles text and converts the result into diagnostics: an
// empty list on success, exactly one one-character-wide error diagnostic
// otherwise. Compile errors are data here, never faults.
func (s *Server) diagnose(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	err := s.compiler.Compile(text)
	if err == nil {
		return diagnostics
	}

	var cerr *compiler.Error
	if !errors.As(err, &cerr) {
		// Without a position there is nothing to attach a diagnostic to.
		s.log.Errorf("compiler failed without a position: %v", err)
		return diagnostics
	}

	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      protocol.UInteger(cerr.Line),
				Character: protocol.UInteger(cerr.Column),
			},
			End: protocol.Position{
				Line:      protocol.UInteger(cerr.Line),
				Character: protocol.UInteger(cerr.Column + 1),
			},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	})
}
