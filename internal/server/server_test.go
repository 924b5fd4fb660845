package server

import (
	"jpxls/internal/catalog"
	"jpxls/internal/compiler"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// fakeCompiler returns a fixed result for every compile attempt.
type fakeCompiler struct {
	err error
}

func (f fakeCompiler) Compile(string) error {
	return f.err
}

func testCatalog() *catalog.Registry {
	r := catalog.New()
	r.Register(catalog.Descriptor{
		Name:        "starts_with",
		Category:    catalog.Standard,
		Description: "Returns true if the subject starts with the prefix",
		Signature:   "starts_with(string, string) -> boolean",
		Example:     "starts_with('hello', 'he') -> true",
	})
	r.Register(catalog.Descriptor{
		Name:        "max",
		Category:    catalog.Standard,
		Description: "Returns the maximum value in an array",
		Signature:   "array[number] -> number",
	})
	r.Register(catalog.Descriptor{
		Name:        "upper",
		Aliases:     []string{"upper_case"},
		Category:    catalog.String,
		Description: "Convert string to uppercase",
		Signature:   "string -> string",
		JEP:         "JEP-014",
		Example:     "upper('hello') -> \"HELLO\"",
	})
	return r
}

// testServer builds a server around the test catalog and the given
// compiler, with process exit stubbed out.
func testServer(comp Compiler) *Server {
	s := NewServer(testCatalog(), comp, "test")
	s.exitFn = func(int) {}
	return s
}

func realServer() *Server {
	return testServer(compiler.New())
}

// mockContext returns a minimal glsp.Context for handlers whose
// notifications are irrelevant to the test.
func mockContext() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {},
	}
}

// capturingContext returns a context that records every published
// diagnostics notification.
func capturingContext() (*glsp.Context, *[]protocol.PublishDiagnosticsParams) {
	var captured []protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				captured = append(captured, params.(protocol.PublishDiagnosticsParams))
			}
		},
	}
	return ctx, &captured
}

func openParams(uri, text string) *protocol.DidOpenTextDocumentParams {
	return &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: text},
	}
}

func changeParams(uri string, changes ...any) *protocol.DidChangeTextDocumentParams {
	return &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: changes,
	}
}

func hoverParams(uri string, line, character uint32) *protocol.HoverParams {
	return &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position: protocol.Position{
				Line:      protocol.UInteger(line),
				Character: protocol.UInteger(character),
			},
		},
	}
}
