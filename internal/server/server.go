// Package server implements the jpx language server: it tracks open
// documents, publishes syntax diagnostics, and answers completion and
// hover requests from the function catalog.
package server

import (
	"os"

	"jpxls/internal/catalog"
	"jpxls/internal/document"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
)

const serverName = "jpxls"

// Catalog is the read-only registry of jpx functions the server derives
// completion and hover content from.
type Catalog interface {
	Functions() []catalog.Descriptor
	Lookup(name string) (catalog.Descriptor, bool)
}

// Compiler validates jpx expression text. A *compiler.Error return carries
// the position that becomes a diagnostic; any other error is treated as a
// compiler fault and produces no diagnostics.
type Compiler interface {
	Compile(text string) error
}

type Server struct {
	handler  protocol.Handler
	glspSrv  *glspserver.Server
	docs     *document.Store
	catalog  Catalog
	compiler Compiler
	version  string
	log      commonlog.Logger
	exitFn   func(code int)
}

// NewServer wires the LSP handler around the given catalog and compiler.
// The version string is reported back to the client during initialize.
func NewServer(cat Catalog, comp Compiler, version string) *Server {
	s := &Server{
		docs:     document.NewStore(),
		catalog:  cat,
		compiler: comp,
		version:  version,
		log:      commonlog.GetLogger("jpxls.server"),
		exitFn:   os.Exit,
	}

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		Exit:        s.exit,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentCompletion: s.textDocumentCompletion,
		TextDocumentHover:      s.textDocumentHover,
	}

	s.glspSrv = glspserver.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio starts serving LSP over stdin/stdout.
func (s *Server) RunStdio() error {
	return s.glspSrv.RunStdio()
}

func (s *Server) publishDiagnostics(
	context *glsp.Context,
	uri string,
	version uint64,
	diagnostics []protocol.Diagnostic,
) {
	// A concurrent edit may have produced newer text while these
	// diagnostics were computed; publishing them now would show the user
	// errors for text they no longer have.
	if !s.docs.Current(uri, version) {
		s.log.Debugf("dropping stale diagnostics for %s", uri)
		return
	}
	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}
