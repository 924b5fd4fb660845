package server

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	text := params.TextDocument.Text

	version := s.docs.Put(uri, text)
	s.publishDiagnostics(context, uri, version, s.diagnose(text))
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	// The server announces full sync only, so a change notification
	// carries the whole document as its single content entry. Anything
	// else is a client contract violation: extra entries and incremental
	// (ranged) events are rejected rather than half-applied.
	if len(params.ContentChanges) > 1 {
		s.log.Warningf("change for %s has %d content entries, honoring only the first",
			uri, len(params.ContentChanges))
	}
	text, ok := wholeText(params.ContentChanges)
	if !ok {
		s.log.Warningf("ignoring non-full change event for %s", uri)
		return nil
	}

	version := s.docs.Put(uri, text)
	s.publishDiagnostics(context, uri, version, s.diagnose(text))
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.docs.Remove(uri)

	// Clear any error still showing in the client for the closed file.
	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// wholeText extracts the new full document text from the first content
// entry of a change notification.
func wholeText(changes []any) (string, bool) {
	if len(changes) == 0 {
		return "", false
	}
	switch change := changes[0].(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return change.Text, true
	case protocol.TextDocumentContentChangeEvent:
		if change.Range == nil {
			return change.Text, true
		}
	}
	return "", false
}
