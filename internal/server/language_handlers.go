package server

import (
	"fmt"
	"strings"

	"jpxls/internal/catalog"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentCompletion returns one entry per catalog function, in
// catalog order. The cursor position is deliberately ignored: the client
// filters and ranks.
func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	funcs := s.catalog.Functions()
	items := make([]protocol.CompletionItem, 0, len(funcs))

	kind := protocol.CompletionItemKindFunction
	format := protocol.InsertTextFormatSnippet
	for _, fn := range funcs {
		detail := fn.Signature
		insert := fn.Name + "($0)"
		items = append(items, protocol.CompletionItem{
			Label:  fn.Name,
			Kind:   &kind,
			Detail: &detail,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: completionDocs(fn),
			},
			InsertText:       &insert,
			InsertTextFormat: &format,
		})
	}
	return items, nil
}

func (s *Server) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	text, ok := s.docs.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	word, ok := wordAt(text, params.Position)
	if !ok {
		return nil, nil
	}
	fn, ok := s.catalog.Lookup(word)
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: renderHover(fn),
		},
	}, nil
}

func completionDocs(fn catalog.Descriptor) string {
	return fmt.Sprintf("%s\n\n**Category:** %s\n\n**Signature:** `%s`",
		fn.Description, fn.Category, fn.Signature)
}

// renderHover builds the markdown documentation block for one function.
// Aliases, JEP reference, and example lines only appear when the
// descriptor carries them.
func renderHover(fn catalog.Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", fn.Name)
	b.WriteString(fn.Description)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Signature:** `%s`\n\n", fn.Signature)
	fmt.Fprintf(&b, "**Category:** %s\n", fn.Category)

	if len(fn.Aliases) > 0 {
		fmt.Fprintf(&b, "\n**Aliases:** %s", strings.Join(fn.Aliases, ", "))
	}
	if fn.JEP != "" {
		fmt.Fprintf(&b, "\n**JEP:** %s", fn.JEP)
	}
	if fn.Example != "" {
		fmt.Fprintf(&b, "\n\n**Example:**\n```jpx\n%s\n```", fn.Example)
	}
	return b.String()
}
