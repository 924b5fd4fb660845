package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestInitializeCapabilities(t *testing.T) {
	s := testServer(fakeCompiler{})

	result, err := s.initialize(mockContext(), &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(protocol.InitializeResult)
	require.True(t, ok, "initialize should return InitializeResult, got %T", result)

	sync, ok := init.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	require.NotNil(t, sync.OpenClose)
	assert.True(t, *sync.OpenClose)
	require.NotNil(t, sync.Change)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, *sync.Change)

	require.NotNil(t, init.Capabilities.CompletionProvider)
	assert.Equal(t, []string{"(", ","}, init.Capabilities.CompletionProvider.TriggerCharacters)

	require.NotNil(t, init.ServerInfo)
	assert.Equal(t, "jpxls", init.ServerInfo.Name)
	require.NotNil(t, init.ServerInfo.Version)
	assert.Equal(t, "test", *init.ServerInfo.Version)
}

func TestShutdownSucceeds(t *testing.T) {
	s := testServer(fakeCompiler{})
	assert.NoError(t, s.shutdown(mockContext()))
}

func TestExitCallsExitFunc(t *testing.T) {
	s := testServer(fakeCompiler{})

	var code *int
	s.exitFn = func(c int) { code = &c }

	require.NoError(t, s.exit(mockContext()))
	require.NotNil(t, code, "exit must terminate the process")
	assert.Equal(t, 0, *code)
}

func TestSetTraceIsAccepted(t *testing.T) {
	s := testServer(fakeCompiler{})
	assert.NoError(t, s.setTrace(mockContext(), &protocol.SetTraceParams{
		Value: protocol.TraceValueOff,
	}))
}
