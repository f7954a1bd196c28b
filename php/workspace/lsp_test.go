package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestURIConversion(t *testing.T) {
	path, err := uriToPath("file:///home/user/My%20Project/a.php")
	require.NoError(t, err)
	require.Equal(t, "/home/user/My Project/a.php", path)

	path, err = uriToPath("untitled:1")
	require.NoError(t, err)
	require.Equal(t, "untitled:1", path)

	require.Equal(t, "file:///home/user/My%20Project/a.php", pathToURI("/home/user/My Project/a.php"))
}

func TestToProtocolDiagnostics(t *testing.T) {
	ws := New(".", nil)
	info := ws.UpdateFile("a.php", []byte("<?php\n  )"))

	got := toProtocolDiagnostics(info.Diagnostics)
	require.Len(t, got, 1)
	require.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 3},
	}, got[0].Range)
	require.Equal(t, protocol.DiagnosticSeverityError, *got[0].Severity)
	require.Equal(t, "phpcst", *got[0].Source)
	require.Equal(t, `unexpected ")"`, got[0].Message)

	require.NotNil(t, toProtocolDiagnostics(nil))
}

func TestToDocumentSymbols(t *testing.T) {
	ws := New(".", nil)
	info := ws.UpdateFile("a.php", []byte("<?php class A {\n  function f() {}\n}"))

	got := toDocumentSymbols(info.Symbols)
	require.Len(t, got, 1)
	require.Equal(t, "A", got[0].Name)
	require.Equal(t, protocol.SymbolKindClass, got[0].Kind)
	require.Nil(t, got[0].Detail)
	require.Equal(t, protocol.Position{Line: 0, Character: 12}, got[0].SelectionRange.Start)

	require.Len(t, got[0].Children, 1)
	method := got[0].Children[0]
	require.Equal(t, "f", method.Name)
	require.Equal(t, protocol.SymbolKindMethod, method.Kind)
	require.Equal(t, "()", *method.Detail)
	require.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 17},
	}, method.Range)
}

func TestPublishSendsDiagnostics(t *testing.T) {
	ls := NewLSPServer("test", nil)
	ls.workspace = New(".", nil)
	info := ls.workspace.UpdateFile("a.php", []byte("<?php )"))

	var method string
	var params protocol.PublishDiagnosticsParams
	ls.notify = func(m string, p any) {
		method = m
		params = p.(protocol.PublishDiagnosticsParams)
	}

	ls.publish("file:///a.php", info)
	require.Equal(t, "textDocument/publishDiagnostics", method)
	require.Equal(t, "file:///a.php", params.URI)
	require.Len(t, params.Diagnostics, 1)

	ls.publish("file:///gone.php", nil)
	require.Empty(t, params.Diagnostics)
	require.NotNil(t, params.Diagnostics)
}
