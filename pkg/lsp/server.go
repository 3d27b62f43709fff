package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
	"src.calc.sh/pkg/calc"
	"src.calc.sh/pkg/diag"
	"src.calc.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[lsp] ")

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	cfg calc.Config

	mu      sync.Mutex
	content map[lsp.DocumentURI]string
}

func newServer(cfg calc.Config) *server {
	return &server{cfg: cfg, content: make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":             s.initialize,
		"textDocument/didOpen":   s.didOpen,
		"textDocument/didChange": s.didChange,
		"textDocument/didClose":  s.didClose,
		"textDocument/hover":     s.hover,

		// Required by the protocol.
		"initialized": noop,
		"shutdown":    noop,
		// Called by clients even when server doesn't advertise support:
		// https://microsoft.github.io/language-server-protocol/specification#workspace_didChangeWatchedFiles
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			logger.Println("unknown method:", req.Method)
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			HoverProvider: true,
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.setContent(uri, content)
	go s.publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}

	// ContentChanges includes full text since the server is only advertised to
	// support that; see the initialize method.
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.setContent(uri, content)
	go s.publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didClose(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.content, params.TextDocument.URI)
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.mu.Lock()
	content := s.content[params.TextDocument.URI]
	s.mu.Unlock()
	return hoverAt(content, params.Position, s.cfg), nil
}

func (s *server) setContent(uri lsp.DocumentURI, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content[uri] = content
}

func (s *server) publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	err := conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(uri, content, s.cfg)})
	if err != nil {
		logger.Println("failed to publish diagnostics:", err)
	}
}

func diagnostics(uri lsp.DocumentURI, content string, cfg calc.Config) []lsp.Diagnostic {
	diags := []lsp.Diagnostic{}
	for _, line := range calc.EvalLines(calc.Source{Name: string(uri), Code: content}, cfg) {
		err := calc.UnpackError(line.Err)
		if err == nil {
			continue
		}
		diags = append(diags, lsp.Diagnostic{
			Range:    lspRangeFromRange(content, err),
			Severity: lsp.Error,
			Code:     err.Kind.String(),
			Source:   "calc",
			Message:  err.Message,
		})
	}
	return diags
}

// Returns the result of the line at pos, or an empty Hover for a blank line.
func hoverAt(content string, pos lsp.Position, cfg calc.Config) lsp.Hover {
	idx := lspPositionToIdx(content, pos)
	for _, line := range calc.EvalLines(calc.Source{Name: "hover", Code: content}, cfg) {
		if idx < line.From || idx > line.To {
			continue
		}
		if line.Err == calc.ErrBlank {
			break
		}
		text := "= " + line.Result()
		if err := calc.UnpackError(line.Err); err != nil {
			text = fmt.Sprintf("%s: %s", line.Result(), err.Message)
		}
		r := lspRangeFromRange(content, line)
		return lsp.Hover{
			Contents: []lsp.MarkedString{{Language: "text", Value: text}},
			Range:    &r,
		}
	}
	return lsp.Hover{Contents: []lsp.MarkedString{}}
}

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Generates (index, lspPosition) pairs in s, stopping if f returns false.
// Characters are counted in UTF-16 code units, as the protocol requires.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\n':
			p.Line++
			p.Character = 0
		case r <= 0xFFFF:
			p.Character++
		default:
			p.Character += 2
		}
	}
	f(len(s), p)
}
