// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lsp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/db47h/netlist"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":             s.initialize,
		"textDocument/didOpen":   s.didOpen,
		"textDocument/didChange": s.didChange,
		"textDocument/didClose":  s.didClose,

		"initialized":                     noop,
		"shutdown":                        noop,
		"exit":                            exit,
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error) {
	return nil, nil
}

func exit(_ context.Context, conn jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, conn.Close()
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handlers are called synchronously.

func (s *server) initialize(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, diagnostics(content))
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}
	// full sync: the last change holds the whole text.
	uri, content := params.TextDocument.URI, params.ContentChanges[len(params.ContentChanges)-1].Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, diagnostics(content))
	return nil, nil
}

func (s *server) didClose(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	delete(s.content, params.TextDocument.URI)
	go publishDiagnostics(ctx, conn, params.TextDocument.URI, []lsp.Diagnostic{})
	return nil, nil
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, diags []lsp.Diagnostic) {
	conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diags})
}

// diagnostics compiles content and converts the error, if any, to a
// diagnostic spanning the rest of the offending line.
func diagnostics(content string) []lsp.Diagnostic {
	_, err := netlist.Compile(content)
	if err == nil {
		return []lsp.Diagnostic{}
	}
	var line, col int
	source := "netlist"
	switch e := err.(type) {
	case *netlist.SyntaxError:
		line, col, source = e.Line, e.Col, "parse"
	case *netlist.Error:
		line, col, source = e.Line, e.Col, "elaborate"
	}
	msg := err.Error()
	if line > 0 {
		msg = strings.TrimPrefix(msg, "line "+strconv.Itoa(line)+":"+strconv.Itoa(col)+": ")
	}
	return []lsp.Diagnostic{{
		Range:    lineRange(content, line, col),
		Severity: lsp.Error,
		Source:   source,
		Message:  msg,
	}}
}

// lineRange returns the range from 1-based position line:col to the end of
// that line. col counts runes; LSP characters count UTF-16 code units.
func lineRange(content string, line, col int) lsp.Range {
	if line < 1 || col < 1 {
		return lsp.Range{}
	}
	var text []rune
	if lines := strings.Split(content, "\n"); line <= len(lines) {
		text = []rune(strings.TrimRight(lines[line-1], "\r"))
	}
	if col-1 > len(text) {
		// past the end of the line
		c := utf16Len(text) + col - 1 - len(text)
		p := lsp.Position{Line: line - 1, Character: c}
		return lsp.Range{Start: p, End: p}
	}
	return lsp.Range{
		Start: lsp.Position{Line: line - 1, Character: utf16Len(text[:col-1])},
		End:   lsp.Position{Line: line - 1, Character: utf16Len(text)},
	}
}

func utf16Len(rs []rune) int {
	return len(utf16.Encode(rs))
}
