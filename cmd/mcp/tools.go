package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"tinylisp/internal/object"
	"tinylisp/internal/repl"
	"tinylisp/internal/transcript"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// toolServer serializes tool calls against one persistent session.
type toolServer struct {
	mu      sync.Mutex
	session *repl.Session
	store   *transcript.Store
}

func newToolServer(store *transcript.Store) *toolServer {
	return &toolServer{
		session: repl.NewSession(io.Discard, store),
		store:   store,
	}
}

func (ts *toolServer) register(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("tinylisp_eval",
			mcp.WithDescription("Evaluate TinyLisp source in the persistent global environment. Returns the printed result."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Program to evaluate, e.g. (def {x} 10) or + 1 2"),
			),
		),
		ts.handleEval,
	)

	s.AddTool(
		mcp.NewTool("tinylisp_env",
			mcp.WithDescription("List every name bound in the global environment with its value."),
		),
		ts.handleEnv,
	)

	s.AddTool(
		mcp.NewTool("tinylisp_reset",
			mcp.WithDescription("Discard all definitions and start from a fresh global environment."),
		),
		ts.handleReset,
	)
}

func (ts *toolServer) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	out, isError := ts.session.Eval(ctx, expr)
	out = strings.TrimRight(out, "\n")
	if isError {
		return mcp.NewToolResultError(out), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (ts *toolServer) handleEnv(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	env := ts.session.Env
	var out strings.Builder
	for _, name := range env.Names() {
		val, _ := env.Lookup(name)
		fmt.Fprintf(&out, "%s %s\n", name, object.Print(val))
	}
	return mcp.NewToolResultText(strings.TrimRight(out.String(), "\n")), nil
}

func (ts *toolServer) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.session = repl.NewSession(io.Discard, ts.store)
	return mcp.NewToolResultText("environment reset"), nil
}
