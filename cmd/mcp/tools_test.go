package main

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error),
	args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected mcp.TextContent, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestEvalTool(t *testing.T) {
	ts := newToolServer(nil)

	tests := []struct {
		expr    string
		output  string
		isError bool
	}{
		{"def {x} 41", "()", false},
		{"+ x 1", "42", false},
		{"(\\ {a b} {* a b}) 6", "(\\ {b} {* a b})", false},
		{"nope", "Error: Unbound Symbol 'nope'", true},
		{"/ 1 0", "Error: Division By Zero!", true},
	}

	for _, tt := range tests {
		got, isError := callTool(t, ts.handleEval, map[string]any{"expr": tt.expr})
		if got != tt.output {
			t.Errorf("eval %q: expected %q, got %q", tt.expr, tt.output, got)
		}
		if isError != tt.isError {
			t.Errorf("eval %q: expected isError=%v, got %v", tt.expr, tt.isError, isError)
		}
	}
}

func TestEvalToolRequiresExpr(t *testing.T) {
	ts := newToolServer(nil)
	_, isError := callTool(t, ts.handleEval, map[string]any{})
	if !isError {
		t.Errorf("expected a tool error for a missing expr")
	}
}

func TestEnvAndResetTools(t *testing.T) {
	ts := newToolServer(nil)
	callTool(t, ts.handleEval, map[string]any{"expr": "def {answer} 42"})

	env, _ := callTool(t, ts.handleEnv, nil)
	if !strings.Contains(env, "answer 42") {
		t.Errorf("expected answer in env listing, got %q", env)
	}
	if !strings.HasPrefix(env, "+ <builtin>") {
		t.Errorf("expected builtins first in env listing, got %q", env)
	}

	msg, _ := callTool(t, ts.handleReset, nil)
	if msg != "environment reset" {
		t.Errorf("unexpected reset message %q", msg)
	}

	got, isError := callTool(t, ts.handleEval, map[string]any{"expr": "answer"})
	if !isError || got != "Error: Unbound Symbol 'answer'" {
		t.Errorf("expected answer to be unbound after reset, got %q", got)
	}
}
