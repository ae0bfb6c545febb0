package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"tinylisp/internal/ast"
	"tinylisp/internal/evaluator"
	"tinylisp/internal/object"
	"tinylisp/internal/parser"
	"tinylisp/internal/transcript"
)

// Session owns one global environment and prints every result to Out.
// Store and DebugAST are optional.
type Session struct {
	ID       string
	Env      *object.Environment
	Out      io.Writer
	Store    *transcript.Store
	DebugAST io.Writer
}

func NewSession(out io.Writer, store *transcript.Store) *Session {
	return &Session{
		ID:    strconv.FormatInt(time.Now().UnixNano(), 36),
		Env:   evaluator.NewGlobalEnvironment(),
		Out:   out,
		Store: store,
	}
}

// Eval evaluates src as a single program, prints the result and reports
// whether it was an error. Parser errors are printed and count as errors.
func (s *Session) Eval(ctx context.Context, src string) (string, bool) {
	program, p := s.parse(src)
	if program == nil {
		out := parserErrors(p)
		io.WriteString(s.Out, out)
		s.record(ctx, src, out, true)
		return out, true
	}

	result := evaluator.Eval(s.Env, evaluator.Read(program))
	out := object.Print(result)
	object.Println(s.Out, result)

	isError := object.IsError(result)
	s.record(ctx, src, out, isError)
	return out, isError
}

// EvalForms evaluates every top-level form of src on its own, the way a
// source file is run. It returns the number of forms that produced errors.
func (s *Session) EvalForms(ctx context.Context, src string) int {
	program, p := s.parse(src)
	if program == nil {
		out := parserErrors(p)
		io.WriteString(s.Out, out)
		s.record(ctx, src, out, true)
		return 1
	}

	failed := 0
	for _, form := range program.Expressions() {
		result := evaluator.Eval(s.Env, evaluator.Read(form))
		isError := object.IsError(result)
		if isError {
			failed++
		}
		object.Println(s.Out, result)
		s.record(ctx, src[form.Position:form.End()], object.Print(result), isError)
	}
	return failed
}

func (s *Session) parse(src string) (*ast.Node, *parser.Parser) {
	program, p := parser.Parse(src)
	if len(p.Errors()) != 0 {
		return nil, p
	}

	if s.DebugAST != nil {
		if out, err := parser.RenderASTAsJSON(program); err != nil {
			slog.Warn("failed to render AST", slog.Any("error", err))
		} else {
			io.WriteString(s.DebugAST, out)
		}
	}
	return program, p
}

func (s *Session) record(ctx context.Context, input, output string, isError bool) {
	if s.Store == nil {
		return
	}
	err := s.Store.Record(ctx, transcript.Entry{
		Session: s.ID,
		Input:   input,
		Output:  strings.TrimRight(output, "\n"),
		IsError: isError,
	})
	if err != nil {
		slog.Warn("transcript record failed", slog.Any("error", err))
	}
}

func parserErrors(p *parser.Parser) string {
	var out strings.Builder
	out.WriteString("parser errors:\n")
	for _, msg := range p.Errors() {
		fmt.Fprintf(&out, "\t%s\n", msg)
	}
	if lines := p.ErrorContext(); lines != "" {
		out.WriteString(lines)
		if !strings.HasSuffix(lines, "\n") {
			out.WriteString("\n")
		}
	}
	return out.String()
}
