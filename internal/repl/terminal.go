package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"tinylisp/internal/object"
	"tinylisp/internal/transcript"
	"tinylisp/internal/util"

	"github.com/peterh/liner"
)

// Run is the interactive front end: line editing, a history file, and tab
// completion over the names bound in the global environment. store may be nil.
func Run(ctx context.Context, cfg util.Configuration, store *transcript.Store) error {
	fmt.Printf("TinyLisp Version %s\n", cfg.Version)
	fmt.Print("Press Ctrl+c to Exit\n\n")

	session := NewSession(os.Stdout, store)
	if cfg.DebugAST {
		session.DebugAST = os.Stderr
	}
	slog.Info("repl session started", slog.String("session", session.ID))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return complete(session.Env, line)
	})

	loadHistory(ctx, ln, cfg, store)
	defer saveHistory(ln, cfg)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		src, ok := readExpression(ln, cfg.Prompt, cfg.ContPrompt)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		session.Eval(ctx, src)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readExpression prompts until the collected lines no longer end inside an
// open expression. ok is false on EOF or Ctrl+c.
func readExpression(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			slog.Warn("prompt failed", slog.Any("error", err))
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !needsMore(src) {
			return src, true
		}
	}
}

func loadHistory(ctx context.Context, ln *liner.State, cfg util.Configuration, store *transcript.Store) {
	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
		return
	}

	if store == nil {
		return
	}
	entries, err := store.Recent(ctx, cfg.HistoryLimit)
	if err != nil {
		slog.Warn("failed to seed history from transcript", slog.Any("error", err))
		return
	}
	for _, e := range entries {
		ln.AppendHistory(strings.ReplaceAll(e.Input, "\n", " "))
	}
}

func saveHistory(ln *liner.State, cfg util.Configuration) {
	if cfg.HistoryFile == "" {
		return
	}
	f, err := os.Create(cfg.HistoryFile)
	if err != nil {
		slog.Warn("failed to write history", slog.Any("error", err))
		return
	}
	_, _ = ln.WriteHistory(f)
	_ = f.Close()
}

// complete offers every bound name starting with the word under the cursor.
func complete(env *object.Environment, line string) []string {
	start := strings.LastIndexAny(line, " \t(){}") + 1
	prefix := line[start:]

	var out []string
	for _, name := range env.Root().Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, line[:start]+name)
		}
	}
	sort.Strings(out)
	return out
}
