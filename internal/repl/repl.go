package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"tinylisp/internal/parser"
	"tinylisp/internal/transcript"
	"tinylisp/internal/util"
)

// Start runs a plain prompt loop over in until it is exhausted. Lines are
// joined while an expression is still open. store may be nil.
func Start(in io.Reader, out io.Writer, cfg util.Configuration, store *transcript.Store) {
	ctx := context.Background()
	scanner := bufio.NewScanner(in)
	session := NewSession(out, store)
	if cfg.DebugAST {
		session.DebugAST = os.Stderr
	}

	var pending strings.Builder
	for {
		if pending.Len() == 0 {
			fmt.Fprint(out, cfg.Prompt)
		} else {
			fmt.Fprint(out, cfg.ContPrompt)
		}
		if !scanner.Scan() {
			if pending.Len() > 0 {
				session.Eval(ctx, pending.String())
			}
			return
		}

		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(scanner.Text())

		src := pending.String()
		if needsMore(src) {
			continue
		}
		pending.Reset()

		if strings.TrimSpace(src) == "" {
			continue
		}
		session.Eval(ctx, src)
	}
}

// needsMore reports whether src stops inside an unclosed '(' or '{'.
func needsMore(src string) bool {
	_, p := parser.Parse(src)
	return p.Incomplete()
}
