package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tinylisp.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfiguration(t *testing.T) {
	t.Setenv("TINYLISP_HOME", "/tmp/tl-home")
	cfg := DefaultConfiguration()

	if cfg.Prompt != DefaultPrompt {
		t.Errorf("expected prompt %q, got %q", DefaultPrompt, cfg.Prompt)
	}
	if cfg.HistoryFile != filepath.Join("/tmp/tl-home", DefaultHistoryFile) {
		t.Errorf("unexpected history file %q", cfg.HistoryFile)
	}
	if cfg.Transcript.Driver != "" {
		t.Errorf("transcript should be disabled by default, got driver %q", cfg.Transcript.Driver)
	}
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
prompt = "lisp> "
debug_ast = true

[transcript]
driver = "sqlite3"
dsn = "file:transcript.db"
`)

	base := DefaultConfiguration()
	cfg, err := LoadConfiguration(path, base)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if cfg.Prompt != "lisp> " {
		t.Errorf("expected prompt override, got %q", cfg.Prompt)
	}
	if !cfg.DebugAST {
		t.Errorf("expected debug_ast to be set")
	}
	if cfg.Transcript.Driver != "sqlite3" || cfg.Transcript.DSN != "file:transcript.db" {
		t.Errorf("unexpected transcript config %+v", cfg.Transcript)
	}
	if cfg.ContPrompt != base.ContPrompt || cfg.HistoryLimit != base.HistoryLimit {
		t.Errorf("keys absent from the file should keep their defaults: %+v", cfg)
	}
}

func TestLoadConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"unknown key", `colour = "red"`, "unknown configuration keys"},
		{"bad syntax", `prompt = `, "failed to load configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfiguration(writeConfig(t, tt.body), DefaultConfiguration())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err, tt.contains)
			}
		})
	}
}
