package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"tinylisp/internal/util"
)

func TestRunFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		program  string
		expected int
	}{
		{"clean program", "(def {x} 2)\n(+ x 1)\n", 0},
		{"program with an error", "(def {x} 2)\n(head {})\n", 1},
		{"parser error", "(+ 1\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".lsp")
			if err := os.WriteFile(path, []byte(tt.program), 0o644); err != nil {
				t.Fatal(err)
			}
			got := runFile(context.Background(), util.DefaultConfiguration(), nil, path)
			if got != tt.expected {
				t.Errorf("expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestRunFileMissing(t *testing.T) {
	got := runFile(context.Background(), util.DefaultConfiguration(), nil,
		filepath.Join(t.TempDir(), "missing.lsp"))
	if got != 1 {
		t.Errorf("expected exit code 1, got %d", got)
	}
}

func TestBuildConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tinylisp.toml")
	content := "prompt = \"lisp> \"\n[transcript]\ndriver = \"sqlite3\"\ndsn = \":memory:\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	configFile = path
	defer func() { configFile = "" }()

	config, err := buildConfiguration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Prompt != "lisp> " {
		t.Errorf("expected prompt from file, got %q", config.Prompt)
	}
	if config.Transcript.Driver != "sqlite3" || config.Transcript.DSN != ":memory:" {
		t.Errorf("unexpected transcript config %+v", config.Transcript)
	}
	if config.Version != Version {
		t.Errorf("expected version %q, got %q", Version, config.Version)
	}
}
