package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPrompt      = "tinylisp> "
	DefaultContPrompt  = "......... "
	DefaultHistoryFile = ".tinylisp_history"
)

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	Prompt       string `toml:"prompt"`
	ContPrompt   string `toml:"cont_prompt"`
	HistoryFile  string `toml:"history_file"`
	HistoryLimit int    `toml:"history_limit"`
	DebugAST     bool   `toml:"debug_ast"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	Transcript TranscriptConfig `toml:"transcript"`
}

// TranscriptConfig selects the database/sql driver and DSN the REPL records
// its inputs to. An empty Driver disables recording.
type TranscriptConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

func DefaultConfiguration() Configuration {
	home := os.Getenv("TINYLISP_HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return Configuration{
		Prompt:       DefaultPrompt,
		ContPrompt:   DefaultContPrompt,
		HistoryFile:  filepath.Join(home, DefaultHistoryFile),
		HistoryLimit: 100,
		LogLevel:     "error",
	}
}

// LoadConfiguration overlays the TOML file at path onto base. Keys absent from
// the file keep the values already in base.
func LoadConfiguration(path string, base Configuration) (Configuration, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("failed to load configuration '%s': %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("unknown configuration keys in '%s': %v", path, undecoded)
	}
	return cfg, nil
}
