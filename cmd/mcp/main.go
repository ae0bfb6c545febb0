package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"tinylisp/internal/transcript"
	"tinylisp/internal/util"

	"github.com/mark3labs/mcp-go/server"
)

var (
	Version    = "dev"
	configFile string
	logLevel   string
)

func init() {
	flag.StringVar(&configFile, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	config := util.DefaultConfiguration()
	if configFile != "" {
		var err error
		config, err = util.LoadConfiguration(configFile, config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}

	// stdout carries the protocol, so logs always go to stderr
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: util.ParseLogLevel(config.LogLevel),
	})))

	var store *transcript.Store
	if config.Transcript.Driver != "" {
		var err error
		store, err = transcript.Open(context.Background(), config.Transcript.Driver, config.Transcript.DSN)
		if err != nil {
			slog.Warn("transcript disabled", slog.Any("error", err))
		} else {
			defer store.Close()
		}
	}

	s := server.NewMCPServer(
		"tinylisp",
		Version,
		server.WithToolCapabilities(false),
	)
	newToolServer(store).register(s)

	slog.Info("serving tinylisp tools on stdio")
	if err := server.ServeStdio(s); err != nil {
		slog.Error("mcp server stopped", slog.Any("error", err))
		return 1
	}
	return 0
}
