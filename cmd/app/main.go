package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"tinylisp/internal/repl"
	"tinylisp/internal/transcript"
	"tinylisp/internal/util"
)

var (
	// Version is stamped at build time with -ldflags.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// logging
	logLevel string
	logFile  string
	// config vars
	configFile       string
	debugAST         bool
	transcriptDriver string
	transcriptDSN    string
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	flag.StringVar(&configFile, "config", "", "Path to a TOML configuration file")
	// parser config
	flag.BoolVar(&debugAST, "debug-ast", false, "Write the JSON AST of every program to stderr")
	// transcript config
	flag.StringVar(&transcriptDriver, "transcript-driver", "", "Transcript database driver: sqlite3, mysql, postgres")
	flag.StringVar(&transcriptDSN, "transcript-dsn", "", "Transcript database connection string")
	// log config
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {

	flag.Parse()

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	os.Exit(run())
}

func run() int {
	config, err := buildConfiguration()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Creates a new Logger that uses a JSONHandler to write to the configured sink
	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     util.ParseLogLevel(config.LogLevel),
	}
	logWriter := configureLogWriter(config.LogFile)
	defaultLogger := slog.New(slog.NewJSONHandler(logWriter, loggerOptions))
	slog.SetDefault(defaultLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *transcript.Store
	if config.Transcript.Driver != "" {
		store, err = transcript.Open(ctx, config.Transcript.Driver, config.Transcript.DSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "transcript disabled: %v\n", err)
			slog.Warn("transcript disabled", slog.Any("error", err))
		} else {
			defer store.Close()
		}
	}

	if flag.NArg() > 0 {
		return runFile(ctx, config, store, flag.Arg(0))
	}

	if !isTerminal(os.Stdin) {
		repl.Start(os.Stdin, os.Stdout, config, store)
		return 0
	}

	if err := repl.Run(ctx, config, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// buildConfiguration layers defaults, the -config file and explicitly set flags.
func buildConfiguration() (util.Configuration, error) {
	config := util.DefaultConfiguration()
	config.Version = Version
	config.BuildDate = BuildDate
	config.Commit = Commit

	if configFile != "" {
		var err error
		config, err = util.LoadConfiguration(configFile, config)
		if err != nil {
			return config, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug-ast":
			config.DebugAST = debugAST
		case "transcript-driver":
			config.Transcript.Driver = transcriptDriver
		case "transcript-dsn":
			config.Transcript.DSN = transcriptDSN
		case "log-level":
			config.LogLevel = logLevel
		case "log-file":
			config.LogFile = logFile
		}
	})
	return config, nil
}

// runFile evaluates every top-level form of path ("-" for stdin) and returns
// the process exit code.
func runFile(ctx context.Context, config util.Configuration, store *transcript.Store, path string) int {
	var src []byte
	var err error
	if path == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read '%s': %v\n", path, err)
		return 1
	}

	session := repl.NewSession(os.Stdout, store)
	if config.DebugAST {
		session.DebugAST = os.Stderr
	}
	if failed := session.EvalForms(ctx, string(src)); failed > 0 {
		slog.Info("program finished with errors", slog.String("file", path), slog.Int("failed", failed))
		return 1
	}
	return 0
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func configureLogWriter(logFile string) *os.File {
	var logWriter *os.File
	var err error
	if logFile != "" {
		// Create parent directories if they don't exist
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for '%s': %v; falling back to stderr\n", logFile, err)
			return os.Stderr
		}
		logWriter, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", logFile, err)
			logWriter = os.Stderr
		}
	} else {
		logWriter = os.Stderr
	}
	return logWriter
}

func printVersion() {

	fmt.Printf("tinylisp version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: tinylisp [options] [filename]

Options:
  -config <path>             Load settings from a TOML file. Flags override the file.
  -debug-ast                 Write the JSON AST of every program to stderr.
  -transcript-driver <name>  Record inputs and results with sqlite3, mysql or postgres.
  -transcript-dsn <dsn>      Connection string for the transcript database.
  -help                      Display this help information and exit.
  -version                   Display version information and exit.
  -log-level <level>         Set the log level: debug, info, warn, error. Default is 'error'.
  -log-file <path>           Specify a log file to write logs. Default is stderr.

Details:
TinyLisp evaluates S-Expressions and Q-Expressions. Without a filename an
interactive prompt is started; a filename of '-' reads the program from stdin.

Examples:
  tinylisp                                   Start the interactive prompt
  tinylisp prelude.lsp                       Evaluate every form in the file
  tinylisp -transcript-driver=sqlite3 -transcript-dsn=repl.db

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}
