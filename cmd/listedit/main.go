// Package main is the entry point for the listedit list editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dshills/listedit/internal/app"
	"github.com/dshills/listedit/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	noMenu     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := newLogger(cfg.Logging(), opts.logLevel, os.Stderr)
	warnConfigErrors(logger, cfg)
	if src := cfg.Source(); src != "" {
		logger.Debug("loaded config from %s", src)
	}

	application := app.New(app.Options{
		Input:    os.Stdin,
		Output:   os.Stdout,
		Config:   cfg,
		Logger:   logger,
		HideMenu: opts.noMenu,
	})

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nInterrupted.")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// newLogger builds the process logger from the logging settings. A
// non-empty flagLevel overrides the configured level.
func newLogger(logCfg config.LoggingConfig, flagLevel string, w io.Writer) *app.Logger {
	lc := app.DefaultLoggerConfig()
	lc.Level = app.ParseLogLevel(logCfg.Level)
	lc.Prefix = logCfg.Prefix
	lc.Output = w

	logger := app.NewLogger(lc)
	if flagLevel != "" {
		logger.SetLevel(app.ParseLogLevel(flagLevel))
	}
	return logger
}

// warnConfigErrors logs every setting that fell back to its default.
func warnConfigErrors(logger *app.Logger, cfg *config.Config) {
	errs := cfg.ConfigErrors()
	paths := make([]string, 0, len(errs))
	for path := range errs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		logger.WithField("setting", path).Warn("using default: %v", errs[path])
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.noMenu, "no-menu", false, "Do not print the menu before each prompt")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "listedit - linked list editor with undo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: listedit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  listedit                         Start with an empty list\n")
		fmt.Fprintf(os.Stderr, "  listedit -c listedit.toml        Use a config file\n")
		fmt.Fprintf(os.Stderr, "  echo '1 5 6 8' | listedit -no-menu\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("listedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
