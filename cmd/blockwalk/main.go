// Package main is the entry point for the blockwalk editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/blockwalk/internal/app"
	"github.com/dshills/blockwalk/internal/config"
	"github.com/dshills/blockwalk/internal/config/watcher"
	"github.com/dshills/blockwalk/internal/engine/document"
	"github.com/dshills/blockwalk/internal/renderer/backend"
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
	logFile    string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	settingsPath := opts.configPath
	if settingsPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: settings will not be saved: %v\n", err)
		}
		settingsPath = p
	}

	settings, err := loadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}

	logger, closeLog, err := newLogger(opts.logFile, settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	application := app.New(document.New(),
		app.WithSettings(settings, settingsPath),
		app.WithClipboard(app.SystemClipboard()),
		app.WithLogger(logger),
	)
	if opts.file != "" {
		if err := application.Open(opts.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := runEditor(ctx, application, settingsPath, logger)

	if err := application.SaveSettings(); err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

// runEditor owns the terminal so that it is restored before run reports
// errors.
func runEditor(ctx context.Context, application *app.App, settingsPath string, logger *app.Logger) error {
	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Shutdown()

	if settingsPath != "" {
		w, err := watchSettings(settingsPath, term, logger)
		if err != nil {
			logger.Warn("not watching settings: %v", err)
		} else {
			defer func() {
				if err := w.Stop(); err != nil {
					logger.Warn("stopping settings watcher: %v", err)
				}
			}()
		}
	}

	return application.Run(ctx, term)
}

func loadSettings(path string) (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if path == "" {
		s = config.Default()
	} else if s, err = config.Load(path); err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(s); err != nil {
		return nil, err
	}
	return s, nil
}

// watchSettings reloads the settings file when it changes on disk and
// hands the result to the event loop.
func watchSettings(path string, b backend.Backend, logger *app.Logger) (*watcher.Watcher, error) {
	logger = logger.WithComponent("watcher")
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		logger.Warn("%v", err)
	}))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return nil, err
	}

	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			return
		}
		s, err := loadSettings(path)
		if err != nil {
			logger.Warn("reloading %s: %v", ev.Path, err)
			return
		}
		err = app.Post(b, func(a *app.App) {
			if err := a.ApplySettings(s); err != nil {
				logger.Warn("%v", err)
			}
			logger.Info("reloaded %s", ev.Path)
		})
		if err != nil {
			logger.Warn("posting reload: %v", err)
		}
	})

	if err := w.Start(); err != nil {
		_ = w.Stop()
		return nil, err
	}
	return w, nil
}

func newLogger(path, level string) (*app.Logger, func(), error) {
	cfg := app.DefaultLoggerConfig()
	cfg.Level = app.ParseLogLevel(level)
	if path == "" {
		return app.NewLogger(cfg), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	cfg.Output = f
	return app.NewLogger(cfg), func() { _ = f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to the settings file")
	flag.StringVar(&opts.configPath, "c", "", "Path to the settings file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write the log to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "blockwalk - block-structured text editor with spoken feedback\n\n")
		fmt.Fprintf(os.Stderr, "Usage: blockwalk [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %sLOG_LEVEL, %sBEEP_ON_CAPITAL_CHARACTERS,\n", config.EnvPrefix, config.EnvPrefix)
		fmt.Fprintf(os.Stderr, "  %sREFORMAT_BEGIN, %sREFORMAT_END override the settings file\n", config.EnvPrefix, config.EnvPrefix)
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("blockwalk %s\n", version)
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

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: only one file can be edited at a time\n")
		os.Exit(1)
	}
	opts.file = flag.Arg(0)

	return opts
}
