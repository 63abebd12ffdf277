package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotcold/internal/config"
	"github.com/vovakirdan/hotcold/internal/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels"
	"github.com/vovakirdan/hotcold/internal/storage"
)

// sentryEnv is read when --sentry-dsn is not given.
const sentryEnv = "HOTCOLD_SENTRY_DSN"

var (
	logger        *log.Logger
	gameConfig    config.Config
	sentryEnabled bool
)

// setup runs before every command: logging, configuration and error reporting.
func setup(cmd *cobra.Command, _ []string) error {
	logger = newLogger(os.Stderr)
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	gameConfig, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if err := initSentry(); err != nil {
		// Reporting is optional; the game works without it.
		logger.Warn("sentry disabled", "error", err)
	}
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hotcold",
	})
}

func initSentry() error {
	dsn := flagSentryDSN
	if dsn == "" {
		dsn = os.Getenv(sentryEnv)
	}
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
	}); err != nil {
		return err
	}
	sentryEnabled = true
	logger.Debug("sentry enabled")
	return nil
}

// reportError sends err to Sentry when reporting is enabled.
func reportError(err error) {
	if !sentryEnabled {
		return
	}
	sentry.CaptureException(err)
}

// recoverPanic reports a panic in the play loop and re-panics so the
// terminal is still restored by the caller's defers.
func recoverPanic() {
	if !sentryEnabled {
		return
	}
	if r := recover(); r != nil {
		hub := sentry.CurrentHub().Clone()
		hub.Recover(r)
		hub.Flush(5 * time.Second)
		panic(r)
	}
}

func flushSentry() {
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}

// runtimeConfig returns the platform config for a screen of w x h cells.
func runtimeConfig(w, h int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w > 0 && h > 0 {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// gameOptions builds adapter options from the loaded configuration.
func gameOptions() hotcold.Options {
	return hotcold.Options{
		Params:    gameConfig.Params(),
		HoldTicks: gameConfig.Play.HoldTicks,
		Logger:    logger,
	}
}

// loadCatalog loads the built-in levels plus --levels.
func loadCatalog() (*levels.Catalog, error) {
	catalog, err := levels.LoadCatalog(flagLevelsDir, flagStrict, logger)
	if err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return catalog, nil
}

// resolveLevel finds a level by catalog ID, or reads it from a file path.
func resolveLevel(catalog *levels.Catalog, arg string) (levels.Level, error) {
	if l, err := catalog.Get(arg); err == nil {
		return l, nil
	}
	if _, err := os.Stat(arg); err == nil {
		return levels.ReadFile(arg)
	}
	return levels.Level{}, fmt.Errorf("unknown level %q (run 'hotcold levels list')", arg)
}

// openStore opens the records database, warning instead of failing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
		return nil
	}
	return store
}
