package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hotcold/internal/config"
	"github.com/vovakirdan/hotcold/internal/platform/tui"
)

var flagPlayLog string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start the game. Without a level the level select opens first.

Controls:
  Left/Right/Up  - Hot actor (player 1): move, jump
  A/D/W          - Cold actor (player 2): move, jump
  P              - Pause
  R              - Restart the level
  Enter          - Next level (after a win)
  Esc/B          - Back to the level select
  Q/Ctrl+C       - Quit
  Ctrl+S         - Save a screenshot to ~/.hotcold/screenshots

Winning inputs are saved as replay scripts in ~/.hotcold/replays and can
be played back with 'hotcold simulate'.

Examples:
  hotcold play
  hotcold play level2
  hotcold play --levels ./my-levels my-level
  hotcold play --config ./hotcold.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLog, "log-file", "", "Write the game log to this file (the screen is busy)")
}

func runPlay(_ *cobra.Command, args []string) error {
	defer recoverPanic()

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	start := ""
	if len(args) == 1 {
		if _, err := catalog.Get(args[0]); err != nil {
			return err
		}
		start = args[0]
	}

	// The alternate screen owns the terminal while playing.
	var sink io.Writer = io.Discard
	if flagPlayLog != "" {
		f, err := os.OpenFile(flagPlayLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}
	gameLogger := newLogger(sink)
	gameLogger.SetLevel(logger.GetLevel())

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := gameOptions()
	opts.Logger = gameLogger

	return tui.Run(tui.Options{
		Catalog:    catalog,
		Store:      store,
		Game:       opts,
		Config:     runtimeConfig(width, height),
		StartLevel: start,
		UserDir:    config.UserDir(),
		Logger:     gameLogger,
	})
}
