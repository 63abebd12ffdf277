package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotcold/internal/games/hotcold"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/replay"
	"github.com/vovakirdan/hotcold/internal/storage"
)

var (
	flagExpect     string
	flagNoRecord   bool
	flagShowEvents bool
	flagSimLevel   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script>",
	Short: "Run a replay script without a terminal",
	Long: `Play a replay script against its level and print the result.

A script is YAML:

  level: level1
  max_ticks: 600
  events:
    - {tick: 1, actor: hot, move: right}
    - {tick: 40, actor: hot, jump: true}
    - {tick: 60, actor: cold, move: left}

Each event applies right before the tick with the same number. The run
stops when the level is won or lost, or at max_ticks.

Examples:
  hotcold simulate ~/.hotcold/replays/level1_20250101_120000_112.yaml
  hotcold simulate run.yaml --expect 9c1f0a33d2e4b8a7
  hotcold simulate run.yaml --level ./my-levels/cave.yaml --events`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagExpect, "expect", "", "Fail unless the final fingerprint matches (hex)")
	simulateCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save the outcome to the records database")
	simulateCmd.Flags().BoolVar(&flagShowEvents, "events", false, "Print every engine event")
	simulateCmd.Flags().StringVar(&flagSimLevel, "level", "", "Level ID or file to use instead of the script's level")
}

func runSimulate(_ *cobra.Command, args []string) error {
	script, err := replay.ReadFile(args[0])
	if err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	levelArg := script.Level
	if flagSimLevel != "" {
		levelArg = flagSimLevel
	}
	l, err := resolveLevel(catalog, levelArg)
	if err != nil {
		return err
	}

	logger.Debug("simulating", "script", args[0], "level", l.ID, "events", len(script.Events), "max_ticks", script.Limit())

	res, err := replay.RunLevel(l, gameConfig.Params(), script)
	if err != nil {
		return err
	}
	res.Level = l.ID

	for _, ev := range res.Events {
		hotcold.LogEvent(logger, l.ID, ev.Event)
		if flagShowEvents {
			fmt.Printf("  tick %5d  %s\n", ev.Tick, hotcold.Describe(ev.Event))
		}
	}
	printResult(res)

	if !flagNoRecord {
		if store := openStore(); store != nil {
			defer store.Close()
			if _, err := store.SaveRun(l.ID, outcomeName(res.Outcome), res.Ticks, res.Fingerprint); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
	}

	if flagExpect != "" {
		want, err := strconv.ParseUint(strings.TrimPrefix(flagExpect, "0x"), 16, 64)
		if err != nil {
			return fmt.Errorf("invalid --expect %q: %w", flagExpect, err)
		}
		if want != res.Fingerprint {
			return fmt.Errorf("fingerprint mismatch: got %016x, expected %016x", res.Fingerprint, want)
		}
		fmt.Println("Fingerprint matches.")
	}
	return nil
}

func printResult(res replay.Result) {
	fmt.Printf("Level:       %s\n", res.Level)
	fmt.Printf("Outcome:     %s\n", res.Outcome)
	fmt.Printf("Ticks:       %d\n", res.Ticks)
	for _, e := range core.Elements {
		a, ok := res.Actor(e)
		if !ok {
			continue
		}
		state := "alive"
		if !a.Alive {
			state = "dead"
		}
		fmt.Printf("%-12s (%.1f, %.1f) %s\n", e.String()+":", a.Rect.X, a.Rect.Y, state)
	}
	fmt.Printf("Fingerprint: %016x\n", res.Fingerprint)
}

// outcomeName maps an engine outcome to a stored run outcome. A script
// that runs out of ticks counts as abandoned.
func outcomeName(o core.Outcome) string {
	switch o {
	case core.Won:
		return storage.OutcomeWon
	case core.Lost:
		return storage.OutcomeLost
	default:
		return storage.OutcomeAbandoned
	}
}
