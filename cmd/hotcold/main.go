// hotcold is a cooperative two-player tile platformer for the terminal.
//
// Usage:
//
//	hotcold play [level]              - Play (level select if no level given)
//	hotcold levels list               - List available levels
//	hotcold levels analyze <id|file>  - Inspect a level
//	hotcold simulate <script>         - Run a replay script headlessly
//	hotcold records [level]           - Show run records
//	hotcold serve                     - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.hotcold/records.db)
//	--config <path>       - Use a custom hotcold.yaml
//	--levels <dir>        - Load extra levels from a directory
//	--log-level <level>   - debug, info, warn or error
//	--sentry-dsn <dsn>    - Report errors to Sentry
//	--strict              - Skip levels that fail validation
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
	flagSentryDSN string
	flagStrict    bool
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	flushSentry()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hotcold",
	Short: "Hot & Cold - a two-player co-op platformer in your terminal",
	Long: `Hot & Cold is a cooperative platformer for two players sharing one
keyboard. The hot actor survives lava, the cold actor survives water, and
neither survives goo. Both must reach their own door to finish a level.

Available commands:
  play      - Play a level
  levels    - List and analyze levels
  simulate  - Run a replay script without a terminal
  records   - View run records
  serve     - Start SSH server for remote play

Examples:
  hotcold play
  hotcold play level3
  hotcold levels analyze level2
  hotcold simulate ./solutions/level1.yaml
  hotcold serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hotcold/records.db", "Path to run records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom hotcold.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra levels (overrides built-in IDs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSentryDSN, "sentry-dsn", "", "Sentry DSN for error reporting (or HOTCOLD_SENTRY_DSN)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Skip levels that fail validation")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}
