package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and inspect levels",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and those found in --levels, in play order.`,
	Args:  cobra.NoArgs,
	RunE:  runLevelsList,
}

var levelsAnalyzeCmd = &cobra.Command{
	Use:   "analyze <id|file>",
	Short: "Analyze a level",
	Long: `Print tile statistics, spawn safety, a preview of the bottom rows and
validation problems for a level.

Preview legend:
  .  empty    #  solid
  L  lava     W  water    G  goo

Examples:
  hotcold levels analyze level3
  hotcold levels analyze ./my-levels/cave.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLevelsAnalyze,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsAnalyzeCmd)
}

func runLevelsList(_ *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	list := catalog.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range list {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")
	for _, l := range list {
		fmt.Printf("  %-*s  %-20s  %dx%d\n", maxIDLen, l.ID, l.Name, l.Cols(), l.Rows())
	}

	fmt.Println()
	fmt.Println("Run 'hotcold play <id>' to play a level.")
	return nil
}

func runLevelsAnalyze(_ *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	l, err := resolveLevel(catalog, args[0])
	if err != nil {
		return err
	}

	params := gameConfig.Params()
	printReport(os.Stdout, levels.Analyze(l, params))

	problems := levels.Problems(l, params)
	if len(problems) == 0 {
		fmt.Println("Validation: ok")
		return nil
	}
	fmt.Println("Validation:")
	for _, p := range problems {
		fmt.Printf("  %s\n", p.Error())
	}
	return fmt.Errorf("level %s has %d problem(s)", l.ID, len(problems))
}

func printReport(w io.Writer, r levels.Report) {
	fmt.Fprintf(w, "Level %s - %s\n", r.ID, r.Name)
	fmt.Fprintf(w, "Grid: %d rows x %d columns\n\n", r.Rows, r.Cols)

	fmt.Fprintln(w, "Tiles:")
	for _, c := range r.Counts {
		fmt.Fprintf(w, "  %-3s %-8s %5d\n", c.Token, c.Description, c.Count)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Spawns:")
	for _, s := range r.Spawns {
		if !s.Present {
			fmt.Fprintf(w, "  %-5s missing\n", s.Element)
			continue
		}
		status := "safe"
		if !s.Safe {
			status = "UNSAFE"
		}
		ground := "airborne"
		if s.Grounded {
			ground = "grounded"
		}
		fmt.Fprintf(w, "  %-5s at (%.0f, %.0f): body %c, ground %c, %s, %s\n",
			s.Element, s.Pos.X(), s.Pos.Y(), levels.Glyph(s.Body), levels.Glyph(s.Ground), status, ground)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Bottom rows:")
	for _, row := range r.Preview {
		fmt.Fprintf(w, "  %s\n", row)
	}
	fmt.Fprintln(w)

	if r.OK() {
		fmt.Fprintln(w, "Issues: none")
		return
	}
	fmt.Fprintln(w, "Issues:")
	for _, issue := range r.Issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}
}
