package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/wcagpairs/internal/contrast"
	"github.com/balkashynov/wcagpairs/internal/export"
	"github.com/balkashynov/wcagpairs/internal/palette"
	"github.com/balkashynov/wcagpairs/internal/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check [colors...]",
	Short: "Check every pair of a palette against a contrast level",
	Long: `Check every foreground/background pair of a palette.

Colors can be hex (#FF6F61 or FF6F61), rgb(255, 111, 97) or hsl(5, 100%, 69%),
separated by commas, spaces or newlines. A studio code is accepted too.

Examples:
  wcagpairs check "#FF6F61, #111827, #FFFFFF"
  wcagpairs check --level aaa-small --filter aaa-small --sample
  cat palette.txt | wcagpairs check -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		session, failures, err := newSession(settings.SessionOptions(), blob)
		if err != nil {
			return err
		}
		reportFailures(cmd.ErrOrStderr(), failures)

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return writeJSONReport(cmd.OutOrStdout(), session)
		}
		return printCheck(cmd.OutOrStdout(), session)
	},
}

// writeJSONReport writes the session snapshot as JSON
func writeJSONReport(w io.Writer, session *palette.Session) error {
	report, err := export.NewReport(session)
	if err != nil {
		return err
	}
	return export.JSONExporter{}.Export(w, report)
}

// printCheck renders the pair table followed by the guidance line
func printCheck(w io.Writer, session *palette.Session) error {
	result := session.Result()
	if result.Insufficient {
		fmt.Fprintln(w, contrast.Guidance(result.Summary))
		return ErrNotEnoughColors
	}

	level := session.Level()
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintf(w, "%s %s (%.1f:1) · showing %s · sorted by %s\n\n",
		headerStyle.Render("Level:"), level.Label(), level.Min(), session.Filter().Label(), session.Sort())

	visible := session.VisiblePairs()
	if len(visible) == 0 {
		fmt.Fprintln(w, "No pairs match this filter.")
	} else {
		fmt.Fprintf(w, "%-4s  %-7s    %-7s  %9s  %s\n", "", "FG", "BG", "RATIO", "RESULT")
		fmt.Fprintln(w, strings.Repeat("-", 44))
		for _, pair := range visible {
			fmt.Fprintf(w, "%s  %s on %s  %9s  %s\n",
				tui.RenderSample(pair.Foreground.Hex(), pair.Background.Hex()),
				pair.Foreground.Hex(),
				pair.Background.Hex(),
				contrast.FormatRatio(pair.Ratio),
				tui.RenderBadge(pair.Pass))
		}
	}

	summary := result.Summary
	fmt.Fprintf(w, "\n%d of %d pairs pass · %d colors in accessible pairs\n",
		summary.PassingPairs, summary.Pairs, summary.AccessibleColors)

	if guidance := contrast.Guidance(summary); guidance != "" {
		fmt.Fprintf(w, "💡 %s\n", guidance)
	}
	if result.OverSoftCap {
		fmt.Fprintf(w, "⚠️  %d colors produce %d pairs; consider a smaller palette.\n",
			summary.Colors, summary.Pairs)
	}
	return nil
}

func init() {
	addInputFlags(checkCmd)
	checkCmd.Flags().Bool("json", false, "Print a JSON report")
}
