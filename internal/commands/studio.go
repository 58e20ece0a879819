package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wcagpairs/internal/tui"
)

var studioCmd = &cobra.Command{
	Use:     "studio [colors...]",
	Aliases: []string{"ui"},
	Short:   "Explore a palette interactively",
	Long: `Open the interactive studio. Add colors, reorder them, switch levels and
star pairs. Press e to export the starred pairs; the studio code is printed
when you quit.`,
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

		code, err := tui.RunStudio(session, settings.Sample)
		if err != nil {
			return err
		}
		if code != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Studio code:")
			fmt.Fprintln(cmd.OutOrStdout(), code)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wcagpairs %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	addInputFlags(studioCmd)
}
