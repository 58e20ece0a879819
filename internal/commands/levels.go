package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wcagpairs/internal/models"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the contrast levels and their minimum ratios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printLevels(cmd.OutOrStdout(), settings.Level)
	},
}

func printLevels(w io.Writer, current models.Profile) {
	fmt.Fprintf(w, "%-10s %-16s %s\n", "LEVEL", "NAME", "MINIMUM")
	for _, p := range models.Profiles {
		minimum := "-"
		if p.Gradable() {
			minimum = fmt.Sprintf("%.1f:1", p.Min())
		}
		marker := ""
		if p == current {
			marker = "  (default)"
		}
		fmt.Fprintf(w, "%-10s %-16s %s%s\n", p.String(), p.Label(), minimum, marker)
	}
}
