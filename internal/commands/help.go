package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for wcagpairs",
	Long:  `Display detailed help for all wcagpairs commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
wcagpairs - WCAG contrast pairs for your palette

COMMANDS:

  check [colors...]       Check every foreground/background pair
    --file                Read colors from a file, - for stdin
    --sample              Add the sample palette
    --json                JSON report

    Example:
      wcagpairs check "#FF6F61, rgb(17, 24, 39), hsl(0, 0%, 100%)"

  share [colors...]       Export pairs as a studio code
    --pair                Pair as foreground-background (repeatable)
    --passing             Every pair passing the level
    --decode              Print the colors of a studio code

  studio [colors...]      Interactive studio (alias: ui)

    Quick actions:
      tab           Switch pane
      enter         Add colors
      ←/→  </>      Select / move a color
      d  c          Remove color / clear palette
      space  a  x   Star pair / star all / clear stars
      l  v  s       Level / filter / sort
      e             Export starred pairs
      esc/q         Quit

  levels                  List contrast levels
  version                 Print the version
  help                    Show this help

GLOBAL FLAGS:

  -l, --level             aa-large | aa-small | aaa-small | aaa-large
  -f, --filter            all | aa-large | aa-small | aaa-small | aaa-large
      --sort              ratio | palette
      --config            Config file (default $HOME/.wcagpairs.yaml)
  -v, --verbose           Diagnostics on stderr

Settings can also come from WCAGPAIRS_* environment variables or a .env file.

`)
}
