package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/balkashynov/wcagpairs/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile  string
	settings config.Settings
)

// ErrNotEnoughColors is returned when a command needs at least two colors
var ErrNotEnoughColors = errors.New("at least 2 colors are needed to compare")

var rootCmd = &cobra.Command{
	Use:   "wcagpairs",
	Short: "Find accessible foreground/background pairs in a palette",
	Long: `wcagpairs checks every foreground/background combination of a color palette
against the WCAG contrast levels. Pairs starred in the interactive studio can
be shared as a studio code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		settings = s
		return nil
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads the config file and environment before any command runs
func initConfig() {
	if err := config.Init(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wcagpairs.yaml)")
	flags.BoolP("verbose", "v", false, "Print diagnostics to stderr")
	flags.StringP("level", "l", "aa-small", "Pass/fail level: aa-large, aa-small, aaa-small, aaa-large")
	flags.StringP("filter", "f", "all", "Show only pairs meeting: all, aa-large, aa-small, aaa-small, aaa-large")
	flags.String("sort", "ratio", "Pair order: ratio or palette")

	for _, name := range []string{"verbose", "level", "filter", "sort"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(studioCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
