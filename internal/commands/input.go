package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wcagpairs/internal/palette"
	"github.com/balkashynov/wcagpairs/internal/parser"
)

// addInputFlags registers the flags shared by every command that takes colors
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "Read colors from a file, - for stdin")
	cmd.Flags().Bool("sample", false, "Add the sample palette")
}

// readInput gathers the color blob from args, --file and --sample
func readInput(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	useSample, _ := cmd.Flags().GetBool("sample")

	sample := ""
	if useSample {
		sample = settings.Sample
	}
	return collectInput(args, file, cmd.InOrStdin(), sample)
}

// collectInput joins every input source into one blob, one source per line.
// A lone "-" argument or file name reads stdin.
func collectInput(args []string, file string, stdin io.Reader, sample string) (string, error) {
	var parts []string

	if len(args) == 1 && args[0] == "-" {
		file = "-"
		args = nil
	}
	if len(args) > 0 {
		parts = append(parts, strings.Join(args, "\n"))
	}

	switch file {
	case "":
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		parts = append(parts, string(data))
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read colors: %w", err)
		}
		parts = append(parts, string(data))
	}

	if sample != "" {
		parts = append(parts, sample)
	}

	return strings.Join(parts, "\n"), nil
}

// newSession builds a session with opts and adds blob
func newSession(opts palette.Options, blob string) (*palette.Session, []*parser.ParseFailure, error) {
	session, err := palette.NewSession(opts)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(blob) == "" {
		return session, nil, nil
	}
	failures := session.AddColors(blob)
	return session, failures, nil
}

// reportFailures lists tokens that could not be parsed
func reportFailures(w io.Writer, failures []*parser.ParseFailure) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(w, "⚠️  Skipped %d value(s) that are not colors:\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(w, "   %s\n", f.Error())
	}
}
