package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wcagpairs/internal/contrast"
	"github.com/balkashynov/wcagpairs/internal/export"
	"github.com/balkashynov/wcagpairs/internal/models"
	"github.com/balkashynov/wcagpairs/internal/palette"
	"github.com/balkashynov/wcagpairs/internal/parser"
)

var errNotStudioCode = errors.New("not a studio code")

var shareCmd = &cobra.Command{
	Use:   "share [colors...]",
	Short: "Export chosen pairs as a studio code",
	Long: `Export pairs of a palette as a studio code that can be pasted back into
wcagpairs or any tool that reads studio codes.

Examples:
  wcagpairs share "#FF6F61, #111827, #FFFFFF" --pair "#ffffff-#111827"
  wcagpairs share --sample --passing --level aaa-small
  wcagpairs share --decode "studiocode?..."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if code, _ := cmd.Flags().GetString("decode"); code != "" {
			return printDecoded(cmd.OutOrStdout(), code)
		}

		blob, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		session, failures, err := newSession(settings.SessionOptions(), blob)
		if err != nil {
			return err
		}
		reportFailures(cmd.ErrOrStderr(), failures)

		if session.Result().Insufficient {
			return ErrNotEnoughColors
		}

		pairIDs, _ := cmd.Flags().GetStringArray("pair")
		passing, _ := cmd.Flags().GetBool("passing")

		code, err := shareCode(session, pairIDs, passing)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

// shareCode stars the requested pairs and returns the studio code for them
func shareCode(session *palette.Session, pairIDs []string, passing bool) (string, error) {
	known := make(map[string]struct{}, len(session.Result().Pairs))
	for _, pair := range session.Result().Pairs {
		known[pair.ID] = struct{}{}
	}

	for _, raw := range pairIDs {
		id, err := normalizePairID(raw)
		if err != nil {
			return "", err
		}
		if _, ok := known[id]; !ok {
			return "", fmt.Errorf("pair %s is not part of this palette", id)
		}
		if !session.IsFavorite(id) {
			session.ToggleFavorite(id)
		}
	}

	if passing {
		session.SelectAll(contrast.FilterByProfile(session.Result().Pairs, session.Level()))
	}

	favorites := session.FavoritePairs()
	if len(favorites) == 0 {
		return "", export.ErrNoFavorites
	}
	return export.ShareCode(favorites, session.Palette(), session.Names())
}

// normalizePairID accepts "fg-bg" in any color notation and returns the
// canonical pair id
func normalizePairID(raw string) (string, error) {
	fgText, bgText, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok {
		return "", fmt.Errorf("invalid pair %q. Use foreground-background, e.g. #ffffff-#111827", raw)
	}
	fg, err := parser.ParseColor(fgText)
	if err != nil {
		return "", err
	}
	bg, err := parser.ParseColor(bgText)
	if err != nil {
		return "", err
	}
	return models.PairID(fg, bg), nil
}

// printDecoded lists the colors carried by a studio code
func printDecoded(w io.Writer, code string) error {
	colors, ok := parser.DecodeStudioCode(code)
	if !ok {
		return errNotStudioCode
	}
	for _, c := range colors {
		color, err := parser.ParseColor(c.Hex)
		if err != nil {
			fmt.Fprintf(w, "%-8s %s (unreadable)\n", c.Hex, c.Name)
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", color.Hex(), c.Name)
	}
	return nil
}

func init() {
	addInputFlags(shareCmd)
	shareCmd.Flags().StringArray("pair", nil, "Pair to export as foreground-background (repeatable)")
	shareCmd.Flags().Bool("passing", false, "Export every pair passing the level")
	shareCmd.Flags().String("decode", "", "Print the colors of a studio code")
}
