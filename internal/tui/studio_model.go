package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wcagpairs/internal/contrast"
	"github.com/balkashynov/wcagpairs/internal/export"
	"github.com/balkashynov/wcagpairs/internal/palette"
	"github.com/balkashynov/wcagpairs/internal/parser"
)

// Focus represents which pane receives key presses
type Focus int

const (
	FocusInput Focus = iota
	FocusPalette
	FocusPairs
)

func (f Focus) next() Focus {
	return (f + 1) % 3
}

func (f Focus) prev() Focus {
	return (f + 2) % 3
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// StudioModel is the interactive palette session
type StudioModel struct {
	width  int
	height int

	session *palette.Session
	input   textinput.Model
	focus   Focus

	selectedColor int
	selectedPair  int

	status     string
	statusKind statusKind
	shareCode  string
	sample     string
	quitting   bool
}

// NewStudioModel creates the studio around an existing session.
// sample is the blob inserted by the "sample" key, empty disables it.
func NewStudioModel(session *palette.Session, sample string) StudioModel {
	input := textinput.New()
	input.Placeholder = "#FF6F61, rgb(17, 24, 39), hsl(0, 0%, 100%) or a studio code"
	input.CharLimit = 4000
	input.Width = 48
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	m := StudioModel{
		session: session,
		input:   input,
		focus:   FocusInput,
		sample:  sample,
	}
	if len(session.Palette()) >= 2 {
		m.focus = FocusPairs
		m.input.Blur()
	}
	return m
}

// ShareCode returns the studio code exported during the session, if any
func (m StudioModel) ShareCode() string {
	return m.shareCode
}

// Init initializes the model
func (m StudioModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m StudioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			return m.setFocus(m.focus.next()), nil
		case "shift+tab":
			return m.setFocus(m.focus.prev()), nil
		}

		switch m.focus {
		case FocusInput:
			return m.handleInputKeys(msg)
		case FocusPalette:
			return m.handlePaletteKeys(msg)
		default:
			return m.handlePairKeys(msg)
		}
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m StudioModel) setFocus(f Focus) StudioModel {
	m.focus = f
	if f == FocusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// handleInputKeys handles key input while typing colors
func (m StudioModel) handleInputKeys(msg tea.KeyMsg) (StudioModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit(), nil
	case "esc":
		if m.input.Value() != "" {
			m.input.SetValue("")
			return m, nil
		}
		return m.setFocus(FocusPairs), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit adds whatever is in the input. More than one token is treated as a
// bulk paste where duplicates are skipped; a single token reports duplicates.
func (m StudioModel) submit() StudioModel {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m
	}

	before := len(m.session.Palette())

	if parser.IsStudioCode(value) || len(parser.SplitColorTokens(value)) > 1 {
		failures := m.session.AddColors(value)
		added := len(m.session.Palette()) - before
		m.input.SetValue("")

		if len(failures) > 0 {
			tokens := make([]string, 0, len(failures))
			for _, f := range failures {
				tokens = append(tokens, f.Token)
			}
			m.setStatus(statusError, fmt.Sprintf("Added %d, could not parse: %s", added, strings.Join(tokens, ", ")))
		} else {
			m.setStatus(statusSuccess, fmt.Sprintf("Added %d color(s)", added))
		}
		return m.clampSelection()
	}

	err := m.session.AddColor(value)
	var failure *parser.ParseFailure
	switch {
	case err == nil:
		m.input.SetValue("")
		m.setStatus(statusSuccess, "Added "+m.session.Palette()[before].Hex())
	case errors.Is(err, palette.ErrDuplicateColor):
		m.setStatus(statusError, err.Error())
	case errors.As(err, &failure):
		m.setStatus(statusError, "Could not parse: "+failure.Token)
	default:
		m.setStatus(statusError, err.Error())
	}
	return m.clampSelection()
}

// handlePaletteKeys handles selection, removal and reordering of colors
func (m StudioModel) handlePaletteKeys(msg tea.KeyMsg) (StudioModel, tea.Cmd) {
	size := len(m.session.Palette())

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left", "h", "up", "k":
		if m.selectedColor > 0 {
			m.selectedColor--
		}

	case "right", "l", "down", "j":
		if m.selectedColor < size-1 {
			m.selectedColor++
		}

	case "<", "H":
		if m.selectedColor > 0 {
			if err := m.session.ReorderColor(m.selectedColor, m.selectedColor-1); err == nil {
				m.selectedColor--
			}
		}

	case ">", "L":
		if m.selectedColor < size-1 {
			if err := m.session.ReorderColor(m.selectedColor, m.selectedColor+1); err == nil {
				m.selectedColor++
			}
		}

	case "d", "delete", "backspace":
		if size == 0 {
			return m, nil
		}
		hex := m.session.Palette()[m.selectedColor].Hex()
		if err := m.session.RemoveColor(m.selectedColor); err != nil {
			m.setStatus(statusError, err.Error())
		} else {
			m.setStatus(statusInfo, "Removed "+hex)
		}

	case "n":
		// names the selected color with whatever is typed in the input
		if size == 0 {
			return m, nil
		}
		name := strings.TrimSpace(m.input.Value())
		hex := m.session.Palette()[m.selectedColor].Hex()
		if err := m.session.Rename(m.selectedColor, name); err != nil {
			m.setStatus(statusError, err.Error())
		} else {
			m.input.SetValue("")
			m.setStatus(statusInfo, "Renamed "+hex)
		}

	case "c":
		m.session.Clear()
		m.setStatus(statusInfo, "Palette cleared")

	case "S":
		if m.sample != "" {
			m.session.AddColors(m.sample)
			m.setStatus(statusInfo, "Sample colors added")
		}
	}

	return m.clampSelection(), nil
}

// handlePairKeys handles navigation, favorites, levels and export
func (m StudioModel) handlePairKeys(msg tea.KeyMsg) (StudioModel, tea.Cmd) {
	visible := m.session.VisiblePairs()

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.selectedPair > 0 {
			m.selectedPair--
		}

	case "down", "j":
		if m.selectedPair < len(visible)-1 {
			m.selectedPair++
		}

	case " ", "space", "f":
		if m.selectedPair < len(visible) {
			m.session.ToggleFavorite(visible[m.selectedPair].ID)
		}

	case "a":
		m.session.SelectAll(visible)
		m.setStatus(statusInfo, fmt.Sprintf("%d pair(s) starred", len(visible)))

	case "x":
		m.session.ClearFavorites()
		m.setStatus(statusInfo, "Favorites cleared")

	case "l":
		next := m.session.Level().Next(true)
		if err := m.session.SetLevel(next); err != nil {
			m.setStatus(statusError, err.Error())
		} else {
			m.setStatus(statusInfo, fmt.Sprintf("Level: %s (%.1f:1)", next.Label(), next.Min()))
		}

	case "v":
		next := m.session.Filter().Next(false)
		m.session.SetFilter(next)
		m.setStatus(statusInfo, "Showing: "+next.Label())

	case "s":
		next := m.session.Sort().Toggle()
		m.session.SetSort(next)
		m.setStatus(statusInfo, "Sorted by "+next.String())

	case "e":
		favorites := m.session.FavoritePairs()
		if len(favorites) == 0 {
			m.setStatus(statusError, export.ErrNoFavorites.Error())
			break
		}
		code, err := export.ShareCode(favorites, m.session.Palette(), m.session.Names())
		if err != nil {
			m.setStatus(statusError, err.Error())
			break
		}
		m.shareCode = code
		m.setStatus(statusSuccess, fmt.Sprintf("Studio code ready for %d pair(s), printed on exit", len(favorites)))
	}

	return m.clampSelection(), nil
}

func (m *StudioModel) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

// clampSelection keeps both cursors inside the current palette and pairs
func (m StudioModel) clampSelection() StudioModel {
	size := len(m.session.Palette())
	if m.selectedColor >= size {
		m.selectedColor = size - 1
	}
	if m.selectedColor < 0 {
		m.selectedColor = 0
	}

	visible := len(m.session.VisiblePairs())
	if m.selectedPair >= visible {
		m.selectedPair = visible - 1
	}
	if m.selectedPair < 0 {
		m.selectedPair = 0
	}
	return m
}

// View renders the TUI
func (m StudioModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 40 / 100
	rightWidth := m.width - leftWidth - 5

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPalettePanel(leftWidth),
		" ",
		m.renderPairsPanel(rightWidth),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		content,
		m.renderStatus(),
		m.renderHelpBar(),
	)
}

func (m StudioModel) paneStyle(f Focus, width int) lipgloss.Style {
	border := ColorBorder
	if m.focus == f {
		border = ColorBorderActive
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width)
}

// renderPalettePanel renders the input, the swatches and the guidance
func (m StudioModel) renderPalettePanel(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)

	b.WriteString(headerStyle.Render("Add colors"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	colors := m.session.Palette()
	names := m.session.Names()
	b.WriteString(headerStyle.Render(fmt.Sprintf("Palette (%d)", len(colors))))
	b.WriteString("\n")

	if len(colors) == 0 {
		b.WriteString(mutedStyle.Render("No colors added yet."))
		b.WriteString("\n")
	}
	for i, c := range colors {
		marker := "  "
		if m.focus == FocusPalette && i == m.selectedColor {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render("▸ ")
		}
		line := fmt.Sprintf("%s%2d ", marker, i+1) + RenderChip(c.Hex())
		if name := names[c.Hex()]; name != "" {
			line += " " + mutedStyle.Render(name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	result := m.session.Result()
	if result.OverSoftCap {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).
			Render(fmt.Sprintf("Large palettes produce %d pairs; results may be slow to scan.", len(result.Pairs))))
		b.WriteString("\n")
	}
	if guidance := contrast.Guidance(result.Summary); guidance != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Width(width - 2).Render(guidance))
	}

	return m.paneStyle(FocusPalette, width).Render(b.String())
}

// renderPairsPanel renders the visible pairs around the selection
func (m StudioModel) renderPairsPanel(width int) string {
	var b strings.Builder

	level := m.session.Level()
	summary := m.session.Result().Summary
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))

	b.WriteString(headerStyle.Render(fmt.Sprintf("Pairs · %s %.1f:1 · %s · by %s",
		level.Label(), level.Min(), m.session.Filter().Label(), m.session.Sort())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("%d of %d pass · %d starred", summary.PassingPairs, summary.Pairs, len(m.session.Favorites()))))
	b.WriteString("\n\n")

	visible := m.session.VisiblePairs()
	if len(visible) == 0 {
		empty := "No pairs match this filter."
		if m.session.Result().Insufficient {
			empty = "Add at least 2 colors to see pairs."
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).Render(empty))
		return m.paneStyle(FocusPairs, width).Render(b.String())
	}

	rows := m.height - 12
	if rows < 3 {
		rows = 3
	}
	start := 0
	if m.selectedPair >= rows {
		start = m.selectedPair - rows + 1
	}
	end := start + rows
	if end > len(visible) {
		end = len(visible)
	}

	for i := start; i < end; i++ {
		pair := visible[i]
		star := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("☆")
		if m.session.IsFavorite(pair.ID) {
			star = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFavorite)).Render("★")
		}
		marker := "  "
		if m.focus == FocusPairs && i == m.selectedPair {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render("▸ ")
		}

		row := fmt.Sprintf("%s%s %s %s on %s  %9s  %s",
			marker,
			star,
			RenderSample(pair.Foreground.Hex(), pair.Background.Hex()),
			pair.Foreground.Hex(),
			pair.Background.Hex(),
			contrast.FormatRatio(pair.Ratio),
			RenderBadge(pair.Pass))
		b.WriteString(row)
		b.WriteString("\n")
	}

	if end-start < len(visible) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
			Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(visible))))
	}

	return m.paneStyle(FocusPairs, width).Render(b.String())
}

func (m StudioModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	color := ColorSecondaryText
	switch m.statusKind {
	case statusSuccess:
		color = ColorPass
	case statusError:
		color = ColorFail
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Padding(0, 1).Render(m.status)
}

// renderHelpBar renders the hotkey hints for the focused pane
func (m StudioModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var helpText string
	switch m.focus {
	case FocusInput:
		helpText = "enter add · esc clear/leave · tab next pane · ctrl+c quit"
	case FocusPalette:
		helpText = "←/→ select · </> move · d remove · n name from input · c clear · S sample · q quit"
	default:
		helpText = "↑/↓ nav · space star · a star all · x clear stars · l level · v filter · s sort · e export · q quit"
	}
	return helpStyle.Render(helpText)
}
