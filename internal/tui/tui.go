package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/wcagpairs/internal/palette"
)

// RunStudio starts the interactive studio and returns the studio code
// exported during the session, if any
func RunStudio(session *palette.Session, sample string) (string, error) {
	model := NewStudioModel(session, sample)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	if m, ok := finalModel.(StudioModel); ok {
		return m.ShareCode(), nil
	}
	return "", nil
}
