package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/wcagpairs/internal/models"
	"github.com/balkashynov/wcagpairs/internal/palette"
	"github.com/balkashynov/wcagpairs/internal/parser"
)

func newTestModel(t *testing.T, blob string) StudioModel {
	t.Helper()
	s, err := palette.NewSession(palette.DefaultOptions())
	if err != nil {
		t.Fatalf("NewSession returned error: %v", err)
	}
	if blob != "" {
		s.AddColors(blob)
	}
	return NewStudioModel(s, "#000000, #ffffff")
}

func send(t *testing.T, m StudioModel, msgs ...tea.Msg) StudioModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(StudioModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m StudioModel, text string) StudioModel {
	m.input.SetValue(text)
	return m
}

func TestStudioStartsInInputWhenEmpty(t *testing.T) {
	m := newTestModel(t, "")
	if m.focus != FocusInput {
		t.Errorf("focus = %d, want input", m.focus)
	}

	m = newTestModel(t, "#000000, #ffffff")
	if m.focus != FocusPairs {
		t.Errorf("focus = %d, want pairs", m.focus)
	}
}

func TestStudioBulkAdd(t *testing.T) {
	m := newTestModel(t, "")
	m = typeText(m, "#zzz, #111827, rgb(255, 255, 255)")
	m = send(t, m, key("enter"))

	if got := len(m.session.Palette()); got != 2 {
		t.Fatalf("palette size = %d, want 2", got)
	}
	if m.statusKind != statusError || !strings.Contains(m.status, "#zzz") {
		t.Errorf("status = %q, want failure listing #zzz", m.status)
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after a bulk add")
	}
}

func TestStudioSingleAddDuplicate(t *testing.T) {
	m := newTestModel(t, "")
	m = send(t, typeText(m, "#111827"), key("enter"))
	m = send(t, typeText(m, "#111827"), key("enter"))

	if got := len(m.session.Palette()); got != 1 {
		t.Fatalf("palette size = %d, want 1", got)
	}
	if m.statusKind != statusError || !strings.Contains(m.status, "already") {
		t.Errorf("status = %q, want duplicate rejection", m.status)
	}
	if m.input.Value() != "#111827" {
		t.Error("rejected input should stay editable")
	}
}

func TestStudioFavoritesAndExport(t *testing.T) {
	m := newTestModel(t, "#ff6f61, #111827, #ffffff")

	m = send(t, m, key("e"))
	if m.ShareCode() != "" || m.statusKind != statusError {
		t.Fatal("export without favorites should fail")
	}

	m = send(t, m, key("space"), key("down"), key("f"))
	if got := len(m.session.Favorites()); got != 2 {
		t.Fatalf("favorites = %d, want 2", got)
	}

	m = send(t, m, key("e"))
	code := m.ShareCode()
	if !strings.HasPrefix(code, parser.StudioCodePrefix) {
		t.Fatalf("share code = %q", code)
	}
	if got := len(parser.ParseBulk(code).Colors); got != 2 {
		t.Errorf("exported %d colors, want 2", got)
	}

	m = send(t, m, key("x"))
	if len(m.session.Favorites()) != 0 {
		t.Error("x should clear favorites")
	}
	m = send(t, m, key("a"))
	if len(m.session.Favorites()) != 6 {
		t.Error("a should star every visible pair")
	}
}

func TestStudioLevelFilterSort(t *testing.T) {
	m := newTestModel(t, "#ff6f61, #111827, #ffffff")

	m = send(t, m, key("l"))
	if m.session.Level() != models.ProfileAAASmall {
		t.Errorf("level = %s, want aaa-small", m.session.Level())
	}
	m = send(t, m, key("l"), key("l"))
	if m.session.Level() != models.ProfileAALarge {
		t.Errorf("level should skip all and wrap to aa-large, got %s", m.session.Level())
	}

	m = send(t, m, key("v"))
	if m.session.Filter() != models.ProfileAALarge {
		t.Errorf("filter = %s, want aa-large", m.session.Filter())
	}

	m = send(t, m, key("s"))
	if m.session.Sort() != models.SortPalette {
		t.Errorf("sort = %s, want palette", m.session.Sort())
	}
}

func TestStudioPaletteKeys(t *testing.T) {
	m := newTestModel(t, "#000001, #000002, #000003")
	m = send(t, m, key("tab"))
	if m.focus != FocusInput {
		t.Fatalf("tab from pairs should wrap to input, got %d", m.focus)
	}
	m = send(t, m, key("tab"))
	if m.focus != FocusPalette {
		t.Fatalf("focus = %d, want palette", m.focus)
	}

	m = send(t, m, key(">"))
	if got := m.session.Palette().Hexes()[1]; got != "#000001" {
		t.Errorf("after move right position 1 = %s", got)
	}
	if m.selectedColor != 1 {
		t.Errorf("selection should follow the moved color, got %d", m.selectedColor)
	}

	m = send(t, m, key("d"))
	if got := m.session.Palette().Hexes(); len(got) != 2 || got[1] != "#000003" {
		t.Errorf("after remove palette = %q", got)
	}

	m = typeText(m, "Ink")
	m = send(t, m, key("n"))
	if got := m.session.Names()["#000003"]; got != "Ink" {
		t.Errorf("name = %q, want Ink", got)
	}

	m = send(t, m, key("c"))
	if len(m.session.Palette()) != 0 {
		t.Error("c should clear the palette")
	}

	m = send(t, m, key("S"))
	if len(m.session.Palette()) != 2 {
		t.Error("S should add the sample colors")
	}
}

func TestStudioView(t *testing.T) {
	m := newTestModel(t, "#cccccc, #dddddd")
	if m.View() != "Loading..." {
		t.Error("view before the first window size should be a placeholder")
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	view := m.View()
	for _, want := range []string{"#cccccc", "1.18:1", "FAIL", "No pair reaches 4.5:1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStudioQuit(t *testing.T) {
	m := newTestModel(t, "#000000, #ffffff")
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
