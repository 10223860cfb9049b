package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/toolstrip/internal/a11y"
	"github.com/jask/toolstrip/internal/toolbar"
)

type fakeScreen struct {
	hits    int
	scope   string
	capture bool
}

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return s.scope }
func (s *fakeScreen) View(int, int) string { return "SCREEN" }
func (s *fakeScreen) CapturesText() bool   { return s.capture }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return nil, nil, false
}

func newTestModel(t *testing.T, specs ...toolbar.Spec) Model {
	t.Helper()
	m := NewModel(Options{TransitionFrames: 2})
	if err := m.SetToolbar(specs); err != nil {
		t.Fatalf("SetToolbar() error = %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestScreenGetsKeyBeforeBar(t *testing.T) {
	m := newTestModel(t, toolbar.Spec{ID: "a", Label: "A"})
	screen := &fakeScreen{scope: "screen:test"}
	m.PushScreen(screen)

	m, _ = press(t, m, runes("o"))
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if b, _ := m.Bar().Button("a"); b.IsInDropDown() {
		t.Fatalf("bar should not receive key when screen open")
	}
	if m.Screens() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	m := newTestModel(t)
	m.PushScreen(&fakeScreen{scope: "screen:test"})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screens() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

func TestShortcutWinsOverScreen(t *testing.T) {
	m := newTestModel(t, toolbar.Spec{ID: "save", Label: "Save", Shortcut: "Ctrl+S"})
	screen := &fakeScreen{scope: "screen:test"}
	m.PushScreen(screen)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if screen.hits != 0 {
		t.Fatalf("shortcut should not reach the screen")
	}
	if status, _ := m.Status(); status != "Activated Save" {
		t.Fatalf("status = %q", status)
	}
}

func TestCapturingScreenBlocksShortcuts(t *testing.T) {
	m := newTestModel(t, toolbar.Spec{ID: "x", Label: "X", Shortcut: "x"})
	screen := &fakeScreen{scope: ScopeCommand, capture: true}
	m.PushScreen(screen)

	m, _ = press(t, m, runes("x"))
	if screen.hits != 1 {
		t.Fatalf("typed key should reach the capturing screen")
	}
	if n := m.Journal().Count(a11y.EventInvoked, ""); n != 0 {
		t.Fatalf("expected no invocations, got %d", n)
	}
}
