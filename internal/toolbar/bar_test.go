package toolbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/toolstrip/internal/a11y"
	"github.com/jask/toolstrip/internal/gesture"
)

func ids(buttons []*Button) []string {
	out := make([]string, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, b.ID())
	}
	return out
}

func newTestBar(t *testing.T) (*Bar, *a11y.Journal, map[string]*recordingRenderer) {
	t.Helper()
	journal := a11y.NewJournal(0)
	views := map[string]*recordingRenderer{}
	bar := NewBar(BarDeps{
		Events: journal,
		NewView: func(b *Button) Renderer {
			v := &recordingRenderer{}
			views[b.ID()] = v
			return v
		},
	})
	t.Cleanup(bar.Close)
	return bar, journal, views
}

func TestBarAddWiresButton(t *testing.T) {
	bar, journal, views := newTestBar(t)
	btn, err := bar.Add(Spec{ID: "save", Label: "Save", Icon: "S", Shortcut: "Ctrl+S"})
	require.NoError(t, err)

	require.Equal(t, "Save", btn.Label())
	require.Equal(t, Icon("S"), btn.Icon())
	require.Equal(t, "(Ctrl+S)", views["save"].tip)
	require.Equal(t, []string{"state:PlacedInBar:false", "tip:", "tip:(Ctrl+S)"}, views["save"].calls)
	require.True(t, bar.Focus().IsTabStop("save"))

	require.True(t, bar.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS}))
	require.Equal(t, []string{"save"}, bar.TakeActivations())
	require.Empty(t, bar.TakeActivations())
	require.Equal(t, "save", bar.Focus().Focused())
	require.Equal(t, 1, journal.Count(a11y.EventInvoked, "save"))
}

func TestBarAddStartsInDropDownWithoutTransition(t *testing.T) {
	bar, _, views := newTestBar(t)
	_, err := bar.Add(Spec{ID: "more", Shortcut: "F3", InDropDown: true})
	require.NoError(t, err)
	require.Equal(t, "state:PlacedInDropDown:false", views["more"].calls[0])
	require.Empty(t, views["more"].tip)
}

func TestBarAddRejectsDuplicateID(t *testing.T) {
	bar, _, _ := newTestBar(t)
	_, err := bar.Add(Spec{ID: "a"})
	require.NoError(t, err)
	_, err = bar.Add(Spec{ID: "a"})
	require.ErrorContains(t, err, `"a" already exists`)
	require.Len(t, bar.Buttons(), 1)
}

func TestBarAddKeepsButtonWithMalformedShortcut(t *testing.T) {
	bar, _, _ := newTestBar(t)
	btn, err := bar.Add(Spec{ID: "x", Label: "X", Shortcut: "Ctrl+Shift+X"})
	require.ErrorIs(t, err, gesture.ErrMalformedShortcut)
	require.ErrorContains(t, err, `button "x"`)
	require.NotNil(t, btn)
	require.Empty(t, btn.Shortcut())
	require.Equal(t, []string{"x"}, ids(bar.Buttons()))
}

func TestBarTabStopFalseSkipsFocus(t *testing.T) {
	bar, _, _ := newTestBar(t)
	off := false
	_, err := bar.Add(Spec{ID: "quiet", Shortcut: "F9", TabStop: &off})
	require.NoError(t, err)

	require.True(t, bar.HandleKey(tea.KeyMsg{Type: tea.KeyF9}))
	require.Empty(t, bar.Focus().Focused())
	require.Equal(t, []string{"quiet"}, bar.TakeActivations())
}

func TestBarApplyReconciles(t *testing.T) {
	bar, _, views := newTestBar(t)
	require.NoError(t, bar.Apply([]Spec{
		{ID: "a", Label: "A", Shortcut: "Ctrl+A"},
		{ID: "b", Label: "B", Shortcut: "Ctrl+B"},
		{ID: "c", Label: "C"},
	}))
	a, _ := bar.Button("a")

	require.NoError(t, bar.Apply([]Spec{
		{ID: "c", Label: "C2", Shortcut: "F2"},
		{ID: "a", Label: "A", Shortcut: "Ctrl+A", InDropDown: true},
		{ID: "d", Label: "D"},
	}))

	require.Equal(t, []string{"c", "a", "d"}, ids(bar.Buttons()))
	same, _ := bar.Button("a")
	require.Same(t, a, same)
	require.True(t, a.IsInDropDown())
	require.Contains(t, views["a"].calls, "state:PlacedInDropDown:true")
	require.Equal(t, []string{"a"}, ids(bar.Placed(true)))
	require.Equal(t, []string{"c", "d"}, ids(bar.Placed(false)))

	_, ok := bar.Button("b")
	require.False(t, ok)
	require.False(t, bar.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlB}))

	c, _ := bar.Button("c")
	require.Equal(t, "C2", c.Label())
	require.Equal(t, "(F2)", c.ToolTip())
	require.Equal(t, 2, bar.Scope().Live())

	bar.Focus().Next("keyboard")
	require.Equal(t, "c", bar.Focus().Focused())
}

func TestBarApplyUnchangedShortcutKeepsListener(t *testing.T) {
	bar, _, _ := newTestBar(t)
	specs := []Spec{{ID: "a", Shortcut: "Ctrl+A"}}
	require.NoError(t, bar.Apply(specs))
	a, _ := bar.Button("a")
	g := a.Gesture()

	require.NoError(t, bar.Apply(specs))
	require.Same(t, g, a.Gesture())
	require.Equal(t, 1, bar.Scope().Live())
}

func TestBarApplyJoinsErrors(t *testing.T) {
	bar, _, _ := newTestBar(t)
	err := bar.Apply([]Spec{
		{ID: "ok", Shortcut: "F1"},
		{ID: "bad", Shortcut: "Hyper+Q"},
		{ID: "ok", Shortcut: "F2"},
		{Label: "anonymous"},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, gesture.ErrMalformedShortcut)
	require.ErrorContains(t, err, `button "bad"`)
	require.ErrorContains(t, err, `button "ok" listed twice`)
	require.ErrorContains(t, err, "button without id")
	require.Equal(t, []string{"ok", "bad"}, ids(bar.Buttons()))

	ok, _ := bar.Button("ok")
	require.Equal(t, "F1", ok.Shortcut())
}

func TestBarConflicts(t *testing.T) {
	bar, _, _ := newTestBar(t)
	require.NoError(t, bar.Apply([]Spec{
		{ID: "b", Shortcut: "ctrl+s"},
		{ID: "a", Shortcut: "Ctrl+S"},
		{ID: "c", Shortcut: "F5"},
	}))
	require.Equal(t, map[string][]string{"Ctrl+S": {"a", "b"}}, bar.Conflicts())

	require.True(t, bar.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS}))
	require.ElementsMatch(t, []string{"a", "b"}, bar.TakeActivations())
}

func TestBarConflictsGroupSameTerminalKey(t *testing.T) {
	bar, _, _ := newTestBar(t)
	require.NoError(t, bar.Apply([]Spec{
		{ID: "indent", Shortcut: "Ctrl+I"},
		{ID: "tab", Shortcut: "Tab"},
		{ID: "outdent", Shortcut: "Shift+Tab"},
	}))
	require.Equal(t, map[string][]string{"Ctrl+I / Tab": {"indent", "tab"}}, bar.Conflicts())

	require.True(t, bar.HandleKey(tea.KeyMsg{Type: tea.KeyTab}))
	require.ElementsMatch(t, []string{"indent", "tab"}, bar.TakeActivations())
}

func TestBarShadows(t *testing.T) {
	bar, _, _ := newTestBar(t)
	require.NoError(t, bar.Apply([]Spec{
		{ID: "indent", Shortcut: "Ctrl+I"},
		{ID: "save", Shortcut: "Ctrl+S"},
	}))
	used := func(terminal string) bool { return terminal == "tab" || terminal == "enter" }
	require.Equal(t, map[string][]string{"Ctrl+I": {"indent"}}, bar.Shadows(used))
	require.Empty(t, bar.Shadows(func(string) bool { return false }))
}

func TestBarRemoveAndClose(t *testing.T) {
	bar, _, _ := newTestBar(t)
	require.NoError(t, bar.Apply([]Spec{{ID: "a", Shortcut: "F1"}, {ID: "b", Shortcut: "F2"}}))
	bar.Focus().Focus("a", "keyboard")

	require.True(t, bar.Remove("a"))
	require.False(t, bar.Remove("a"))
	require.Equal(t, "b", bar.Focus().Focused())
	require.Equal(t, 1, bar.Scope().Live())

	bar.Close()
	require.Empty(t, bar.Buttons())
	require.Zero(t, bar.Scope().Live())
}

func TestBarInvoke(t *testing.T) {
	bar, journal, _ := newTestBar(t)
	_, err := bar.Add(Spec{ID: "a"})
	require.NoError(t, err)

	require.True(t, bar.Invoke("a"))
	require.False(t, bar.Invoke("missing"))
	require.Equal(t, []string{"a"}, bar.TakeActivations())
	require.Equal(t, 1, journal.Count(a11y.EventInvoked, "a"))
	require.Empty(t, bar.Focus().Focused())
}
