package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"bar"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "bar") {
		t.Fatalf("expected ctrl+k in bar")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "screen:x") {
		t.Fatalf("did not expect ctrl+k in screen:x")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "screen:x") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistryKeepsRuneCase(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}, ScopeBar); got != "toggle-placement" {
		t.Fatalf("o = %q", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'O'}}, ScopeBar); got != "" {
		t.Fatalf("O = %q, want no action", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ScopeBar); got != "invoke" {
		t.Fatalf("space = %q", got)
	}
}

func TestApplyActionKeybindingsOverridesEveryScope(t *testing.T) {
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{"close": {"ctrl+g"}})
	reg := NewKeyRegistry(bindings)
	for _, scope := range []string{ScopeDropDown, ScopeCommand} {
		if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlG}, "close", scope) {
			t.Fatalf("expected ctrl+g to close in %s", scope)
		}
		if reg.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, "close", scope) {
			t.Fatalf("esc should no longer close in %s", scope)
		}
	}
	defaults := DefaultKeybindingsByAction(DefaultKeyBindings())
	if keys := defaults["focus-next"]; len(keys) != 2 || keys[0] != "tab" {
		t.Fatalf("focus-next defaults = %v", keys)
	}
}

func TestKeyBindingHelpNamesSpace(t *testing.T) {
	h := KeyBinding{Keys: []string{" "}, Description: "press"}.Help().Help()
	if h.Key != "space" || h.Desc != "press" {
		t.Fatalf("help = %+v", h)
	}
}

func TestKeyRegistryUsesMatchesScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.Uses("tab", ScopeBar) || !reg.Uses("Enter", ScopeBar) {
		t.Fatalf("expected tab and enter in the bar scope")
	}
	if reg.Uses("j", ScopeBar) {
		t.Fatalf("j is only bound in the drop-down")
	}
	if reg.Uses("ctrl+s", ScopeBar) {
		t.Fatalf("ctrl+s is not a toolbar key")
	}
}
