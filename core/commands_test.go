package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"bar"}},
		{ID: "b", Name: "Beta", Scopes: []string{"screen:x"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(Options{Commands: reg})
	resA := reg.Search("", "bar", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in bar, got %+v", resA)
	}
	resB := reg.Search("", "screen:x", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in screen:x, got %+v", resB)
	}
}

func TestExecuteUnknownCommandReportsError(t *testing.T) {
	reg := NewCommandRegistry(nil)
	m := NewModel(Options{Commands: reg})
	msg := reg.Execute("nope", &m)()
	status, ok := msg.(StatusMsg)
	if !ok || !status.IsErr {
		t.Fatalf("expected error status, got %#v", msg)
	}
}

func TestExecuteDisabledCommandReportsReason(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{{
		ID:       "x",
		Execute:  func(*Model) tea.Cmd { ran = true; return nil },
		Disabled: func(*Model) (bool, string) { return true, "" },
	}})
	m := NewModel(Options{Commands: reg})
	msg := reg.Execute("x", &m)()
	if ran {
		t.Fatalf("disabled command ran")
	}
	if status := msg.(StatusMsg); status.Text != "command is disabled" {
		t.Fatalf("status = %q", status.Text)
	}
}
