package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCommands are the host commands. Buttons with the same id trigger
// them; the command palette lists them.
func DefaultCommands() []Command {
	return []Command{
		{
			ID:          "toggle-placement",
			Name:        "Move focused button",
			Description: "move the focused button between bar and drop-down",
			Scopes:      []string{ScopeBar, ScopeCommand},
			Execute:     func(m *Model) tea.Cmd { return m.ToggleFocusedPlacement() },
			Disabled: func(m *Model) (bool, string) {
				if _, ok := m.Focused(); !ok {
					return true, "no button focused"
				}
				return false, ""
			},
		},
		{
			ID:          "open-drop-down",
			Name:        "Open drop-down",
			Description: "show the overflow menu",
			Scopes:      []string{ScopeBar, ScopeCommand},
			Execute: func(m *Model) tea.Cmd {
				if m.OpenDropDown == nil {
					return nil
				}
				s := m.OpenDropDown(m)
				return func() tea.Msg { return PushScreenMsg{Screen: s} }
			},
			Disabled: func(m *Model) (bool, string) {
				if len(m.bar.Placed(true)) == 0 {
					return true, "drop-down is empty"
				}
				return false, ""
			},
		},
		{
			ID:          "reload-toolbar",
			Name:        "Reload toolbar",
			Description: "read the toolbar file again",
			Scopes:      []string{ScopeBar, ScopeCommand},
			Execute: func(m *Model) tea.Cmd {
				m.SetStatus("Reloading toolbar…")
				return m.Reload()
			},
			Disabled: func(m *Model) (bool, string) {
				if m.Reload == nil {
					return true, "no toolbar file"
				}
				return false, ""
			},
		},
		{
			ID:          "clear-journal",
			Name:        "Clear automation log",
			Description: "forget recorded automation events",
			Scopes:      []string{ScopeBar, ScopeCommand},
			Execute: func(m *Model) tea.Cmd {
				m.journal.Clear()
				m.SetStatus("Automation log cleared")
				return nil
			},
		},
		{
			ID:          "quit",
			Name:        "Quit",
			Description: "leave toolstrip",
			Scopes:      []string{ScopeBar, ScopeCommand},
			Execute: func(m *Model) tea.Cmd {
				m.quitting = true
				return tea.Quit
			},
		},
	}
}
