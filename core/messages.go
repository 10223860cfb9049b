package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/toolstrip/internal/toolbar"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// ButtonSelectedMsg asks the host to invoke a toolbar button, as a click
// from the drop-down or the command palette would.
type ButtonSelectedMsg struct {
	ID string
}

// ToolbarReloadedMsg carries a freshly loaded toolbar definition.
type ToolbarReloadedMsg struct {
	Path  string
	Specs []toolbar.Spec
	Err   error
}

type transitionTickMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
