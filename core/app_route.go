package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/toolstrip/internal/focus"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case ButtonSelectedMsg:
		if !m.bar.Invoke(msg.ID) {
			m.SetError(fmt.Errorf("no button %q", msg.ID))
			return m, nil
		}
		cmd := m.activate()
		return m, cmd
	case ToolbarReloadedMsg:
		return m.applyReload(msg)
	case transitionTickMsg:
		for _, v := range m.views {
			v.Step()
		}
		if !m.animating() {
			m.ticking = false
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	top := m.screens.Top()
	capturing := false
	if tc, ok := top.(TextCapture); ok {
		capturing = tc.CapturesText()
	}
	if !capturing && m.bar.HandleKey(msg) {
		cmd := m.activate()
		return m, cmd
	}

	if top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}

	ring := m.bar.Focus()
	switch m.keys.ActionFor(msg, ScopeBar) {
	case "focus-next":
		ring.Next(focus.SourceKeyboard)
	case "focus-prev":
		ring.Prev(focus.SourceKeyboard)
	case "invoke":
		b, ok := m.Focused()
		if !ok {
			return m, nil
		}
		b.Invoke()
		cmd := m.activate()
		return m, cmd
	case "open-command-palette":
		if m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, ScopeCommand))
		}
	case "toggle-placement", "open-drop-down", "reload-toolbar", "quit":
		cmd := m.commands.Execute(m.keys.ActionFor(msg, ScopeBar), &m)
		return m, cmd
	}
	return m, nil
}

func (m Model) applyReload(msg ToolbarReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("[core] toolbar reload failed", "path", msg.Path, "error", msg.Err)
		m.SetError(fmt.Errorf("toolbar reload: %w", msg.Err))
		return m, nil
	}
	m.screens.Clear()
	if err := m.SetToolbar(msg.Specs); err != nil {
		m.logger.Warn("[core] toolbar applied with errors", "path", msg.Path, "error", err)
		m.SetError(err)
	} else {
		m.SetStatus(fmt.Sprintf("Toolbar reloaded: %d buttons", len(m.bar.Buttons())))
	}
	return m, m.startTransitions()
}
