package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/toolstrip/core"
	"github.com/jask/toolstrip/widgets"
)

// DropDownScreen is the open overflow menu. Choosing an entry invokes that
// button through the host.
type DropDownScreen struct {
	keys *core.KeyRegistry
	ids  []string
	menu widgets.Menu
}

// NewDropDownScreen snapshots the buttons currently placed in the drop-down.
func NewDropDownScreen(m *core.Model) *DropDownScreen {
	s := &DropDownScreen{keys: m.Keys(), menu: widgets.Menu{Title: "More"}}
	for _, b := range m.Bar().Placed(true) {
		v, ok := m.ButtonView(b.ID())
		if !ok {
			continue
		}
		s.ids = append(s.ids, b.ID())
		s.menu.Entries = append(s.menu.Entries, widgets.MenuEntry{View: v, Hint: b.Shortcut()})
	}
	return s
}

func (s *DropDownScreen) Title() string { return s.menu.Title }
func (s *DropDownScreen) Scope() string { return core.ScopeDropDown }

// Selected returns the id under the cursor.
func (s *DropDownScreen) Selected() (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[s.menu.Cursor], true
}

func (s *DropDownScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch s.keys.ActionFor(keyMsg, s.Scope()) {
	case "menu-up":
		s.move(-1)
	case "menu-down":
		s.move(1)
	case "select":
		id, ok := s.Selected()
		if !ok {
			return s, nil, true
		}
		return s, func() tea.Msg { return core.ButtonSelectedMsg{ID: id} }, true
	case "close":
		return s, nil, true
	}
	return s, nil, false
}

func (s *DropDownScreen) move(delta int) {
	n := len(s.ids)
	if n == 0 {
		return
	}
	s.menu.Cursor = ((s.menu.Cursor+delta)%n + n) % n
}

func (s *DropDownScreen) View(width, height int) string {
	return s.menu.Render(width, height)
}
