package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/toolstrip/core"
	"github.com/jask/toolstrip/widgets"
)

// CommandOption is one palette row: a host command or a toolbar button.
type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Button   bool
	Disabled bool
	Reason   string
}

func (o CommandOption) title() string {
	if o.Disabled && o.Reason != "" {
		return fmt.Sprintf("%s (%s)", o.Name, o.Reason)
	}
	return o.Name
}

// CommandScreen is the command palette. Commands that have a toolbar button
// are run by invoking the button, so they show up as activations.
type CommandScreen struct {
	scope   string
	keys    *core.KeyRegistry
	options map[string]CommandOption
	input   textinput.Model
	picker  *core.Picker
}

func NewCommandScreen(m *core.Model, scope string) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands and buttons"
	inp.Prompt = "cmd> "
	inp.Focus()

	s := &CommandScreen{scope: scope, keys: m.Keys(), options: map[string]CommandOption{}, input: inp}
	items := make([]core.PickerItem, 0)
	add := func(o CommandOption) {
		if _, dup := s.options[o.ID]; dup {
			return
		}
		s.options[o.ID] = o
		items = append(items, core.PickerItem{ID: o.ID, Label: o.title(), Meta: o.Desc, Search: o.Name + " " + o.Desc + " " + o.ID})
	}
	for _, c := range m.CommandRegistry().Search("", scope, m) {
		_, hasButton := m.Bar().Button(c.CommandID)
		add(CommandOption{ID: c.CommandID, Name: c.Name, Desc: c.Desc, Button: hasButton, Disabled: c.Disabled, Reason: c.Reason})
	}
	for _, b := range m.Bar().Buttons() {
		desc := "toolbar button"
		if b.Shortcut() != "" {
			desc += " · " + b.Shortcut()
		}
		add(CommandOption{ID: b.ID(), Name: "Press " + b.Label(), Desc: desc, Button: true})
	}
	s.picker = core.NewPicker("Commands", items)
	return s
}

func (s *CommandScreen) Title() string      { return "Command Palette" }
func (s *CommandScreen) Scope() string      { return core.ScopeCommand }
func (s *CommandScreen) CapturesText() bool { return true }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch s.keys.ActionFor(keyMsg, s.Scope()) {
		case "close":
			return s, nil, true
		case "palette-up":
			s.picker.Move(-1)
			return s, nil, false
		case "palette-down":
			s.picker.Move(1)
			return s, nil, false
		case "select":
			return s, s.choose(), true
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.picker.SetQuery(strings.TrimSpace(s.input.Value()))
	return s, cmd, false
}

func (s *CommandScreen) choose() tea.Cmd {
	item, ok := s.picker.Current()
	if !ok {
		return nil
	}
	o := s.options[item.ID]
	switch {
	case o.Disabled:
		return core.StatusCmd(o.Reason)
	case o.Button:
		return func() tea.Msg { return core.ButtonSelectedMsg{ID: o.ID} }
	default:
		return func() tea.Msg { return core.CommandExecuteMsg{CommandID: o.ID} }
	}
}

func (s *CommandScreen) View(width, height int) string {
	inner := max(20, min(60, width-4))
	lines := []string{s.input.View(), ""}
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No matches")
	}
	for i, it := range items {
		prefix := "  "
		if i == s.picker.Cursor() {
			prefix = "› "
		}
		row := prefix + it.Label
		if it.Meta != "" {
			row += " - " + it.Meta
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", "Enter run. Esc close.")
	body := core.ClipHeight(strings.Join(lines, "\n"), max(6, height-2))
	return widgets.Card(widgets.Text(body).Render(inner, len(strings.Split(body, "\n"))))
}
