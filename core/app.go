package core

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/toolstrip/internal/a11y"
	"github.com/jask/toolstrip/internal/focus"
	"github.com/jask/toolstrip/internal/toolbar"
	"github.com/jask/toolstrip/widgets"
)

// Screen is an overlay that takes keys while it is on top. Update returns
// the replacement screen (nil keeps the current one), a command, and whether
// the screen should close.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// TextCapture is implemented by screens that take typed text. While one is on
// top, toolbar shortcuts are not dispatched.
type TextCapture interface {
	CapturesText() bool
}

// Options configure a Model. Zero values get defaults.
type Options struct {
	Title              string
	Keys               *KeyRegistry
	Commands           *CommandRegistry
	TransitionFrames   int
	TransitionInterval time.Duration
	JournalSize        int
	Logger             *slog.Logger
}

type Model struct {
	width  int
	height int
	title  string

	bar         *toolbar.Bar
	views       map[string]*widgets.ButtonView
	journal     *a11y.Journal
	journalPane *widgets.JournalPane
	styles      widgets.ButtonStyles

	screens  ScreenStack
	keys     *KeyRegistry
	commands *CommandRegistry

	frames   int
	interval time.Duration
	ticking  bool

	status    string
	statusErr bool
	quitting  bool
	logger    *slog.Logger

	// Reload loads the toolbar definition again; its message is a
	// ToolbarReloadedMsg. Nil disables reloading.
	Reload           func() tea.Cmd
	OpenDropDown     func(m *Model) Screen
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(opts Options) Model {
	if opts.Title == "" {
		opts.Title = "toolstrip"
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Commands == nil {
		opts.Commands = NewCommandRegistry(DefaultCommands())
	}
	if opts.TransitionInterval <= 0 {
		opts.TransitionInterval = 40 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ring := focus.NewRing(opts.Logger)
	ring.Eligible = func(f focus.Focusable) bool {
		b, ok := f.(*toolbar.Button)
		return !ok || !b.IsInDropDown()
	}
	journal := a11y.NewJournal(opts.JournalSize)
	m := Model{
		title:       opts.Title,
		views:       map[string]*widgets.ButtonView{},
		journal:     journal,
		journalPane: widgets.NewJournalPane("Automation events"),
		styles:      widgets.DefaultButtonStyles(),
		keys:        opts.Keys,
		commands:    opts.Commands,
		frames:      max(0, opts.TransitionFrames),
		interval:    opts.TransitionInterval,
		status:      "Ready",
		width:       100,
		height:      24,
		logger:      opts.Logger,
	}
	views, frames, styles := m.views, m.frames, m.styles
	m.bar = toolbar.NewBar(toolbar.BarDeps{
		Focus:  ring,
		Events: journal,
		Logger: opts.Logger,
		NewView: func(b *toolbar.Button) toolbar.Renderer {
			v := widgets.NewButtonView(b.Label, func() string { return string(b.Icon()) }, frames, styles)
			views[b.ID()] = v
			return v
		},
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetToolbar reconciles the bar with specs. Per-button errors are returned;
// every valid part of specs is applied regardless.
func (m *Model) SetToolbar(specs []toolbar.Spec) error {
	err := m.bar.Apply(specs)
	for forms, ids := range m.shadowedKeys() {
		m.logger.Warn("[core] shortcut overrides a toolbar key", "gesture", forms, "buttons", ids)
	}
	m.pruneViews()
	if m.bar.Focus().Focused() == "" {
		m.bar.Focus().Next(focus.SourceProgrammatic)
	}
	return err
}

// shadowedKeys lists button gestures that arrive as a key the bar scope
// binds, such as Ctrl+I for tab.
func (m Model) shadowedKeys() map[string][]string {
	return m.bar.Shadows(func(terminal string) bool { return m.keys.Uses(terminal, ScopeBar) })
}

func (m *Model) pruneViews() {
	for id := range m.views {
		if _, ok := m.bar.Button(id); !ok {
			delete(m.views, id)
		}
	}
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return ScopeBar
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Screens() int { return m.screens.Len() }

func (m Model) Bar() *toolbar.Bar { return m.bar }

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m Model) Journal() *a11y.Journal { return m.journal }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// ButtonView returns the renderer attached to a button.
func (m Model) ButtonView(id string) (*widgets.ButtonView, bool) {
	v, ok := m.views[id]
	return v, ok
}

// Focused returns the focused button, if any.
func (m Model) Focused() (*toolbar.Button, bool) {
	id := m.bar.Focus().Focused()
	if id == "" {
		return nil, false
	}
	return m.bar.Button(id)
}

// ToggleFocusedPlacement moves the focused button between the bar and the
// drop-down and moves focus on when it left the bar.
func (m *Model) ToggleFocusedPlacement() tea.Cmd {
	b, ok := m.Focused()
	if !ok {
		return StatusCmd("no button focused")
	}
	b.SetInDropDown(!b.IsInDropDown())
	where := "bar"
	if b.IsInDropDown() {
		where = "drop-down"
		m.bar.Focus().Next(focus.SourceProgrammatic)
	}
	m.SetStatus(fmt.Sprintf("%s moved to the %s", b.Label(), where))
	return m.startTransitions()
}

// activate turns queued button activations into commands. A button whose id
// names a registered command runs it; any other button just reports itself.
func (m *Model) activate() tea.Cmd {
	ids := m.bar.TakeActivations()
	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		if _, ok := m.commands.Get(id); ok {
			cmds = append(cmds, m.commands.Execute(id, m))
			continue
		}
		label := id
		if b, ok := m.bar.Button(id); ok && b.Label() != "" {
			label = b.Label()
		}
		m.SetStatus("Activated " + label)
	}
	return tea.Batch(cmds...)
}

func (m *Model) startTransitions() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return transitionTickMsg{} })
}

func (m Model) animating() bool {
	for _, v := range m.views {
		if v.Animating() {
			return true
		}
	}
	return false
}

// Close tears the bar down. The program calls it once after Run returns.
func (m Model) Close() {
	m.bar.Close()
}
