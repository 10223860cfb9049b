package toolbar

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/toolstrip/internal/a11y"
	"github.com/jask/toolstrip/internal/focus"
	"github.com/jask/toolstrip/internal/gesture"
)

// Spec describes one button of a bar.
type Spec struct {
	ID         string
	Label      string
	Icon       Icon
	Shortcut   string
	InDropDown bool
	TabStop    *bool
}

// BarDeps are shared by every button of a bar. Nil Scope and Focus get fresh
// instances; NewView, when set, supplies each new button's renderer.
type BarDeps struct {
	Scope   *gesture.Scope
	Focus   *focus.Ring
	Events  a11y.Sink
	NewView func(b *Button) Renderer
	Logger  *slog.Logger
}

// Bar owns an ordered set of buttons and the collaborators they share.
type Bar struct {
	buttons     []*Button
	scope       *gesture.Scope
	ring        *focus.Ring
	events      a11y.Sink
	newView     func(b *Button) Renderer
	logger      *slog.Logger
	activations []string
}

func NewBar(deps BarDeps) *Bar {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Scope == nil {
		deps.Scope = gesture.NewScope(deps.Logger)
	}
	if deps.Focus == nil {
		deps.Focus = focus.NewRing(deps.Logger)
	}
	return &Bar{
		scope:   deps.Scope,
		ring:    deps.Focus,
		events:  deps.Events,
		newView: deps.NewView,
		logger:  deps.Logger,
	}
}

func (b *Bar) Scope() *gesture.Scope { return b.scope }

func (b *Bar) Focus() *focus.Ring { return b.ring }

// Add creates a button from spec. A malformed shortcut does not prevent the
// button from being added: it is returned together with the error and has no
// shortcut.
func (b *Bar) Add(spec Spec) (*Button, error) {
	if spec.ID == "" {
		spec.ID = uuid.NewString()
	}
	if _, ok := b.Button(spec.ID); ok {
		return nil, fmt.Errorf("button %q already exists", spec.ID)
	}
	btn := NewButton(spec.ID, Deps{
		Listen:  b.scope.Factory(),
		Focus:   b.ring,
		Events:  b.events,
		OnClick: b.record,
		Logger:  b.logger,
	})
	btn.SetIcon(spec.Icon)
	btn.SetContent(spec.Label)
	if spec.TabStop != nil {
		btn.SetTabStop(*spec.TabStop)
	}
	btn.SetInDropDown(spec.InDropDown)

	b.buttons = append(b.buttons, btn)
	b.ring.Add(btn)
	if b.newView != nil {
		btn.Attach(b.newView(btn))
	}
	if err := btn.SetShortcut(spec.Shortcut); err != nil {
		return btn, fmt.Errorf("button %q: %w", spec.ID, err)
	}
	return btn, nil
}

// Apply reconciles the bar with specs: existing buttons are updated in place,
// new ones added, missing ones closed and removed, and the order follows
// specs. Every per-button error is returned joined; the rest still apply.
func (b *Bar) Apply(specs []Spec) error {
	var errs []error
	keep := make(map[string]bool, len(specs))
	order := make([]string, 0, len(specs))

	for _, spec := range specs {
		if spec.ID == "" {
			errs = append(errs, errors.New("button without id"))
			continue
		}
		if keep[spec.ID] {
			errs = append(errs, fmt.Errorf("button %q listed twice", spec.ID))
			continue
		}
		keep[spec.ID] = true
		order = append(order, spec.ID)

		btn, ok := b.Button(spec.ID)
		if !ok {
			if _, err := b.Add(spec); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		btn.SetIcon(spec.Icon)
		btn.SetContent(spec.Label)
		if spec.TabStop != nil {
			btn.SetTabStop(*spec.TabStop)
		}
		btn.SetInDropDown(spec.InDropDown)
		if btn.Shortcut() != spec.Shortcut {
			if err := btn.SetShortcut(spec.Shortcut); err != nil {
				errs = append(errs, fmt.Errorf("button %q: %w", spec.ID, err))
			}
		}
	}

	for _, btn := range slices.Clone(b.buttons) {
		if !keep[btn.ID()] {
			b.Remove(btn.ID())
		}
	}
	rank := make(map[string]int, len(order))
	for i, id := range order {
		rank[id] = i
	}
	slices.SortStableFunc(b.buttons, func(x, y *Button) int { return rank[x.ID()] - rank[y.ID()] })
	b.ring.Reorder(order)

	for g, ids := range b.Conflicts() {
		b.logger.Warn("[toolbar] shortcut bound to several buttons", "gesture", g, "buttons", ids)
	}
	return errors.Join(errs...)
}

// Button looks up a button by id.
func (b *Bar) Button(id string) (*Button, bool) {
	i := slices.IndexFunc(b.buttons, func(x *Button) bool { return x.ID() == id })
	if i < 0 {
		return nil, false
	}
	return b.buttons[i], true
}

// Buttons returns every button in bar order.
func (b *Bar) Buttons() []*Button { return slices.Clone(b.buttons) }

// Placed returns the buttons in the drop-down (true) or inline (false).
func (b *Bar) Placed(inDropDown bool) []*Button {
	out := make([]*Button, 0, len(b.buttons))
	for _, btn := range b.buttons {
		if btn.IsInDropDown() == inDropDown {
			out = append(out, btn)
		}
	}
	return out
}

// Conflicts reports terminal keys bound to more than one button. Spellings
// that reach the terminal as the same key (Ctrl+I and Tab) count as one. The
// map key lists the display forms involved, the value the button ids.
func (b *Bar) Conflicts() map[string][]string {
	out := map[string][]string{}
	for _, group := range b.byTerminal() {
		if len(group.ids) > 1 {
			out[group.label()] = group.ids
		}
	}
	return out
}

// Shadows reports buttons whose gesture arrives as a key for which used
// returns true. Gestures are dispatched first, so those keys stop reaching
// the host. The map key lists the display forms, the value the button ids.
func (b *Bar) Shadows(used func(terminal string) bool) map[string][]string {
	out := map[string][]string{}
	for terminal, group := range b.byTerminal() {
		if used(terminal) {
			out[group.label()] = group.ids
		}
	}
	return out
}

type gestureGroup struct {
	forms []string
	ids   []string
}

func (g gestureGroup) label() string { return strings.Join(g.forms, " / ") }

func (b *Bar) byTerminal() map[string]*gestureGroup {
	groups := map[string]*gestureGroup{}
	for _, btn := range b.buttons {
		g := btn.Gesture()
		if g == nil {
			continue
		}
		group, ok := groups[g.Terminal()]
		if !ok {
			group = &gestureGroup{}
			groups[g.Terminal()] = group
		}
		if !slices.Contains(group.forms, g.String()) {
			group.forms = append(group.forms, g.String())
		}
		group.ids = append(group.ids, btn.ID())
	}
	for _, group := range groups {
		sort.Strings(group.forms)
		sort.Strings(group.ids)
	}
	return groups
}

// Remove closes and removes a button. It reports whether the id existed.
func (b *Bar) Remove(id string) bool {
	btn, ok := b.Button(id)
	if !ok {
		return false
	}
	btn.Close()
	b.ring.Remove(id)
	b.buttons = slices.DeleteFunc(b.buttons, func(x *Button) bool { return x == btn })
	return true
}

// Close tears every button down.
func (b *Bar) Close() {
	for _, btn := range slices.Clone(b.buttons) {
		b.Remove(btn.ID())
	}
}

// HandleKey offers msg to the bar's shortcuts and reports whether one fired.
func (b *Bar) HandleKey(msg tea.KeyMsg) bool {
	return b.scope.Dispatch(msg) > 0
}

// Invoke triggers a button exactly as a user click would.
func (b *Bar) Invoke(id string) bool {
	btn, ok := b.Button(id)
	if !ok {
		return false
	}
	btn.Invoke()
	return true
}

// TakeActivations returns the ids activated since the last call, in order.
func (b *Bar) TakeActivations() []string {
	out := b.activations
	b.activations = nil
	return out
}

func (b *Bar) record(btn *Button) {
	b.activations = append(b.activations, btn.ID())
}
