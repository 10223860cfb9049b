package toolbar

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/jask/toolstrip/internal/a11y"
	"github.com/jask/toolstrip/internal/focus"
	"github.com/jask/toolstrip/internal/gesture"
	"github.com/jask/toolstrip/internal/observe"
)

// VisualState names the appearance a renderer switches a button to.
type VisualState string

const (
	PlacedInBar      VisualState = "PlacedInBar"
	PlacedInDropDown VisualState = "PlacedInDropDown"
)

// Icon is the glyph a button shows. The button only stores it.
type Icon string

// Renderer draws a button. GoToState switches between named visual states;
// SetToolTip with "" clears the tooltip slot.
type Renderer interface {
	GoToState(state string, useTransitions bool) bool
	SetToolTip(text string)
}

// Focuser answers tab-stop queries and moves focus on request.
type Focuser interface {
	IsTabStop(id string) bool
	Focus(id string, src focus.Source) bool
}

// Deps are the collaborators a Button talks to. Every field is optional:
// without Listen shortcuts parse but never fire, without Focus a recognized
// shortcut invokes without moving focus.
type Deps struct {
	Listen  func(gesture.Gesture) gesture.Listener
	Focus   Focuser
	Events  a11y.Sink
	OnClick func(b *Button)
	Logger  *slog.Logger
}

// Button is a toolbar button that sits inline in the bar or inside the
// overflow drop-down and can be bound to a keyboard shortcut.
//
// Shortcut, placement and content are inputs. Visual state, tooltip and the
// accelerator-key hint on the peer are derived from them synchronously inside
// the setters. The button owns at most one gesture listener at a time.
type Button struct {
	id string

	icon       Icon
	shortcut   string
	gesture    *gesture.Gesture
	inDropDown bool
	content    *observe.Value[any]
	tabStop    bool

	listener    gesture.Listener
	unsubscribe func()
	stopContent func()

	state   VisualState
	tooltip string
	view    Renderer
	peer    *a11y.ButtonPeer

	deps   Deps
	closed bool
}

// NewButton returns a button placed in the bar with no shortcut. An empty id
// gets a generated one.
func NewButton(id string, deps Deps) *Button {
	if id == "" {
		id = uuid.NewString()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	b := &Button{id: id, tabStop: true, state: PlacedInBar, deps: deps}
	b.peer = a11y.NewButtonPeer(id, b.Label, b.click, deps.Events)
	b.content = observe.NewValue[any](nil, sameContent)
	// Content is not part of the tooltip, but a content change refreshes it
	// through the same path as the other inputs.
	b.stopContent = b.content.OnChange(func(_, _ any) { b.updateToolTip() })
	return b
}

func (b *Button) ID() string { return b.id }

func (b *Button) Icon() Icon { return b.icon }

func (b *Button) SetIcon(icon Icon) {
	if b.closed {
		return
	}
	b.icon = icon
}

// Shortcut returns the raw shortcut text, "" when there is none.
func (b *Button) Shortcut() string { return b.shortcut }

// Gesture returns the parsed shortcut, nil exactly when Shortcut is "".
func (b *Button) Gesture() *gesture.Gesture { return b.gesture }

// SetShortcut binds the button to the gesture described by text; "" clears
// it. The accelerator hint is forwarded first and unconditionally, and any
// live listener is unsubscribed and disposed before text is parsed. On a
// *gesture.MalformedShortcutError the button is left without a shortcut and
// the error is returned.
func (b *Button) SetShortcut(text string) error {
	if b.closed {
		return nil
	}
	b.peer.SetAcceleratorKey(text)
	b.releaseListener()
	defer b.updateToolTip()

	g, err := gesture.Parse(text)
	if err != nil {
		b.shortcut, b.gesture = "", nil
		b.deps.Logger.Warn("[toolbar] shortcut rejected", "button", b.id, "shortcut", text, "error", err)
		return err
	}
	if g == nil {
		b.shortcut, b.gesture = "", nil
		return nil
	}
	b.shortcut, b.gesture = text, g
	b.bindListener(*g)
	return nil
}

func (b *Button) IsInDropDown() bool { return b.inDropDown }

// SetInDropDown moves the button between the bar and the drop-down. Setting
// the current value does nothing.
func (b *Button) SetInDropDown(flag bool) {
	if b.closed || b.inDropDown == flag {
		return
	}
	b.inDropDown = flag
	b.updateVisualState(true)
	b.updateToolTip()
}

func (b *Button) Content() any { return b.content.Get() }

func (b *Button) SetContent(v any) {
	if b.closed {
		return
	}
	b.content.Set(v)
}

// Label renders the content as text.
func (b *Button) Label() string {
	switch v := b.content.Get().(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ToolTip returns the current tooltip, "" for none.
func (b *Button) ToolTip() string { return b.tooltip }

func (b *Button) VisualState() VisualState { return b.state }

func (b *Button) FocusID() string { return b.id }

func (b *Button) IsTabStop() bool { return b.tabStop }

func (b *Button) SetTabStop(v bool) { b.tabStop = v }

// AutomationPeer returns the button's single accessibility peer.
func (b *Button) AutomationPeer() *a11y.ButtonPeer { return b.peer }

// Listening reports whether a gesture listener is currently bound.
func (b *Button) Listening() bool { return b.listener != nil }

// Attach hands the button to a renderer. This is the first moment the button
// can be drawn, so the current placement is applied without a transition and
// the current tooltip is pushed. Attach(nil) detaches.
func (b *Button) Attach(view Renderer) {
	b.view = view
	if view == nil || b.closed {
		return
	}
	b.updateVisualState(false)
	view.SetToolTip(b.tooltip)
}

// Invoke activates the button through its peer, exactly as a click would.
func (b *Button) Invoke() {
	b.peer.Invoke()
}

// Close releases the gesture listener and the content hook. Setters on a
// closed button do nothing.
func (b *Button) Close() {
	if b.closed {
		return
	}
	b.releaseListener()
	if b.stopContent != nil {
		b.stopContent()
		b.stopContent = nil
	}
	b.view = nil
	b.closed = true
	b.deps.Logger.Debug("[toolbar] button closed", "button", b.id)
}

func (b *Button) bindListener(g gesture.Gesture) {
	if b.deps.Listen == nil {
		b.deps.Logger.Debug("[toolbar] no gesture scope, shortcut will not fire", "button", b.id, "gesture", g.String())
		return
	}
	b.listener = b.deps.Listen(g)
	b.unsubscribe = b.listener.OnRecognized(b.onGestureRecognized)
	b.deps.Logger.Debug("[toolbar] listener bound", "button", b.id, "gesture", g.String())
}

// releaseListener unsubscribes strictly before Dispose.
func (b *Button) releaseListener() {
	if b.listener == nil {
		return
	}
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	b.listener.Dispose()
	b.listener = nil
	b.deps.Logger.Debug("[toolbar] listener disposed", "button", b.id)
}

func (b *Button) onGestureRecognized() {
	if f := b.deps.Focus; f != nil && f.IsTabStop(b.id) {
		f.Focus(b.id, focus.SourceProgrammatic)
	}
	b.Invoke()
}

func (b *Button) click() {
	b.deps.Logger.Info("[toolbar] button activated", "button", b.id, "label", b.Label())
	if b.deps.OnClick != nil {
		b.deps.OnClick(b)
	}
}

func (b *Button) updateVisualState(useTransitions bool) {
	b.state = PlacedInBar
	if b.inDropDown {
		b.state = PlacedInDropDown
	}
	if b.view != nil {
		b.view.GoToState(string(b.state), useTransitions)
	}
}

func (b *Button) updateToolTip() {
	b.tooltip = ""
	if !b.inDropDown && b.shortcut != "" {
		b.tooltip = "(" + b.shortcut + ")"
	}
	if b.view != nil {
		b.view.SetToolTip(b.tooltip)
	}
}

// sameContent compares content by identity: == for comparable values, and
// never equal for slices, maps or funcs, so a fresh value always notifies.
func sameContent(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
