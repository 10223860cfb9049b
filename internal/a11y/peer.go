// Package a11y exposes widgets to assistive technology: a peer per control
// and a journal of the automation events those peers raise.
package a11y

import (
	"time"

	"github.com/google/uuid"
)

// Peer is the object through which assistive technology queries and
// activates a control.
type Peer interface {
	Invoke()
	SetAcceleratorKey(text string)
	AcceleratorKey() string
}

// PropertyAcceleratorKey names the accelerator-key hint in property events.
const PropertyAcceleratorKey = "AcceleratorKey"

// ButtonPeer is the peer of an invokable button. Invoke raises an invoked
// event and then runs the button's click handler, so every activation path
// looks the same to observers.
type ButtonPeer struct {
	automationID string
	name         func() string
	accel        string
	onInvoke     func()
	sink         Sink
}

// NewButtonPeer creates a peer. name is read lazily so label changes show up
// in later events; onInvoke and sink may be nil.
func NewButtonPeer(automationID string, name func() string, onInvoke func(), sink Sink) *ButtonPeer {
	if automationID == "" {
		automationID = uuid.NewString()
	}
	return &ButtonPeer{automationID: automationID, name: name, onInvoke: onInvoke, sink: sink}
}

func (p *ButtonPeer) AutomationID() string { return p.automationID }

func (p *ButtonPeer) Name() string {
	if p.name == nil {
		return ""
	}
	return p.name()
}

func (p *ButtonPeer) AcceleratorKey() string { return p.accel }

// SetAcceleratorKey stores the advisory shortcut text. The text is not
// validated; a property event is raised when it changes.
func (p *ButtonPeer) SetAcceleratorKey(text string) {
	old := p.accel
	p.accel = text
	if old == text {
		return
	}
	p.raise(Event{Kind: EventPropertyChanged, Property: PropertyAcceleratorKey, OldValue: old, NewValue: text})
}

func (p *ButtonPeer) Invoke() {
	p.raise(Event{Kind: EventInvoked})
	if p.onInvoke != nil {
		p.onInvoke()
	}
}

func (p *ButtonPeer) raise(e Event) {
	if p.sink == nil {
		return
	}
	e.ID = uuid.New()
	e.AutomationID = p.automationID
	e.Name = p.Name()
	e.At = time.Now()
	p.sink.Raise(e)
}
