package a11y

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventInvoked         EventKind = "invoked"
	EventPropertyChanged EventKind = "property-changed"
)

// Event is one automation notification.
type Event struct {
	ID           uuid.UUID
	Kind         EventKind
	AutomationID string
	Name         string
	Property     string
	OldValue     string
	NewValue     string
	At           time.Time
}

func (e Event) String() string {
	switch e.Kind {
	case EventInvoked:
		return fmt.Sprintf("%s invoked %q", e.AutomationID, e.Name)
	case EventPropertyChanged:
		return fmt.Sprintf("%s %s %q -> %q", e.AutomationID, e.Property, e.OldValue, e.NewValue)
	default:
		return fmt.Sprintf("%s %s", e.AutomationID, e.Kind)
	}
}

// Sink receives automation events.
type Sink interface {
	Raise(e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Raise(e Event) { f(e) }

const defaultJournalSize = 64

// Journal keeps the most recent automation events, oldest first.
type Journal struct {
	events []Event
	limit  int
	total  int
}

// NewJournal returns a journal holding at most limit events. A non-positive
// limit uses a default of 64.
func NewJournal(limit int) *Journal {
	if limit <= 0 {
		limit = defaultJournalSize
	}
	return &Journal{limit: limit}
}

func (j *Journal) Raise(e Event) {
	j.total++
	j.events = append(j.events, e)
	if over := len(j.events) - j.limit; over > 0 {
		j.events = slices.Delete(j.events, 0, over)
	}
}

// Events returns a copy of the retained events.
func (j *Journal) Events() []Event { return slices.Clone(j.events) }

// Recent returns up to n of the newest events, newest first.
func (j *Journal) Recent(n int) []Event {
	if n <= 0 {
		return nil
	}
	out := make([]Event, 0, min(n, len(j.events)))
	for i := len(j.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, j.events[i])
	}
	return out
}

// Count returns the retained events of kind raised by automationID. An empty
// automationID counts every peer.
func (j *Journal) Count(kind EventKind, automationID string) int {
	n := 0
	for _, e := range j.events {
		if e.Kind == kind && (automationID == "" || e.AutomationID == automationID) {
			n++
		}
	}
	return n
}

// Total returns the number of events ever raised, including evicted ones.
func (j *Journal) Total() int { return j.total }

// Clear drops the retained events. Total is kept.
func (j *Journal) Clear() { j.events = nil }
