// Package focus tracks which control owns keyboard focus and moves it in tab
// order or on request.
package focus

import (
	"log/slog"
	"slices"
)

// Source identifies where a focus request originated.
type Source string

const (
	SourceKeyboard     Source = "keyboard"
	SourcePointer      Source = "pointer"
	SourceProgrammatic Source = "programmatic"
)

// Focusable is a control the ring can focus.
type Focusable interface {
	FocusID() string
	IsTabStop() bool
}

// Transition records one completed focus change.
type Transition struct {
	From   string
	To     string
	Source Source
}

const historySize = 32

// Ring holds focusables in registration order, which is also tab order.
type Ring struct {
	items   []Focusable
	current string
	history []Transition
	logger  *slog.Logger

	// Eligible, when set, further restricts which tab stops Next and Prev
	// visit. Programmatic focus ignores it.
	Eligible func(Focusable) bool
}

func NewRing(logger *slog.Logger) *Ring {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ring{logger: logger}
}

// Add registers f, replacing any focusable with the same id in place.
func (r *Ring) Add(f Focusable) {
	if i := r.index(f.FocusID()); i >= 0 {
		r.items[i] = f
		return
	}
	r.items = append(r.items, f)
}

// Remove unregisters id. If it held focus, focus moves to the next tab stop.
func (r *Ring) Remove(id string) {
	i := r.index(id)
	if i < 0 {
		return
	}
	wasFocused := r.current == id
	if wasFocused {
		r.Next(SourceProgrammatic)
		if r.current == id {
			r.current = ""
		}
	}
	r.items = slices.Delete(r.items, i, i+1)
}

// Focused returns the focused id, or "" when nothing has focus.
func (r *Ring) Focused() string { return r.current }

// IsTabStop reports whether id is registered and takes part in tab navigation.
func (r *Ring) IsTabStop(id string) bool {
	i := r.index(id)
	return i >= 0 && r.items[i].IsTabStop()
}

// Focus moves focus to id. It fails only when id is not registered.
func (r *Ring) Focus(id string, src Source) bool {
	if r.index(id) < 0 {
		return false
	}
	r.move(id, src)
	return true
}

// Next moves focus to the following tab stop, wrapping around.
func (r *Ring) Next(src Source) bool { return r.step(1, src) }

// Prev moves focus to the preceding tab stop, wrapping around.
func (r *Ring) Prev(src Source) bool { return r.step(-1, src) }

// History returns recent transitions, oldest first.
func (r *Ring) History() []Transition { return slices.Clone(r.history) }

func (r *Ring) step(dir int, src Source) bool {
	n := len(r.items)
	if n == 0 {
		return false
	}
	start := r.index(r.current)
	if start < 0 {
		start = -1
		if dir < 0 {
			start = n
		}
	}
	for k := 1; k <= n; k++ {
		i := ((start+dir*k)%n + n) % n
		f := r.items[i]
		if !f.IsTabStop() || (r.Eligible != nil && !r.Eligible(f)) {
			continue
		}
		if f.FocusID() == r.current {
			return false
		}
		r.move(f.FocusID(), src)
		return true
	}
	return false
}

func (r *Ring) move(id string, src Source) {
	if r.current == id {
		return
	}
	t := Transition{From: r.current, To: id, Source: src}
	r.current = id
	r.history = append(r.history, t)
	if over := len(r.history) - historySize; over > 0 {
		r.history = slices.Delete(r.history, 0, over)
	}
	r.logger.Debug("[focus] moved", "from", t.From, "to", t.To, "source", string(src))
}

func (r *Ring) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(r.items, func(f Focusable) bool { return f.FocusID() == id })
}

// Reorder moves the listed ids to the front in the given order. Unlisted
// focusables keep their relative order after them.
func (r *Ring) Reorder(ids []string) {
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	slices.SortStableFunc(r.items, func(a, b Focusable) int {
		ra, okA := rank[a.FocusID()]
		rb, okB := rank[b.FocusID()]
		switch {
		case okA && okB:
			return ra - rb
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}
