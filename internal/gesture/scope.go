package gesture

import (
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Listener is a live subscription that raises an event whenever its gesture
// occurs. Dispose is safe to call more than once.
type Listener interface {
	OnRecognized(fn func()) (cancel func())
	Dispose()
}

// Scope fans key messages out to every live recognizer bound to it. A scope
// is owned by one bubbletea program and is only touched from its update loop.
type Scope struct {
	recognizers []*Recognizer
	logger      *slog.Logger
}

// NewScope returns an empty scope. A nil logger uses slog.Default().
func NewScope(logger *slog.Logger) *Scope {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scope{logger: logger}
}

// Listen registers a recognizer for g.
func (s *Scope) Listen(g Gesture) *Recognizer {
	r := &Recognizer{scope: s, gesture: g, handlers: map[int]func(){}}
	s.recognizers = append(s.recognizers, r)
	s.logger.Debug("[gesture] recognizer registered", "gesture", g.String(), "live", len(s.recognizers))
	return r
}

// Factory adapts Listen to the listener-factory shape widgets consume.
func (s *Scope) Factory() func(Gesture) Listener {
	return func(g Gesture) Listener { return s.Listen(g) }
}

// Live returns the number of registered, undisposed recognizers.
func (s *Scope) Live() int { return len(s.recognizers) }

// LiveFor returns the number of live recognizers bound to g.
func (s *Scope) LiveFor(g Gesture) int {
	n := 0
	for _, r := range s.recognizers {
		if r.gesture.Equal(g) {
			n++
		}
	}
	return n
}

// Dispatch offers msg to every recognizer and returns how many recognized it.
// Recognizers disposed by an earlier handler during the same dispatch are
// skipped.
func (s *Scope) Dispatch(msg tea.KeyMsg) int {
	matched := 0
	for _, r := range slices.Clone(s.recognizers) {
		if r.disposed || !r.gesture.Matches(msg) {
			continue
		}
		matched++
		r.raise()
	}
	if matched > 0 {
		s.logger.Debug("[gesture] recognized", "key", msg.String(), "recognizers", matched)
	}
	return matched
}

func (s *Scope) remove(r *Recognizer) {
	s.recognizers = slices.DeleteFunc(s.recognizers, func(x *Recognizer) bool { return x == r })
	s.logger.Debug("[gesture] recognizer disposed", "gesture", r.gesture.String(), "live", len(s.recognizers))
}

// Recognizer watches its scope for one gesture.
type Recognizer struct {
	scope    *Scope
	gesture  Gesture
	handlers map[int]func()
	order    []int
	nextID   int
	disposed bool
}

// Gesture returns the bound gesture.
func (r *Recognizer) Gesture() Gesture { return r.gesture }

// OnRecognized subscribes fn and returns a handle that unsubscribes it.
// Subscribing to a disposed recognizer is a no-op.
func (r *Recognizer) OnRecognized(fn func()) func() {
	if r.disposed || fn == nil {
		return func() {}
	}
	id := r.nextID
	r.nextID++
	r.handlers[id] = fn
	r.order = append(r.order, id)
	return func() {
		if _, ok := r.handlers[id]; !ok {
			return
		}
		delete(r.handlers, id)
		r.order = slices.DeleteFunc(r.order, func(x int) bool { return x == id })
	}
}

// Subscribers returns the number of live handlers.
func (r *Recognizer) Subscribers() int { return len(r.handlers) }

// Disposed reports whether Dispose has run.
func (r *Recognizer) Disposed() bool { return r.disposed }

// Dispose unregisters the recognizer from its scope and drops its handlers.
func (r *Recognizer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.handlers = map[int]func(){}
	r.order = nil
	r.scope.remove(r)
}

func (r *Recognizer) raise() {
	for _, id := range slices.Clone(r.order) {
		if r.disposed {
			return
		}
		if fn, ok := r.handlers[id]; ok {
			fn()
		}
	}
}
