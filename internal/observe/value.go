// Package observe provides a value holder with explicit change hooks.
package observe

import "slices"

// Value holds a T and notifies hooks when Set changes it.
type Value[T any] struct {
	v      T
	equal  func(a, b T) bool
	hooks  map[int]func(old, new T)
	order  []int
	nextID int
}

// NewValue returns a Value holding initial. equal decides whether a Set is a
// change; a nil equal treats every Set as a change.
func NewValue[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{v: initial, equal: equal, hooks: map[int]func(old, new T){}}
}

func (v *Value[T]) Get() T { return v.v }

// Set stores x and runs the hooks in registration order if it changed. It
// reports whether the value changed.
func (v *Value[T]) Set(x T) bool {
	if v.equal != nil && v.equal(v.v, x) {
		return false
	}
	old := v.v
	v.v = x
	for _, id := range slices.Clone(v.order) {
		if fn, ok := v.hooks[id]; ok {
			fn(old, x)
		}
	}
	return true
}

// OnChange registers fn and returns a handle that removes it.
func (v *Value[T]) OnChange(fn func(old, new T)) (cancel func()) {
	id := v.nextID
	v.nextID++
	v.hooks[id] = fn
	v.order = append(v.order, id)
	return func() {
		if _, ok := v.hooks[id]; !ok {
			return
		}
		delete(v.hooks, id)
		v.order = slices.DeleteFunc(v.order, func(x int) bool { return x == id })
	}
}

// Hooks returns the number of registered hooks.
func (v *Value[T]) Hooks() int { return len(v.hooks) }
