package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to a host action within some scopes. An empty scope
// list or "*" matches every scope.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// Help returns the binding as a bubbles key binding for help rendering.
func (b KeyBinding) Help() key.Binding {
	if len(b.Keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	label := b.Keys[0]
	if label == " " {
		label = "space"
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(label, b.Description))
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// ActionFor returns the first action in scope bound to msg, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// Uses reports whether any binding in scope is bound to the key k.
func (r *KeyRegistry) Uses(k, scope string) bool {
	k = normalizeKey(k)
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		if slices.ContainsFunc(b.Keys, func(bk string) bool { return normalizeKey(bk) == k }) {
			return true
		}
	}
	return false
}

// normalizeKey lowercases named keys. Single runes keep their case so that
// "S" (shift+s) and "s" stay distinct, and a lone space is kept.
func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	k = strings.TrimSpace(k)
	if len([]rune(k)) == 1 {
		return k
	}
	return strings.ToLower(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
