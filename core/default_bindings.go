package core

import "strings"

// Key scopes.
const (
	ScopeBar      = "bar"
	ScopeDropDown = "screen:drop-down"
	ScopeCommand  = "screen:command"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"tab", "right"}, Action: "focus-next", Description: "next", Scopes: []string{ScopeBar}},
		{Keys: []string{"shift+tab", "left"}, Action: "focus-prev", Description: "prev", Scopes: []string{ScopeBar}},
		{Keys: []string{"enter", " "}, Action: "invoke", Description: "press", Scopes: []string{ScopeBar}},
		{Keys: []string{"o"}, Action: "toggle-placement", Description: "move to/from menu", Scopes: []string{ScopeBar}},
		{Keys: []string{"m"}, Action: "open-drop-down", Description: "more", Scopes: []string{ScopeBar}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{ScopeBar}},
		{Keys: []string{"ctrl+r"}, Action: "reload-toolbar", Description: "reload", Scopes: []string{ScopeBar}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeBar}},
		{Keys: []string{"up", "k"}, Action: "menu-up", Description: "up", Scopes: []string{ScopeDropDown}},
		{Keys: []string{"down", "j"}, Action: "menu-down", Description: "down", Scopes: []string{ScopeDropDown}},
		{Keys: []string{"up", "ctrl+p"}, Action: "palette-up", Description: "up", Scopes: []string{ScopeCommand}},
		{Keys: []string{"down", "ctrl+n"}, Action: "palette-down", Description: "down", Scopes: []string{ScopeCommand}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeDropDown, ScopeCommand}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeDropDown, ScopeCommand}},
	}
}

// DefaultKeybindingsByAction returns the first key list of every action.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override. Scopes and descriptions are kept.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
