package gesture

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether every bit of m2 is set in m.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

// Gesture is a parsed key combination.
// Construct only via Parse so the terminal key form is always consistent with
// the modifiers and key.
type Gesture struct {
	mods       Modifier
	key        string
	normalized string
	terminal   string
}

// Modifiers returns the modifier bitmask.
func (g Gesture) Modifiers() Modifier { return g.mods }

// Key returns the canonical key name without modifiers, e.g. "S" or "PgDown".
func (g Gesture) Key() string { return g.key }

// String returns the canonical display form, e.g. "Ctrl+Alt+S".
func (g Gesture) String() string { return g.normalized }

// Terminal returns the key string a bubbletea KeyMsg reports for this
// gesture, e.g. "alt+ctrl+s".
func (g Gesture) Terminal() string { return g.terminal }

// Binding wraps the gesture in a bubbles key binding whose help shows the
// display form.
func (g Gesture) Binding() key.Binding {
	return key.NewBinding(key.WithKeys(g.terminal), key.WithHelp(g.normalized, ""))
}

// Matches reports whether msg is this gesture.
func (g Gesture) Matches(msg tea.KeyMsg) bool {
	if g.terminal == "" {
		return false
	}
	return key.Matches(msg, g.Binding())
}

// Equal reports whether two gestures describe the same key combination.
func (g Gesture) Equal(other Gesture) bool {
	return g.terminal == other.terminal
}

// Parse parses shortcut text such as "Ctrl+S", "Alt+Shift+F" or "F5".
// Empty (or all-space) text parses to a nil gesture and no error.
// Text outside the grammar returns a *MalformedShortcutError.
func Parse(text string) (*Gesture, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, nil
	}

	modTokens, keyToken, ok := splitTokens(raw)
	if !ok {
		return nil, malformed(text, "missing key after modifier", "")
	}

	var mods Modifier
	for _, token := range modTokens {
		name := strings.ToUpper(strings.TrimSpace(token))
		mod, known := modifierByName[name]
		if !known {
			if name == "" {
				return nil, malformed(text, "empty modifier", "")
			}
			return nil, malformed(text, "unknown modifier "+quote(token), suggest(name, modifierNames()))
		}
		mods |= mod
	}

	k, err := resolveKey(text, keyToken, mods)
	if err != nil {
		return nil, err
	}

	return &Gesture{
		mods:       mods,
		key:        k.display,
		normalized: normalizedForm(mods, k.display),
		terminal:   k.terminal,
	}, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(text string) *Gesture {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// splitTokens splits raw on '+' into modifier tokens and the final key token.
// A trailing "++" means the key itself is '+'.
func splitTokens(raw string) ([]string, string, bool) {
	if raw == "+" {
		return nil, "+", true
	}
	if strings.HasSuffix(raw, "++") {
		head := strings.TrimSuffix(raw, "++")
		if strings.TrimSpace(head) == "" {
			return nil, "", false
		}
		return strings.Split(head, "+"), "+", true
	}
	parts := strings.Split(raw, "+")
	keyToken := strings.TrimSpace(parts[len(parts)-1])
	if keyToken == "" {
		return nil, "", false
	}
	return parts[:len(parts)-1], keyToken, true
}

func normalizedForm(mods Modifier, keyName string) string {
	parts := make([]string, 0, 4)
	if mods.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if mods.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if mods.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, keyName), "+")
}

func quote(s string) string {
	return "\"" + s + "\""
}
