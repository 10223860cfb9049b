package gesture

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var modifierByName = map[string]Modifier{
	"CTRL":    ModCtrl,
	"CONTROL": ModCtrl,
	"ALT":     ModAlt,
	"OPTION":  ModAlt,
	"META":    ModAlt,
	"SHIFT":   ModShift,
}

// namedKey maps the Ctrl/Shift combinations a terminal can report for a key
// to the bubbletea key string. Alt is orthogonal and handled separately.
type namedKey struct {
	display  string
	variants map[Modifier]string
}

var namedKeys = buildNamedKeys()

func buildNamedKeys() map[string]namedKey {
	plain := func(display, term string) namedKey {
		return namedKey{display: display, variants: map[Modifier]string{0: term}}
	}
	// home/end and the arrows report every Ctrl/Shift combination.
	full := func(display, term string) namedKey {
		return namedKey{display: display, variants: map[Modifier]string{
			0:                  term,
			ModCtrl:            "ctrl+" + term,
			ModShift:           "shift+" + term,
			ModCtrl | ModShift: "ctrl+shift+" + term,
		}}
	}
	page := func(display, term string) namedKey {
		return namedKey{display: display, variants: map[Modifier]string{
			0:       term,
			ModCtrl: "ctrl+" + term,
		}}
	}

	keys := map[string]namedKey{
		"ENTER":  plain("Enter", "enter"),
		"RETURN": plain("Enter", "enter"),
		"ESC":    plain("Esc", "esc"),
		"ESCAPE": plain("Esc", "esc"),
		"TAB": {display: "Tab", variants: map[Modifier]string{
			0:        "tab",
			ModShift: "shift+tab",
		}},
		"SPACE": {display: "Space", variants: map[Modifier]string{
			0:       " ",
			ModCtrl: "ctrl+@",
		}},
		"BACKSPACE": {display: "Backspace", variants: map[Modifier]string{
			0:       "backspace",
			ModCtrl: "ctrl+h",
		}},
		"DELETE":   plain("Delete", "delete"),
		"DEL":      plain("Delete", "delete"),
		"INSERT":   plain("Insert", "insert"),
		"INS":      plain("Insert", "insert"),
		"HOME":     full("Home", "home"),
		"END":      full("End", "end"),
		"UP":       full("Up", "up"),
		"DOWN":     full("Down", "down"),
		"LEFT":     full("Left", "left"),
		"RIGHT":    full("Right", "right"),
		"PGUP":     page("PgUp", "pgup"),
		"PAGEUP":   page("PgUp", "pgup"),
		"PGDOWN":   page("PgDown", "pgdown"),
		"PAGEDOWN": page("PgDown", "pgdown"),
		"PGDN":     page("PgDown", "pgdown"),
	}
	for i := 1; i <= 20; i++ {
		n := strconv.Itoa(i)
		keys["F"+n] = plain("F"+n, "f"+n)
	}
	return keys
}

// ctrlPunct lists the punctuation keys that have a Ctrl form in a terminal.
var ctrlPunct = map[rune]string{
	'@':  "ctrl+@",
	'\\': "ctrl+\\",
	']':  "ctrl+]",
	'^':  "ctrl+^",
	'_':  "ctrl+_",
	'[':  "esc",
}

type resolvedKey struct {
	display  string
	terminal string
}

func resolveKey(text, token string, mods Modifier) (resolvedKey, error) {
	upper := strings.ToUpper(token)
	base := mods &^ ModAlt

	if nk, ok := namedKeys[upper]; ok {
		term, ok := nk.variants[base]
		if !ok {
			return resolvedKey{}, malformed(text, nk.display+" cannot be combined with "+describeMods(base), "")
		}
		return withAlt(mods, nk.display, term), nil
	}

	runes := []rune(token)
	if len(runes) != 1 {
		return resolvedKey{}, malformed(text, "unknown key "+quote(token), suggest(upper, namedKeyNames()))
	}
	return resolveRune(text, runes[0], mods)
}

func resolveRune(text string, c rune, mods Modifier) (resolvedKey, error) {
	base := mods &^ ModAlt

	if isASCIILetter(c) {
		lower := unicode.ToLower(c)
		display := string(unicode.ToUpper(c))
		switch base {
		case 0:
			return withAlt(mods, display, string(lower)), nil
		case ModShift:
			return withAlt(mods, display, string(unicode.ToUpper(c))), nil
		case ModCtrl:
			return withAlt(mods, display, ctrlLetter(lower)), nil
		default:
			return resolvedKey{}, malformed(text, "Ctrl+Shift+"+display+" is indistinguishable from Ctrl+"+display+" in a terminal", "")
		}
	}

	if !unicode.IsPrint(c) || unicode.IsSpace(c) {
		return resolvedKey{}, malformed(text, "key "+strconv.QuoteRune(c)+" is not printable", "")
	}

	display := string(c)
	switch base {
	case 0:
		return withAlt(mods, display, display), nil
	case ModCtrl:
		if term, ok := ctrlPunct[c]; ok {
			return withAlt(mods, display, term), nil
		}
		return resolvedKey{}, malformed(text, "Ctrl cannot be combined with "+quote(display), "")
	default:
		return resolvedKey{}, malformed(text, describeMods(base)+" cannot be combined with "+quote(display)+"; write the shifted character instead", "")
	}
}

// ctrlLetter returns the terminal key string for Ctrl+letter. Ctrl+I and
// Ctrl+M share their control codes with Tab and Enter.
func ctrlLetter(lower rune) string {
	switch lower {
	case 'i':
		return "tab"
	case 'm':
		return "enter"
	}
	return "ctrl+" + string(lower)
}

func withAlt(mods Modifier, display, term string) resolvedKey {
	if mods.Has(ModAlt) {
		term = "alt+" + term
	}
	return resolvedKey{display: display, terminal: term}
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func describeMods(m Modifier) string {
	if m == 0 {
		return "no modifier"
	}
	return strings.TrimSuffix(normalizedForm(m, ""), "+")
}

func modifierNames() []string {
	out := make([]string, 0, len(modifierByName))
	for name := range modifierByName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func namedKeyNames() []string {
	out := make([]string, 0, len(namedKeys))
	for name := range namedKeys {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
