package gesture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrMalformedShortcut matches every *MalformedShortcutError via errors.Is.
var ErrMalformedShortcut = errors.New("malformed shortcut")

// MalformedShortcutError reports shortcut text that does not parse as a gesture.
type MalformedShortcutError struct {
	Text       string
	Reason     string
	Suggestion string
}

func (e *MalformedShortcutError) Error() string {
	msg := fmt.Sprintf("malformed shortcut %q: %s", e.Text, e.Reason)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Suggestion)
	}
	return msg
}

func (e *MalformedShortcutError) Is(target error) bool {
	return target == ErrMalformedShortcut
}

func malformed(text, reason, suggestion string) *MalformedShortcutError {
	return &MalformedShortcutError{Text: text, Reason: reason, Suggestion: suggestion}
}

// suggest returns the candidate closest to name, or "" when nothing is within
// an edit distance of 2.
func suggest(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return displayName(best)
}

func displayName(upper string) string {
	if nk, ok := namedKeys[upper]; ok {
		return nk.display
	}
	if mod, ok := modifierByName[upper]; ok {
		return describeMods(mod)
	}
	return strings.ToLower(upper)
}
