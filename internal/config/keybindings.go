package config

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

type KeybindingsConfigFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeybindings reads per-action key overrides from path and merges them
// over defaults. A missing file is seeded with defaults; actions added since
// the file was written are appended to it.
func LoadKeybindings(path string, defaults map[string][]string) (map[string][]string, error) {
	defaults = normalizeActionKeyMap(defaults)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := ensureConfigFile(path, renderKeybindingsTOML(defaults)); err != nil {
		return nil, err
	}

	var keybindings KeybindingsConfigFile
	if _, err := toml.DecodeFile(path, &keybindings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	changed, err := validateAndMergeKeybindingsConfig(&keybindings, defaults)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	if changed {
		if err := os.WriteFile(path, []byte(renderKeybindingsTOML(keybindings.Bindings)), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return keybindings.Bindings, nil
}

func renderKeybindingsTOML(bindings map[string][]string) string {
	actions := slices.Sorted(maps.Keys(bindings))

	var b bytes.Buffer
	b.WriteString("version = 1\n\n[bindings]\n")
	for _, action := range actions {
		b.WriteString(action)
		b.WriteString(" = ")
		b.WriteString(formatTOMLArray(bindings[action]))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatTOMLArray(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%q", value))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func ensureConfigFile(path, defaults string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaults), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func validateAndMergeKeybindingsConfig(cfg *KeybindingsConfigFile, defaults map[string][]string) (bool, error) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return false, fmt.Errorf("unsupported version %d", cfg.Version)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = map[string][]string{}
	}

	merged := cloneActionMap(defaults)
	actions := slices.Sorted(maps.Keys(cfg.Bindings))
	for _, action := range actions {
		keys := cfg.Bindings[action]
		a := strings.TrimSpace(action)
		if !isValidActionID(a) {
			return false, fmt.Errorf("invalid action %q", action)
		}
		if _, exists := defaults[a]; !exists {
			return false, fmt.Errorf("unknown action %q", a)
		}
		if len(keys) == 0 {
			return false, fmt.Errorf("action %q: keys are required", a)
		}
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			k := normalizeBindingKey(key)
			if k == "" {
				return false, fmt.Errorf("action %q: key cannot be empty", a)
			}
			out = append(out, k)
		}
		merged[a] = out
	}

	changed := !equalActionMaps(cfg.Bindings, merged)
	cfg.Bindings = merged
	return changed, nil
}

// normalizeBindingKey lower-cases key names. A lone space is the space bar
// and single characters keep their case.
func normalizeBindingKey(key string) string {
	if key == " " {
		return key
	}
	k := strings.TrimSpace(key)
	if len([]rune(k)) == 1 {
		return k
	}
	return strings.ToLower(k)
}

func normalizeActionKeyMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for action, keys := range in {
		a := strings.TrimSpace(action)
		if !isValidActionID(a) {
			continue
		}
		normalizedKeys := make([]string, 0, len(keys))
		for _, key := range keys {
			if k := normalizeBindingKey(key); k != "" {
				normalizedKeys = append(normalizedKeys, k)
			}
		}
		if len(normalizedKeys) == 0 {
			continue
		}
		out[a] = normalizedKeys
	}
	return out
}

func cloneActionMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for action, keys := range in {
		out[action] = append([]string(nil), keys...)
	}
	return out
}

func equalActionMaps(a, b map[string][]string) bool {
	return maps.EqualFunc(a, b, func(x, y []string) bool { return slices.Equal(x, y) })
}

func isValidActionID(action string) bool {
	if action == "" {
		return false
	}
	for i, ch := range action {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			continue
		}
		if ch == '-' && i > 0 && i < len(action)-1 {
			continue
		}
		return false
	}
	return true
}
