package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/jask/toolstrip/internal/toolbar"
)

const defaultToolbarTOML = `version = 1

# Buttons appear in file order. overflow = true starts a button in the
# drop-down. Buttons whose id names a host command run it.

[[button]]
id = "save"
label = "Save"
icon = "▣"
shortcut = "Ctrl+S"

[[button]]
id = "open"
label = "Open"
icon = "▤"
shortcut = "Ctrl+O"

[[button]]
id = "find"
label = "Find"
icon = "⌕"
shortcut = "Ctrl+F"

[[button]]
id = "clear-journal"
label = "Clear log"
shortcut = "Ctrl+L"

[[button]]
id = "print"
label = "Print"
shortcut = "F2"
overflow = true

[[button]]
id = "export"
label = "Export"
overflow = true

[[button]]
id = "reload-toolbar"
label = "Reload"
shortcut = "F5"
overflow = true
`

// ButtonConfig is one [[button]] table.
type ButtonConfig struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Icon     string `toml:"icon"`
	Shortcut string `toml:"shortcut"`
	Overflow bool   `toml:"overflow"`
	TabStop  *bool  `toml:"tab_stop"`
}

type ToolbarConfigFile struct {
	Version int            `toml:"version"`
	Button  []ButtonConfig `toml:"button"`
}

// LoadToolbar reads the toolbar definition at path, writing the default one
// first if the file does not exist. Shortcut text is passed through as
// written; buttons reject malformed shortcuts themselves.
func LoadToolbar(path string) ([]toolbar.Spec, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := ensureConfigFile(path, defaultToolbarTOML); err != nil {
		return nil, err
	}

	var file ToolbarConfigFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("validate %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := validateToolbarConfig(&file); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return file.Specs(), nil
}

// Specs converts the validated file into bar specs.
func (f ToolbarConfigFile) Specs() []toolbar.Spec {
	specs := make([]toolbar.Spec, 0, len(f.Button))
	for _, b := range f.Button {
		specs = append(specs, toolbar.Spec{
			ID:         b.ID,
			Label:      b.Label,
			Icon:       toolbar.Icon(b.Icon),
			Shortcut:   b.Shortcut,
			InDropDown: b.Overflow,
			TabStop:    b.TabStop,
		})
	}
	return specs
}

func validateToolbarConfig(cfg *ToolbarConfigFile) error {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version %d", cfg.Version)
	}
	seen := make(map[string]int, len(cfg.Button))
	for i := range cfg.Button {
		b := &cfg.Button[i]
		b.ID = strings.TrimSpace(b.ID)
		b.Label = strings.TrimSpace(b.Label)
		b.Icon = strings.TrimSpace(b.Icon)
		b.Shortcut = strings.TrimSpace(b.Shortcut)
		if b.ID == "" {
			if b.Label == "" {
				return fmt.Errorf("button %d: id or label is required", i+1)
			}
			b.ID = generatedButtonID(b.Label)
		}
		if !isValidActionID(b.ID) {
			return fmt.Errorf("button %d: invalid id %q", i+1, b.ID)
		}
		if prev, dup := seen[b.ID]; dup {
			return fmt.Errorf("button %d: id %q already used by button %d", i+1, b.ID, prev)
		}
		seen[b.ID] = i + 1
		if b.Label == "" && b.Icon == "" {
			b.Label = b.ID
		}
	}
	return nil
}

// generatedButtonID derives a stable id from a label so reloads keep
// matching the same button.
func generatedButtonID(label string) string {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("button:"+strings.ToLower(label))).String()
	return "button-" + id[:8]
}
