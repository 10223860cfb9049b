package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/toolstrip/core"
	"github.com/jask/toolstrip/internal/config"
	"github.com/jask/toolstrip/internal/toolbar"
	"github.com/jask/toolstrip/screens"
)

func main() {
	if err := run(context.Background(), tea.WithAltScreen()); err != nil {
		log.Fatalf("toolstrip: %v", err)
	}
}

// run wires config, logging and the toolbar into a program and blocks until
// it exits. Deferred teardown runs before main reports the error.
func run(ctx context.Context, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	bindings := core.DefaultKeyBindings()
	overrides, err := config.LoadKeybindings(cfg.Toolbar.Keybindings, core.DefaultKeybindingsByAction(bindings))
	if err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}

	specs, err := config.LoadToolbar(cfg.Toolbar.Path)
	if err != nil {
		return fmt.Errorf("toolbar: %w", err)
	}

	m := core.NewModel(core.Options{
		Title:              cfg.UI.Title,
		Keys:               core.NewKeyRegistry(core.ApplyActionKeybindings(bindings, overrides)),
		TransitionFrames:   cfg.UI.TransitionFrames,
		TransitionInterval: cfg.UI.TransitionInterval,
		JournalSize:        cfg.UI.JournalSize,
		Logger:             logger,
	})
	defer m.Close()

	if err := m.SetToolbar(specs); err != nil {
		logger.Warn("[main] toolbar loaded with errors", "path", cfg.Toolbar.Path, "error", err)
		m.SetError(err)
	}
	m.Reload = func() tea.Cmd {
		return func() tea.Msg { return reloadToolbar(cfg.Toolbar.Path) }
	}
	m.OpenDropDown = func(m *core.Model) core.Screen { return screens.NewDropDownScreen(m) }
	m.OpenCommandModal = func(m *core.Model, scope string) core.Screen { return screens.NewCommandScreen(m, scope) }

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	if cfg.Toolbar.Watch {
		err := config.WatchToolbar(ctx, cfg.Toolbar.Path, func(specs []toolbar.Spec, err error) {
			p.Send(core.ToolbarReloadedMsg{Path: cfg.Toolbar.Path, Specs: specs, Err: err})
		})
		if err != nil {
			logger.Warn("[main] toolbar watch disabled", "error", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func reloadToolbar(path string) core.ToolbarReloadedMsg {
	specs, err := config.LoadToolbar(path)
	return core.ToolbarReloadedMsg{Path: path, Specs: specs, Err: err}
}

// openLogger sends logs to the configured file; the terminal belongs to the UI.
func openLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("log.level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
