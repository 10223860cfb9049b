package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestRunReportsProgramFailure(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TOOLSTRIP_CONFIG", filepath.Join(home, "missing.toml"))
	t.Setenv("TOOLSTRIP_TOOLBAR_WATCH", "false")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, tea.WithInput(nil), tea.WithOutput(io.Discard))
	require.ErrorIs(t, err, tea.ErrProgramKilled)
	require.FileExists(t, filepath.Join(home, ".config", "toolstrip", "toolbar.toml"))
}

func TestRunReportsConfigErrors(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TOOLSTRIP_CONFIG", "")
	t.Setenv("TOOLSTRIP_LOG_LEVEL", "loud")

	err := run(context.Background(), tea.WithInput(nil), tea.WithOutput(io.Discard))
	require.ErrorContains(t, err, "log.level")
}
