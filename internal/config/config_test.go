package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TOOLSTRIP_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "toolstrip", "toolbar.toml"), cfg.Toolbar.Path)
	require.True(t, cfg.Toolbar.Watch)
	require.Equal(t, "toolstrip", cfg.UI.Title)
	require.Equal(t, 6, cfg.UI.TransitionFrames)
	require.Equal(t, 40*time.Millisecond, cfg.UI.TransitionInterval)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "custom.toml")
	t.Setenv("TOOLSTRIP_CONFIG", path)
	t.Setenv("TOOLSTRIP_LOG_LEVEL", "debug")

	raw := "[toolbar]\npath = \"/tmp/bar.toml\"\nwatch = false\n\n[ui]\ntitle = \"Editor\"\ntransition_frames = 0\ntransition_interval = \"10ms\"\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/bar.toml", cfg.Toolbar.Path)
	require.False(t, cfg.Toolbar.Watch)
	require.Equal(t, "Editor", cfg.UI.Title)
	require.Zero(t, cfg.UI.TransitionFrames)
	require.Equal(t, 10*time.Millisecond, cfg.UI.TransitionInterval)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsNegativeFrames(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	t.Setenv("TOOLSTRIP_CONFIG", path)
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntransition_frames = -1\n"), 0o644))

	_, err := Load()
	require.ErrorContains(t, err, "transition_frames")
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TOOLSTRIP_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.Title = "Saved"
	cfg.UI.TransitionInterval = 75 * time.Millisecond
	require.NoError(t, Save(cfg))
	require.FileExists(t, filepath.Join(home, ".config", "toolstrip", "config.toml"))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}
