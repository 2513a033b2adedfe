package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UI.VimMode || cfg.UI.Placement != "overlay" || cfg.UI.MaxVisible != 8 {
		t.Errorf("expected defaults, got %+v", cfg.UI)
	}
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `ui:
  vim_mode: false
  placement: inline
  max_visible: 4
theme:
  highlight: "#FF00FF"
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.VimMode {
		t.Error("vim_mode should be false")
	}
	if cfg.UI.Placement != "inline" || cfg.UI.MaxVisible != 4 {
		t.Errorf("unexpected ui config %+v", cfg.UI)
	}
	if cfg.UI.Width != 36 {
		t.Errorf("unset width should keep default, got %d", cfg.UI.Width)
	}
	if cfg.Theme.Highlight != "#FF00FF" {
		t.Errorf("expected highlight override, got %q", cfg.Theme.Highlight)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ui: [not, a, map"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	placement := filepath.Join(dir, "placement.yaml")
	if err := os.WriteFile(placement, []byte("ui:\n  placement: sideways\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(placement); err == nil || !strings.Contains(err.Error(), "ui.placement") {
		t.Errorf("expected placement error, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.UI.NotifyOnSelect = true
	cfg.Log.Debug = true
	if err := Save(cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600, got %v", info.Mode().Perm())
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.UI.NotifyOnSelect || !loaded.Log.Debug {
		t.Errorf("round trip lost settings: %+v", loaded)
	}

	logPath, err := loaded.LogPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(logPath) != filepath.Dir(path) {
		t.Errorf("expected log next to config, got %s", logPath)
	}
}
