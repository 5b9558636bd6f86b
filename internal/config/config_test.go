package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.WatchInterval != defaultWatchSeconds*time.Second {
		t.Fatalf("WatchInterval = %v", cfg.WatchInterval)
	}
	if cfg.DataPath != filepath.Join(home, ".local", "share", "ecopoint", "state.json") {
		t.Fatalf("DataPath = %q", cfg.DataPath)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "ecopoint")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := "data_path = \"~/ewaste/state.json\"\nwatch_interval_seconds = 7\ntheme = \"Slate\"\nadmin_pass = \"hunter2\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataPath != filepath.Join(home, "ewaste", "state.json") {
		t.Fatalf("DataPath = %q", cfg.DataPath)
	}
	if cfg.WatchInterval != 7*time.Second {
		t.Fatalf("WatchInterval = %v, want 7s", cfg.WatchInterval)
	}
	if cfg.Theme != "Slate" || cfg.AdminPass != "hunter2" {
		t.Fatalf("cfg = %#v", cfg)
	}
}

func TestLoad_MalformedFileDegradesToDefaults(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "broken.toml")
	if err := os.WriteFile(path, []byte("theme = [not toml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme || cfg.AdminPass != defaultAdminPass {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	want := Config{
		DataPath:      filepath.Join(tmp, "state.json"),
		LogPath:       filepath.Join(tmp, "ecopoint.log"),
		WatchInterval: 5 * time.Second,
		Theme:         "Slate",
		AdminPass:     "hunter2",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip:\n got %#v\nwant %#v", got, want)
	}
}
