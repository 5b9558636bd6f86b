// Package config handles ecopoint configuration.
// Settings are stored in ~/.config/ecopoint/config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings.
type Config struct {
	DataPath      string        // state blob location
	LogPath       string        // log file location
	WatchInterval time.Duration // polling fallback cadence for the watcher
	Theme         string
	AdminPass     string // placeholder admin gate, not an auth mechanism
}

const (
	defaultConfigPath   = "~/.config/ecopoint/config.toml"
	defaultDataPath     = "~/.local/share/ecopoint/state.json"
	defaultLogPath      = "~/.local/share/ecopoint/ecopoint.log"
	defaultWatchSeconds = 2
	defaultTheme        = "Bayanihan"
	defaultAdminPass    = "admin"
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path, falling back to defaults when the file is
// missing or unreadable. A broken config never stops the application.
func Load(path string) (Config, error) {
	cfg := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg, nil // Graceful degradation
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return cfg, nil // Graceful degradation
	}

	var raw struct {
		DataPath     string `toml:"data_path"`
		LogPath      string `toml:"log_path"`
		WatchSeconds int    `toml:"watch_interval_seconds"`
		Theme        string `toml:"theme"`
		AdminPass    string `toml:"admin_pass"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return defaults(), nil // Graceful degradation
	}

	if v := strings.TrimSpace(raw.DataPath); v != "" {
		cfg.DataPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if raw.WatchSeconds > 0 {
		cfg.WatchInterval = time.Duration(raw.WatchSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if raw.AdminPass != "" {
		cfg.AdminPass = raw.AdminPass
	}

	return cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	raw := struct {
		DataPath     string `toml:"data_path"`
		LogPath      string `toml:"log_path"`
		WatchSeconds int    `toml:"watch_interval_seconds"`
		Theme        string `toml:"theme"`
		AdminPass    string `toml:"admin_pass"`
	}{
		DataPath:     cfg.DataPath,
		LogPath:      cfg.LogPath,
		WatchSeconds: int(cfg.WatchInterval / time.Second),
		Theme:        cfg.Theme,
		AdminPass:    cfg.AdminPass,
	}

	bytes, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func defaults() Config {
	return Config{
		DataPath:      mustExpand(defaultDataPath),
		LogPath:       mustExpand(defaultLogPath),
		WatchInterval: defaultWatchSeconds * time.Second,
		Theme:         defaultTheme,
		AdminPass:     defaultAdminPass,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
