// Package app wires configuration, storage, the state store, and the UI
// together for one ecopoint process.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rlagrimas/ecopoint/internal/config"
	"github.com/rlagrimas/ecopoint/internal/storage"
	"github.com/rlagrimas/ecopoint/internal/store"
	"github.com/rlagrimas/ecopoint/internal/ui"
)

// Options configure the ecopoint application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/ecopoint/config.toml
	DataPath   string // overrides the configured state file location
}

// Run boots the ecopoint TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}

	logger, closeLog := newLogger(cfg.LogPath)
	defer closeLog()
	logger.Info().Str("data_path", cfg.DataPath).Msg("starting ecopoint")

	adapter := storage.NewFile(cfg.DataPath, logger.With().Str("component", "storage").Logger())
	st := store.New(adapter, logger.With().Str("component", "store").Logger())
	st.Load()

	StartWatcher(ctx, st, adapter, cfg.WatchInterval)

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      st,
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
	})
}

// newLogger opens the log file and builds the root logger. The TUI owns the
// terminal, so logs always go to a file; if the file cannot be opened the
// logger is a no-op and the application runs without logging.
func newLogger(path string) (zerolog.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	logger := zerolog.New(file).With().Timestamp().Logger()
	return logger, func() { _ = file.Close() }
}
