// Package storage persists the application state as a single JSON blob in
// one file and reports replacements of that file made by other processes.
// It is the only component that touches the disk.
package storage

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const defaultWatchInterval = 2 * time.Second

// File is a blob adapter over a fixed file path. Saves replace the whole
// file atomically, so concurrent readers never observe a partial write.
type File struct {
	path string
	log  zerolog.Logger

	mu        sync.Mutex
	lastWrite [sha256.Size]byte
	hasWrite  bool
}

// NewFile creates an adapter for the blob at path. The file need not exist.
func NewFile(path string, log zerolog.Logger) *File {
	return &File{path: path, log: log}
}

// Path returns the file the adapter reads and writes.
func (f *File) Path() string {
	return f.path
}

// Load returns the stored blob, or false when nothing readable is stored.
// Read errors other than absence are logged and reported as absence, so
// callers degrade to defaults instead of failing.
func (f *File) Load() ([]byte, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warn().Err(err).Str("path", f.path).Msg("state read failed")
		}
		return nil, false
	}
	return data, true
}

// Save replaces the stored blob. The data is written to a temporary file in
// the same directory and renamed into place, so the replacement is atomic.
// Failures are returned to the caller rather than swallowed here.
func (f *File) Save(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}

	// Record the write before the rename lands so the watcher cannot see the
	// new content ahead of the suppression mark.
	f.mu.Lock()
	f.lastWrite = sha256.Sum256(data)
	f.hasWrite = true
	f.mu.Unlock()

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		// The write never landed; an external write with identical content
		// must not be mistaken for our own.
		f.mu.Lock()
		f.hasWrite = false
		f.mu.Unlock()
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// ownWrite reports whether data matches the last blob this adapter wrote.
// Filesystem events do not distinguish writers, so self-originated changes
// are filtered by content, the same exclusion the subscription contract
// requires.
func (f *File) ownWrite(data []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasWrite && f.lastWrite == sha256.Sum256(data)
}

// Watch blocks until ctx is cancelled, invoking onChange with the new blob
// whenever another process replaces the stored state. Change detection uses
// fsnotify on the parent directory; when the watcher cannot be established
// the adapter falls back to polling alone. Polling at interval also runs
// alongside fsnotify as a catch-all for missed events.
func (f *File) Watch(ctx context.Context, interval time.Duration, onChange func([]byte)) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	var lastSeen [sha256.Size]byte
	var seen bool
	if data, ok := f.Load(); ok {
		lastSeen = sha256.Sum256(data)
		seen = true
	}

	check := func() {
		data, ok := f.Load()
		if !ok {
			return
		}
		sum := sha256.Sum256(data)
		if seen && sum == lastSeen {
			return
		}
		lastSeen = sum
		seen = true
		if f.ownWrite(data) {
			return
		}
		onChange(data)
	}

	var events chan fsnotify.Event
	var errs chan error
	if watcher, err := fsnotify.NewWatcher(); err != nil {
		f.log.Warn().Err(err).Msg("fsnotify unavailable, relying on polling")
	} else {
		defer watcher.Close()
		dir := filepath.Dir(f.path)
		if err := os.MkdirAll(dir, 0o755); err == nil {
			err = watcher.Add(dir)
		}
		if err != nil {
			f.log.Warn().Err(err).Str("dir", dir).Msg("cannot watch data dir, relying on polling")
		} else {
			events = watcher.Events
			errs = watcher.Errors
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Name != f.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			check()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			f.log.Warn().Err(err).Msg("watch error")
		case <-ticker.C:
			check()
		}
	}
}
