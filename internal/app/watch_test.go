package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rlagrimas/ecopoint/internal/state"
	"github.com/rlagrimas/ecopoint/internal/storage"
	"github.com/rlagrimas/ecopoint/internal/store"
)

// Two adapters on the same file stand in for two ecopoint processes sharing
// one data directory.
func TestStartWatcher_AdoptsForeignWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	local := storage.NewFile(path, zerolog.Nop())
	st := store.New(local, zerolog.Nop())
	st.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartWatcher(ctx, st, local, 50*time.Millisecond)

	time.Sleep(100 * time.Millisecond)

	foreign := storage.NewFile(path, zerolog.Nop())
	blob, err := state.Encode(state.AppState{Announcements: "Collection drive this weekend"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := foreign.Save(blob); err != nil {
		t.Fatalf("Save: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if st.Snapshot().Announcements == "Collection drive this weekend" {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("foreign write never adopted; announcements = %q", st.Snapshot().Announcements)
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestStartWatcher_IgnoresOwnWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	local := storage.NewFile(path, zerolog.Nop())
	st := store.New(local, zerolog.Nop())
	st.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartWatcher(ctx, st, local, 50*time.Millisecond)

	time.Sleep(100 * time.Millisecond)

	// A local dispatch writes the file; the watcher must not re-adopt it.
	ch := st.Subscribe()
	st.Dispatch(state.SetAnnouncements{Text: "local change"})
	<-ch

	select {
	case <-ch:
		t.Fatal("watcher re-delivered our own write")
	case <-time.After(500 * time.Millisecond):
	}

	if got := st.Snapshot().Announcements; got != "local change" {
		t.Fatalf("Announcements = %q", got)
	}
}
