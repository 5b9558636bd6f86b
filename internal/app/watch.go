package app

import (
	"context"
	"time"

	"github.com/rlagrimas/ecopoint/internal/storage"
	"github.com/rlagrimas/ecopoint/internal/store"
)

// StartWatcher launches a background goroutine that adopts state written by
// other ecopoint processes sharing the same data file. It returns
// immediately; the goroutine exits when ctx is cancelled.
func StartWatcher(ctx context.Context, st *store.Store, adapter *storage.File, interval time.Duration) {
	go adapter.Watch(ctx, interval, st.AdoptExternal)
}
