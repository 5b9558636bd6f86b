package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/rlagrimas/ecopoint/internal/state"
)

// Adapter is the durable blob storage the store persists through.
type Adapter interface {
	// Load returns the stored blob, or false if nothing readable is stored.
	Load() ([]byte, bool)
	// Save replaces the stored blob. Failures are returned so the store can
	// decide on degraded-mode continuation.
	Save(data []byte) error
}

// Store owns the canonical AppState for the lifetime of the process. All
// mutation flows through Dispatch; collaborators hold only snapshots.
type Store struct {
	adapter Adapter
	log     zerolog.Logger

	// writeMu serializes whole transitions (apply, persist, notify) so an
	// adopted external write cannot interleave with a local dispatch and
	// leave disk holding a snapshot older than what collaborators see.
	writeMu sync.Mutex

	mu    sync.RWMutex
	state state.AppState

	subMu sync.Mutex
	subs  []chan struct{}
}

// New creates a store holding the default state. Call Load to pick up
// previously persisted data.
func New(adapter Adapter, log zerolog.Logger) *Store {
	return &Store{
		adapter: adapter,
		log:     log,
		state:   state.Default(),
	}
}

// Load replaces the state with whatever the adapter has stored. A missing or
// corrupt blob leaves the defaults in place; neither is fatal.
func (s *Store) Load() {
	raw, ok := s.adapter.Load()
	if !ok {
		s.log.Info().Msg("no stored state, starting from defaults")
		return
	}
	decoded, err := state.Decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored state unreadable, starting from defaults")
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.replace(decoded)
	s.notify()
}

// Dispatch applies in, persists the resulting state, and notifies
// subscribers. Persistence failures are logged and absorbed; the in-memory
// state keeps serving even when the disk does not.
func (s *Store) Dispatch(in state.Intent) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.state = state.Apply(s.state, in)
	snap := s.state.Clone()
	s.mu.Unlock()

	s.persist(snap)
	s.notify()
}

// AdoptExternal replaces the state with a blob written by another process.
// The whole aggregate is adopted as-is, last writer wins; a corrupt payload
// is logged and ignored, keeping the current in-memory state.
func (s *Store) AdoptExternal(raw []byte) {
	decoded, err := state.Decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("ignoring unreadable external state change")
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.replace(decoded)
	s.log.Debug().Int("locations", len(decoded.Locations)).Msg("adopted external state change")
	s.notify()
}

// Snapshot returns a read-only copy of the current state.
func (s *Store) Snapshot() state.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe returns a channel that receives a signal after every state
// change, whether from a local dispatch or an adopted external write.
// Signals are coalesced: a subscriber that has not drained its channel sees
// at least one pending signal, not one per change.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()
	return ch
}

func (s *Store) replace(next state.AppState) {
	s.mu.Lock()
	s.state = state.Apply(s.state, state.ReplaceAll{State: next})
	s.mu.Unlock()
}

func (s *Store) persist(snap state.AppState) {
	raw, err := state.Encode(snap)
	if err != nil {
		s.log.Error().Err(err).Msg("state encode failed, skipping persist")
		return
	}
	if err := s.adapter.Save(raw); err != nil {
		s.log.Warn().Err(err).Msg("state write failed, continuing in memory")
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
