// Package ui is the terminal collaborator of the state store: it renders
// snapshots and turns user actions into dispatched intents. All field
// validation happens here, before an intent is ever constructed; the state
// model accepts whatever it is given.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rlagrimas/ecopoint/internal/config"
	"github.com/rlagrimas/ecopoint/internal/store"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *store.Store
	Config     config.Config
	ConfigPath string // where theme changes are persisted
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil // normal shutdown via signal
	}
	return err
}
