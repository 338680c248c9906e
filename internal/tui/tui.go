package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/astrostay/internal/catalog"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for model.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(model AppModel, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(model, allOpts...)
}

// ForwardReloads relays catalog reloads into the program until reloads is
// closed. Run it in its own goroutine.
func ForwardReloads(p *Program, reloads <-chan catalog.Reload) {
	for r := range reloads {
		p.Send(MsgCatalogReload{Catalog: r.Catalog, Err: r.Err})
	}
}

// Run creates and runs a TUI program, blocking until it exits. When reloads
// is non-nil, catalog changes are forwarded to the running model.
func Run(model AppModel, reloads <-chan catalog.Reload, opts ...tea.ProgramOption) error {
	p := NewProgram(model, opts...)
	if reloads != nil {
		go ForwardReloads(p, reloads)
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to w.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
