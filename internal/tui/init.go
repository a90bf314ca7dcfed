package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/placemap/internal/config"
	"github.com/studiowebux/placemap/internal/history"
	"github.com/studiowebux/placemap/internal/keybinds"
	"github.com/studiowebux/placemap/internal/places"
	"github.com/studiowebux/placemap/internal/search"
	"github.com/studiowebux/placemap/internal/session"
)

// New creates a new TUI model backed by the active profile's map service.
func New(sessionMgr *session.Manager, version string) (*Model, error) {
	profile := sessionMgr.GetActiveProfile()
	if profile == nil {
		return nil, fmt.Errorf("no active profile configured")
	}

	historyMgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		// History is optional; the search flow works without it.
		historyMgr = nil
	}

	buffer := search.NewBuffer()

	m := &Model{
		sessionMgr:  sessionMgr,
		historyMgr:  historyMgr,
		buffer:      buffer,
		orch:        search.New(places.NewClient(profile), buffer),
		keybinds:    keybinds.NewDefaultRegistry(),
		mode:        ModeNormal,
		version:     version,
		localConfig: config.LocalConfigExists(),
		resultView:  viewport.New(0, 0),
		helpView:    viewport.New(0, 0),
	}
	return m, nil
}

// Run starts the TUI
func Run(version string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	sessionMgr := session.NewManager()
	if err := sessionMgr.Load(); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	m, err := New(sessionMgr, version)
	if err != nil {
		return err
	}
	defer m.Cleanup()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
