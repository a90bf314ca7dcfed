package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/placemap/internal/history"
	"github.com/studiowebux/placemap/internal/keybinds"
	"github.com/studiowebux/placemap/internal/search"
	"github.com/studiowebux/placemap/internal/session"
	"github.com/studiowebux/placemap/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeHistory
	ModeHistoryClearConfirm
	ModeHelp
)

// Model represents the TUI state
type Model struct {
	// Core state
	sessionMgr *session.Manager
	historyMgr *history.Manager
	buffer     *search.Buffer
	orch       *search.Orchestrator
	keybinds   *keybinds.Registry
	mode       Mode

	version         string
	localConfig     bool // session/profiles read from the working directory
	updateAvailable bool
	latestVersion   string
	updateURL       string

	// UI state
	width       int
	height      int
	inputCursor int // cursor position in the prompt line
	loading     bool
	statusMsg   string
	errorMsg    string

	resultView viewport.Model
	helpView   viewport.Model

	// History state
	historyEntries []types.HistoryEntry
	historyIndex   int
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return m.checkVersion()
}

// Cleanup closes database connections
func (m *Model) Cleanup() {
	if m.historyMgr != nil {
		if err := m.historyMgr.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing history database: %v\n", err)
		}
	}
}

// context returns the keybinding context for the current mode. Bindings
// outside this context are unmounted and never fire.
func (m *Model) context() keybinds.Context {
	switch m.mode {
	case ModeHistory:
		return keybinds.ContextHistory
	case ModeHistoryClearConfirm:
		return keybinds.ContextConfirm
	case ModeHelp:
		return keybinds.ContextHelp
	default:
		return keybinds.ContextPrompt
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewports()

	case searchFinishedMsg:
		m.loading = false
		state := msg.state

		if m.historyMgr != nil && m.sessionMgr.IsHistoryEnabled() {
			_ = m.historyMgr.Record(state) // best effort, never interrupts the flow
		}

		switch state.Phase {
		case search.PhaseSuccess:
			m.errorMsg = ""
			cmd = m.setStatusMessage(fmt.Sprintf("Found %q", state.View.Label))
		case search.PhaseFailed:
			cmd = m.setErrorMessage(state.Message)
		}
		m.updateResultView()

	case historyLoadedMsg:
		m.historyEntries = msg.entries
		m.historyIndex = 0
		if len(msg.entries) > 0 {
			m.statusMsg = fmt.Sprintf("Loaded %d history entries", len(msg.entries))
		}

	case versionCheckMsg:
		if msg.err == nil && msg.available {
			m.updateAvailable = true
			m.latestVersion = msg.latestVersion
			m.updateURL = msg.url
		}

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""

	case errorMsg:
		m.loading = false
		cmd = m.setErrorMessage(string(msg))
		m.updateResultView()
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHistory:
		return m.renderHistory()
	case ModeHistoryClearConfirm:
		return m.renderHistoryClearConfirmation()
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// Custom message types
type searchFinishedMsg struct {
	state search.State
}

type historyLoadedMsg struct {
	entries []types.HistoryEntry
}

type versionCheckMsg struct {
	available     bool
	latestVersion string
	url           string
	err           error
}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

type errorMsg string

// Helper methods for setting messages with optional timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncateMessage(msg)

	profile := m.sessionMgr.GetActiveProfile()
	if profile != nil && profile.MessageTimeout != nil && *profile.MessageTimeout > 0 {
		timeout := time.Duration(*profile.MessageTimeout) * time.Second
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})
	}
	return nil
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncateMessage(msg)

	profile := m.sessionMgr.GetActiveProfile()
	if profile != nil && profile.MessageTimeout != nil && *profile.MessageTimeout > 0 {
		timeout := time.Duration(*profile.MessageTimeout) * time.Second
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearErrorMsg{}
		})
	}
	return nil
}

// truncateMessage keeps footer messages to a single line. The cap must stay
// above the longest fixed lifecycle message so those always render verbatim.
func truncateMessage(msg string) string {
	if len(msg) > 160 {
		return msg[:157] + "..."
	}
	return msg
}
