package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/placemap/internal/search"
	"github.com/studiowebux/placemap/internal/version"
)

// submit starts a search and returns a command that completes it. Only one
// exchange is in flight at a time; repeated triggers while loading are
// dropped. A ticket issued by Start fences the completion so a stale
// exchange can never overwrite a newer one.
func (m *Model) submit() tea.Cmd {
	if m.loading {
		return nil
	}

	ticket, ok := m.orch.Start()
	if !ok {
		// Validation failed before any network use
		m.updateResultView()
		return func() tea.Msg {
			return errorMsg(m.orch.State().Message)
		}
	}

	m.loading = true
	m.statusMsg = ""
	m.errorMsg = ""
	m.updateResultView()

	return func() tea.Msg {
		state := m.orch.Finish(context.Background(), ticket)
		return searchFinishedMsg{state: state}
	}
}

// loadHistory fetches saved searches from the database
func (m *Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if m.historyMgr == nil {
			return errorMsg("History is not available")
		}
		entries, err := m.historyMgr.Load()
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to load history: %v", err))
		}
		return historyLoadedMsg{entries: entries}
	}
}

// replaySelectedEntry re-submits the prompt of the selected history entry
func (m *Model) replaySelectedEntry() tea.Cmd {
	if m.historyIndex >= len(m.historyEntries) {
		return nil
	}
	entry := m.historyEntries[m.historyIndex]

	m.buffer.Set(entry.Prompt)
	m.inputCursor = len([]rune(entry.Prompt))
	m.mode = ModeNormal
	return m.submit()
}

func (m *Model) deleteSelectedEntry() tea.Cmd {
	if m.historyMgr == nil || m.historyIndex >= len(m.historyEntries) {
		return nil
	}
	id := m.historyEntries[m.historyIndex].ID

	if err := m.historyMgr.Delete(id); err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to delete entry: %v", err))
	}
	if m.historyIndex > 0 {
		m.historyIndex--
	}
	return m.loadHistory()
}

func (m *Model) clearHistory() tea.Cmd {
	if m.historyMgr == nil {
		return nil
	}
	if err := m.historyMgr.Clear(); err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to clear history: %v", err))
	}
	m.historyEntries = nil
	m.historyIndex = 0
	return m.setStatusMessage("History cleared")
}

func (m *Model) copyDirectionsLink() tea.Cmd {
	state := m.orch.State()
	if state.Phase != search.PhaseSuccess || state.View.DirectionsURL == "" {
		return m.setErrorMessage("No map link to copy")
	}
	if err := clipboard.WriteAll(state.View.DirectionsURL); err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to copy: %v", err))
	}
	return m.setStatusMessage("Map link copied to clipboard")
}

func (m *Model) copyEmbedLink() tea.Cmd {
	state := m.orch.State()
	if state.Phase != search.PhaseSuccess || state.View.EmbedURL == "" {
		return m.setErrorMessage("No embed link to copy")
	}
	if err := clipboard.WriteAll(state.View.EmbedURL); err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to copy: %v", err))
	}
	return m.setStatusMessage("Embed link copied to clipboard")
}

// checkVersion looks for a newer release in the background
func (m *Model) checkVersion() tea.Cmd {
	return func() tea.Msg {
		available, latest, url, err := version.CheckForUpdate(m.version)
		return versionCheckMsg{
			available:     available,
			latestVersion: latest,
			url:           url,
			err:           err,
		}
	}
}
