package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/placemap/internal/keybinds"
)

// handleKeyPress routes a key through the registry for the current mode's
// context. Keys with no bound action fall through to prompt editing in
// normal mode and are ignored everywhere else.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(m.context(), msg.String()); ok {
		return m.dispatch(action)
	}

	if m.mode == ModeNormal {
		return m.handlePromptEditing(msg)
	}
	return nil
}

func (m *Model) dispatch(action keybinds.Action) tea.Cmd {
	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionSubmit:
		return m.submit()

	case keybinds.ActionClearResult:
		m.orch.Reset()
		m.statusMsg = ""
		m.errorMsg = ""
		m.updateResultView()

	case keybinds.ActionCopyDirections:
		return m.copyDirectionsLink()

	case keybinds.ActionCopyEmbed:
		return m.copyEmbedLink()

	case keybinds.ActionShowHistory:
		m.mode = ModeHistory
		return m.loadHistory()

	case keybinds.ActionShowHelp:
		m.mode = ModeHelp
		m.helpView.SetContent(m.helpContent())
		m.helpView.GotoTop()

	case keybinds.ActionNavigateUp:
		m.navigateUp()

	case keybinds.ActionNavigateDown:
		m.navigateDown()

	case keybinds.ActionReplayEntry:
		return m.replaySelectedEntry()

	case keybinds.ActionDeleteEntry:
		return m.deleteSelectedEntry()

	case keybinds.ActionClearHistory:
		m.mode = ModeHistoryClearConfirm

	case keybinds.ActionBack:
		m.mode = ModeNormal

	case keybinds.ActionConfirm:
		if m.mode == ModeHistoryClearConfirm {
			m.mode = ModeHistory
			return m.clearHistory()
		}

	case keybinds.ActionCancel:
		if m.mode == ModeHistoryClearConfirm {
			m.mode = ModeHistory
		}
	}
	return nil
}

// handlePromptEditing edits the single-line query in place. The buffer is
// replaced wholesale after every edit so the orchestrator always sees the
// latest text.
func (m *Model) handlePromptEditing(msg tea.KeyMsg) tea.Cmd {
	text := []rune(m.buffer.Get())
	if m.inputCursor > len(text) {
		m.inputCursor = len(text)
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := msg.Runes
		if msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		text = append(text[:m.inputCursor], append(runes, text[m.inputCursor:]...)...)
		m.inputCursor += len(runes)

	case tea.KeyBackspace:
		if m.inputCursor > 0 {
			text = append(text[:m.inputCursor-1], text[m.inputCursor:]...)
			m.inputCursor--
		}

	case tea.KeyDelete:
		if m.inputCursor < len(text) {
			text = append(text[:m.inputCursor], text[m.inputCursor+1:]...)
		}

	case tea.KeyLeft:
		if m.inputCursor > 0 {
			m.inputCursor--
		}

	case tea.KeyRight:
		if m.inputCursor < len(text) {
			m.inputCursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		m.inputCursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		m.inputCursor = len(text)

	case tea.KeyCtrlU:
		text = text[:0]
		m.inputCursor = 0

	default:
		return nil
	}

	m.buffer.Set(string(text))
	return nil
}

func (m *Model) navigateUp() {
	if m.mode == ModeHistory && m.historyIndex > 0 {
		m.historyIndex--
		return
	}
	if m.mode == ModeHelp {
		m.helpView.ScrollUp(1)
	}
}

func (m *Model) navigateDown() {
	if m.mode == ModeHistory && m.historyIndex < len(m.historyEntries)-1 {
		m.historyIndex++
		return
	}
	if m.mode == ModeHelp {
		m.helpView.ScrollDown(1)
	}
}
