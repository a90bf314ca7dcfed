package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/placemap/internal/keybinds"
	"github.com/studiowebux/placemap/internal/places"
	"github.com/studiowebux/placemap/internal/search"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the main view (prompt box + result panel)
func (m *Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	promptBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGreen).
		Width(m.width - 2).
		Render(m.renderPrompt(m.width - 4))

	promptHeight := lipgloss.Height(promptBox)
	resultBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - 2).
		Height(m.height - promptHeight - 2). // Leave 1 line for status bar
		Render(m.resultView.View())

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		promptBox,
		resultBox,
		statusBar,
	)
}

// renderPrompt renders the query line with a block cursor
func (m *Model) renderPrompt(width int) string {
	title := styleTitle.Render("Where to?")

	text := []rune(m.buffer.Get())
	cursor := m.inputCursor
	if cursor > len(text) {
		cursor = len(text)
	}

	before := string(text[:cursor])
	under := " "
	after := ""
	if cursor < len(text) {
		under = string(text[cursor])
		after = string(text[cursor+1:])
	}
	line := before + styleSelected.Render(under) + after

	return title + "\n" + line
}

// renderResult renders the map panel for the current search state
func (m *Model) renderResult(width int) string {
	state := m.orch.State()
	var lines []string

	switch state.Phase {
	case search.PhaseIdle:
		hint := styleSubtle.Render("Type a place or address and press Enter to search\n\nPress Ctrl+G for help")
		lines = append(lines, hint)

	case search.PhasePending:
		lines = append(lines, styleWarning.Render("Searching..."))
		lines = append(lines, "")
		lines = append(lines, styleSubtle.Render(state.Prompt))

	case search.PhaseSuccess:
		lines = append(lines, styleSuccess.Render(state.View.Label))
		if state.Status > 0 {
			timing := fmt.Sprintf("%d | Duration: %s", state.Status, places.FormatDuration(state.Duration))
			lines = append(lines, styleSubtle.Render(timing))
		}
		lines = append(lines, "")
		lines = append(lines, styleTitle.Render("Open in browser:"))
		lines = append(lines, "  "+state.View.DirectionsURL)
		lines = append(lines, "")
		lines = append(lines, styleTitle.Render("Embed URL:"))
		lines = append(lines, "  "+state.View.EmbedURL)
		lines = append(lines, "")
		copyHint := fmt.Sprintf("%s copy map link | %s copy embed link",
			m.keybinds.GetBindingString(keybinds.ContextPrompt, keybinds.ActionCopyDirections),
			m.keybinds.GetBindingString(keybinds.ContextPrompt, keybinds.ActionCopyEmbed))
		lines = append(lines, styleSubtle.Render(copyHint))

	case search.PhaseFailed:
		lines = append(lines, styleError.Render(state.Message))
		if state.Prompt != "" {
			lines = append(lines, "")
			lines = append(lines, styleSubtle.Render("Query: "+state.Prompt))
		}
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		MaxWidth(width).
		Padding(1).
		Render(content)
}

// renderStatusBar renders the bottom status bar
func (m *Model) renderStatusBar() string {
	var left string

	if m.errorMsg != "" {
		left = styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		left = styleSuccess.Render(m.statusMsg)
	} else if m.loading {
		left = styleWarning.Render("Searching...")
	} else {
		left = styleSubtle.Render("Enter search | Ctrl+H history | Ctrl+G help | Ctrl+C quit")
	}

	right := ""
	if profile := m.sessionMgr.GetActiveProfile(); profile != nil {
		name := profile.Name
		if m.localConfig {
			name += " (local)"
		}
		right = styleSubtle.Render("[" + name + "]")
	}
	if m.updateAvailable {
		right += " " + styleWarning.Render("Update available: v"+m.latestVersion)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHistory renders the saved searches view
func (m *Model) renderHistory() string {
	var lines []string
	lines = append(lines, styleTitle.Render("Search History"))
	lines = append(lines, "")

	if len(m.historyEntries) == 0 {
		lines = append(lines, styleSubtle.Render("No saved searches"))
	}

	pageSize := m.height - 8
	if pageSize < 1 {
		pageSize = 1
	}
	start := 0
	if m.historyIndex >= pageSize {
		start = m.historyIndex - pageSize + 1
	}
	end := start + pageSize
	if end > len(m.historyEntries) {
		end = len(m.historyEntries)
	}

	for i := start; i < end; i++ {
		entry := m.historyEntries[i]

		status := styleSuccess.Render("ok")
		if entry.Error != "" {
			status = styleError.Render("err")
		}

		prompt := entry.Prompt
		maxLen := m.width - 40
		if maxLen < 10 {
			maxLen = 10
		}
		if len(prompt) > maxLen {
			prompt = prompt[:maxLen-3] + "..."
		}

		line := fmt.Sprintf("%s  %s  %s", entry.Timestamp, status, prompt)
		if i == m.historyIndex {
			line = styleSelected.Render(line)
		}
		lines = append(lines, line)
	}

	if len(m.historyEntries) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSubtle.Render(fmt.Sprintf("[%d/%d]", m.historyIndex+1, len(m.historyEntries))))
	}

	lines = append(lines, "")
	lines = append(lines, styleSubtle.Render("Enter replay | d delete | C clear all | Esc back"))

	content := strings.Join(lines, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Width(m.width - 2).
		Height(m.height - 2).
		Padding(1).
		Render(content)
	return box
}

// renderHistoryClearConfirmation renders the clear-all confirmation modal
func (m *Model) renderHistoryClearConfirmation() string {
	content := strings.Join([]string{
		styleTitle.Render("Clear history?"),
		"",
		fmt.Sprintf("This deletes all %d saved searches.", len(m.historyEntries)),
		"",
		styleSubtle.Render("y confirm | n cancel"),
	}, "\n")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorRed).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelp renders the scrollable help view
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Help")
	footer := styleSubtle.Render("j/k scroll | Esc back")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Width(m.width - 2).
		Height(m.height - 2).
		Padding(1).
		Render(title + "\n\n" + m.helpView.View() + "\n\n" + footer)
	return box
}

func (m *Model) helpContent() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Search", [][2]string{
			{"Enter / Ctrl+S", "Search for the typed place"},
			{"Esc", "Clear the current result"},
			{"Ctrl+U", "Clear the query line"},
		}},
		{"Result", [][2]string{
			{"Ctrl+Y", "Copy the interactive map link"},
			{"Ctrl+B", "Copy the embed URL"},
		}},
		{"History", [][2]string{
			{"Ctrl+H", "Open search history"},
			{"Enter", "Replay the selected search"},
			{"d", "Delete the selected entry"},
			{"C", "Clear all history"},
		}},
		{"General", [][2]string{
			{"Ctrl+G", "Show this help"},
			{"Esc / q", "Close this help"},
			{"Ctrl+C", "Quit"},
		}},
	}

	var lines []string
	for _, section := range sections {
		lines = append(lines, styleTitle.Render(section.title))
		for _, kv := range section.keys {
			lines = append(lines, fmt.Sprintf("  %-16s %s", kv[0], kv[1]))
		}
		lines = append(lines, "")
	}
	lines = append(lines, styleSubtle.Render("Version: "+m.version))
	return strings.Join(lines, "\n")
}

// updateViewports resizes viewports after a window size change
func (m *Model) updateViewports() {
	m.resultView.Width = m.width - 6
	m.resultView.Height = m.height - 8
	m.helpView.Width = m.width - 6
	m.helpView.Height = m.height - 10
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}
	m.updateResultView()
}

// updateResultView refreshes the result viewport content
func (m *Model) updateResultView() {
	m.resultView.SetContent(m.renderResult(m.resultView.Width))
	m.resultView.GotoTop()
}
