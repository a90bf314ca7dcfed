package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active. A binding
// lives exactly as long as its context is mounted: when the TUI switches
// mode, the old context's bindings stop matching and the new context's take
// over. This is what keeps, say, Enter from submitting a search while the
// history browser is open.
type Context string

const (
	ContextGlobal  Context = "global"  // Available everywhere
	ContextPrompt  Context = "prompt"  // Main prompt view
	ContextHistory Context = "history" // History browser
	ContextHelp    Context = "help"    // Help viewer
	ContextConfirm Context = "confirm" // Confirmation dialogs
)

const (
	// Global actions
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Prompt actions
	ActionSubmit         Action = "submit"          // Submit the current query
	ActionClearResult    Action = "clear_result"    // Reset result state to idle
	ActionCopyDirections Action = "copy_directions" // Copy directions link to clipboard
	ActionCopyEmbed      Action = "copy_embed"      // Copy embed URL to clipboard
	ActionShowHistory    Action = "show_history"    // Open the history browser
	ActionShowHelp       Action = "show_help"       // Open the help viewer

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move up one item
	ActionNavigateDown Action = "navigate_down" // Move down one item

	// History actions
	ActionReplayEntry  Action = "replay_entry"  // Re-run a past prompt
	ActionDeleteEntry  Action = "delete_entry"  // Delete the selected entry
	ActionClearHistory Action = "clear_history" // Clear all history (confirmed)

	// Modal actions
	ActionBack    Action = "back"    // Leave the current view
	ActionConfirm Action = "confirm" // Confirm action (y/Y)
	ActionCancel  Action = "cancel"  // Cancel action (n/N/esc)
)
