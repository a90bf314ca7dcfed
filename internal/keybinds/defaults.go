package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerPromptBindings(r)
	registerHistoryBindings(r)
	registerHelpBindings(r)
	registerConfirmBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all contexts
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerPromptBindings sets up the main prompt view. Printable keys feed
// the query buffer, so every command here is Enter, Esc, or a control chord.
func registerPromptBindings(r *Registry) {
	r.Register(ContextPrompt, "enter", ActionSubmit)
	r.Register(ContextPrompt, "ctrl+s", ActionSubmit)
	r.Register(ContextPrompt, "esc", ActionClearResult)
	r.Register(ContextPrompt, "ctrl+y", ActionCopyDirections)
	r.Register(ContextPrompt, "ctrl+b", ActionCopyEmbed)
	r.Register(ContextPrompt, "ctrl+h", ActionShowHistory)
	r.Register(ContextPrompt, "ctrl+g", ActionShowHelp)
}

func registerHistoryBindings(r *Registry) {
	r.RegisterMultiple(ContextHistory, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHistory, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHistory, "enter", ActionReplayEntry)
	r.Register(ContextHistory, "d", ActionDeleteEntry)
	r.Register(ContextHistory, "C", ActionClearHistory)
	r.RegisterMultiple(ContextHistory, []string{"esc", "q"}, ActionBack)
}

func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextHelp, []string{"esc", "q"}, ActionBack)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}
