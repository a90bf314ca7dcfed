package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/studiowebux/placemap/internal/config"
	"github.com/studiowebux/placemap/internal/types"
)

// Manager handles session and profile management
type Manager struct {
	session  *types.Session
	profiles []types.Profile
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		session:  &types.Session{},
		profiles: []types.Profile{},
	}
}

// Load loads session and profiles from disk
func (m *Manager) Load() error {
	if err := m.LoadSession(); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if err := m.LoadProfiles(); err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	return nil
}

// LoadSession loads the session file
func (m *Manager) LoadSession() error {
	sessionPath := config.GetSessionFilePath()

	data, err := os.ReadFile(sessionPath)
	if err != nil {
		// If file doesn't exist, use default session
		enabled := true
		m.session = &types.Session{HistoryEnabled: &enabled}
		return nil
	}

	var session types.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}

	if session.HistoryEnabled == nil {
		enabled := true
		session.HistoryEnabled = &enabled
	}

	m.session = &session
	return nil
}

// SaveSession saves the session to disk
func (m *Manager) SaveSession() error {
	sessionPath := config.GetSessionFilePath()

	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(sessionPath, data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// LoadProfiles loads the profiles file
func (m *Manager) LoadProfiles() error {
	profilesPath := config.GetProfilesFilePath()

	data, err := os.ReadFile(profilesPath)
	if err != nil {
		// If file doesn't exist, create default profile
		m.profiles = []types.Profile{defaultProfile()}
		return nil
	}

	var profiles []types.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("failed to parse profiles file: %w", err)
	}

	// Ensure all profiles have initialized maps
	for i := range profiles {
		if profiles[i].Headers == nil {
			profiles[i].Headers = make(map[string]string)
		}
	}

	m.profiles = profiles
	return nil
}

// SaveProfiles saves the profiles to disk
func (m *Manager) SaveProfiles() error {
	profilesPath := config.GetProfilesFilePath()

	data, err := json.MarshalIndent(m.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(profilesPath, data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}

	return nil
}

// GetSession returns the current session
func (m *Manager) GetSession() *types.Session {
	return m.session
}

// GetProfiles returns all profiles
func (m *Manager) GetProfiles() []types.Profile {
	return m.profiles
}

// GetActiveProfile returns the currently active profile
func (m *Manager) GetActiveProfile() *types.Profile {
	if m.session.ActiveProfile == "" {
		if len(m.profiles) > 0 {
			return &m.profiles[0]
		}
		p := defaultProfile()
		return &p
	}

	for i := range m.profiles {
		if m.profiles[i].Name == m.session.ActiveProfile {
			return &m.profiles[i]
		}
	}

	// If not found, fall back to the first profile
	if len(m.profiles) > 0 {
		return &m.profiles[0]
	}

	p := defaultProfile()
	return &p
}

// SetActiveProfile sets the active profile by name
func (m *Manager) SetActiveProfile(name string) error {
	found := false
	for _, profile := range m.profiles {
		if profile.Name == name {
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("profile not found: %s", name)
	}

	m.session.ActiveProfile = name
	return m.SaveSession()
}

// IsHistoryEnabled reports whether query history should be recorded.
// A profile-level override wins over the session default.
func (m *Manager) IsHistoryEnabled() bool {
	profile := m.GetActiveProfile()
	if profile != nil && profile.HistoryEnabled != nil {
		return *profile.HistoryEnabled
	}
	if m.session.HistoryEnabled != nil {
		return *m.session.HistoryEnabled
	}
	return true
}

// SetHistoryEnabled toggles session-level history recording
func (m *Manager) SetHistoryEnabled(enabled bool) error {
	m.session.HistoryEnabled = &enabled
	return m.SaveSession()
}

func defaultProfile() types.Profile {
	return types.Profile{
		Name:    "Default",
		BaseURL: "http://localhost:8080",
		APIKey:  "dev-key",
		Headers: make(map[string]string),
	}
}
