package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/placemap/internal/search"
	"github.com/studiowebux/placemap/internal/types"
)

// Manager persists submitted queries and their outcomes in SQLite
type Manager struct {
	db *sql.DB
}

// NewManager opens (and if needed creates) the history database
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS queries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		prompt TEXT NOT NULL,
		label TEXT,
		embed_url TEXT,
		directions_url TEXT,
		status INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_queries_timestamp ON queries(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_queries_prompt ON queries(prompt);
	`

	_, err := m.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return nil
}

// Record saves the terminal state of one submission. Pending and Idle states
// are never recorded; validation failures are skipped too since no exchange
// happened.
func (m *Manager) Record(state search.State) error {
	switch state.Phase {
	case search.PhaseSuccess, search.PhaseFailed:
	default:
		return nil
	}
	if state.Prompt == "" {
		return nil
	}

	var label, embedURL, directionsURL string
	if state.View != nil {
		label = state.View.Label
		embedURL = state.View.EmbedURL
		directionsURL = state.View.DirectionsURL
	}

	query := `
		INSERT INTO queries (timestamp, prompt, label, embed_url, directions_url, status, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	// Format timestamp for SQLite in local time
	timestampStr := time.Now().Local().Format("2006-01-02 15:04:05")

	_, err := m.db.Exec(query,
		timestampStr,
		state.Prompt,
		label,
		embedURL,
		directionsURL,
		state.Status,
		state.Duration,
		state.Message,
	)

	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return nil
}

// Load returns all recorded queries, newest first
func (m *Manager) Load() ([]types.HistoryEntry, error) {
	query := `
		SELECT id, timestamp, prompt, COALESCE(label, ''), COALESCE(embed_url, ''),
		       COALESCE(directions_url, ''), status, duration_ms, COALESCE(error, '')
		FROM queries
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry

	for rows.Next() {
		var entry types.HistoryEntry
		var timestamp string

		err := rows.Scan(
			&entry.ID,
			&timestamp,
			&entry.Prompt,
			&entry.Label,
			&entry.EmbedURL,
			&entry.DirectionsURL,
			&entry.Status,
			&entry.Duration,
			&entry.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		// Parse timestamp as local time, fall back to RFC3339
		parsedTime, err := time.ParseInLocation("2006-01-02 15:04:05", timestamp, time.Local)
		if err != nil {
			parsedTime, err = time.Parse(time.RFC3339, timestamp)
			if err != nil {
				parsedTime = time.Now()
			}
		}
		entry.Timestamp = parsedTime.Format(time.RFC3339)

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Delete removes a single entry by id
func (m *Manager) Delete(id int64) error {
	_, err := m.db.Exec("DELETE FROM queries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return nil
}

// Clear removes all recorded queries
func (m *Manager) Clear() error {
	_, err := m.db.Exec("DELETE FROM queries")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// GetCount returns the number of recorded queries
func (m *Manager) GetCount() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM queries").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get history count: %w", err)
	}
	return count, nil
}

// Close closes the underlying database
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
