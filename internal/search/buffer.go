package search

import "sync"

// Buffer holds the current raw query text. The input widget replaces it on
// every keystroke; the orchestrator reads it at trigger time. No validation
// happens here: empty or whitespace-only text is stored as-is and rejected
// later, before any network use.
type Buffer struct {
	mu   sync.Mutex
	text string
}

// NewBuffer creates an empty query buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Set replaces the buffered text unconditionally
func (b *Buffer) Set(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
}

// Get returns the current buffered text
func (b *Buffer) Get() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}
