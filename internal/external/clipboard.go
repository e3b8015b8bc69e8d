package external

import "sync"

// RingClipboard is an in-process clipboard implementation for tests
// and headless use: a small history of Set calls, with Get returning
// the most recent one. It satisfies cursor.Clipboard without importing
// the cursor package, so external has no dependency on it.
type RingClipboard struct {
	mu      sync.Mutex
	history []string
	cap     int
}

// NewRingClipboard creates a clipboard retaining up to capacity entries
// (minimum 1).
func NewRingClipboard(capacity int) *RingClipboard {
	if capacity < 1 {
		capacity = 1
	}
	return &RingClipboard{cap: capacity}
}

// Get returns the most recently set value, or "" if nothing has been
// set yet.
func (c *RingClipboard) Get() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.history) == 0 {
		return "", nil
	}
	return c.history[len(c.history)-1], nil
}

// Set pushes a new value, evicting the oldest entry once over capacity.
func (c *RingClipboard) Set(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, text)
	if len(c.history) > c.cap {
		c.history = c.history[len(c.history)-c.cap:]
	}
	return nil
}

// History returns a copy of all retained values, oldest first.
func (c *RingClipboard) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}
