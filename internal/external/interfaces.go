// Package external declares the collaborator interfaces the buffer
// engine talks to but does not implement: the terminal front-end, the
// filesystem, and version control. Concrete implementations (a real
// terminal renderer, a git porcelain wrapper, an OS clipboard) live
// outside this module's scope; this package exists so the engine can
// depend on an interface rather than reach out to the world itself.
package external

import (
	"context"
	"io"
)

// StyleCell is a single terminal cell: the rune to draw and the
// highlight attributes it carries. The caller that renders the buffer
// builds these; nothing in the engine maps SyntaxTree traces to cells,
// and colors are left to the front-end.
type StyleCell struct {
	Rune  rune
	Class string
	Bold  bool
	Italic bool
}

// Size is a terminal's visible dimensions in character cells.
type Size struct {
	Rows, Cols int
}

// KeyEvent is one key press delivered by the front-end.
type KeyEvent struct {
	Rune rune
	Name string // e.g. "Enter", "Backspace", "Up" for non-printable keys
	Ctrl, Alt, Shift bool
}

// MatchResult is what a key sequence matcher returns after consuming
// one KeyEvent against its bound sequences.
type MatchResult int

const (
	// Continue means the event extended a partial match; more input is
	// needed before an action fires.
	Continue MatchResult = iota
	// Clear means no bound sequence can still match; the matcher
	// resets to its initial state regardless of whether an action fired.
	Clear
)

// Frontend is the terminal surface the buffer engine renders into. It
// is owned and driven by the caller's event loop; the engine only
// asks it for its size and pushes completed frames to Present.
type Frontend interface {
	Size() Size
	Present(cells [][]StyleCell) error
	PollKey(ctx context.Context) (KeyEvent, error)
}

// FileSystem abstracts the durable storage a buffer loads from and
// saves to, so the engine's save path can be tested without touching
// a real disk.
type FileSystem interface {
	Open(path string) (io.ReadCloser, error)
	// WriteAtomic replaces path's contents with data in a way that never
	// leaves a half-written file observable: typically write-to-temp
	// then rename.
	WriteAtomic(path string, data []byte) error
}

// VCS is an optional probe for version-control state (e.g. "is this
// file modified relative to HEAD"). A buffer with no VCS collaborator
// simply never reports VCS-derived status.
type VCS interface {
	// IsTracked reports whether path is tracked by the repository
	// containing it.
	IsTracked(path string) (bool, error)
	// HeadBlob returns path's content at HEAD, for diffing against the
	// working buffer.
	HeadBlob(path string) ([]byte, error)
}
