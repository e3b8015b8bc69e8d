package cursor

import (
	"github.com/arcweave/runepad/internal/rope"
)

// Clipboard is the collaborator the cursor's copy/cut/paste operations
// delegate to. Implementations may back onto the OS clipboard, an
// in-process register, or (in tests) a simple string holder.
type Clipboard interface {
	Get() (string, error)
	Set(string) error
}

// Cursor is an insertion point in a buffer, together with an optional
// selection anchor and the preferred column vertical motion tries to
// return to. Cursor is a value type; every operation returns a new
// Cursor rather than mutating the receiver, except where noted.
type Cursor struct {
	// Position is the cursor's byte offset into the buffer.
	Position rope.ByteOffset

	// hasSelection and anchor together describe an active selection:
	// the text between anchor and Position. When hasSelection is
	// false, anchor is meaningless.
	hasSelection bool
	anchor       rope.ByteOffset

	// preferredColumn is the byte column move_up/move_down try to
	// return to, set on horizontal motion and preserved across
	// vertical motion so that moving down past a short line and back
	// up lands where the motion started.
	preferredColumn uint32
}

// New creates a cursor at the given byte offset with no selection.
func New(pos rope.ByteOffset) Cursor {
	return Cursor{Position: pos}
}

// HasSelection reports whether a selection is active.
func (c Cursor) HasSelection() bool {
	return c.hasSelection
}

// Anchor returns the selection anchor. Only meaningful if HasSelection
// is true.
func (c Cursor) Anchor() rope.ByteOffset {
	return c.anchor
}

// Range returns the selection as an ordered [start, end) byte range.
// If there is no selection, start == end == Position.
func (c Cursor) Range() (start, end rope.ByteOffset) {
	if !c.hasSelection {
		return c.Position, c.Position
	}
	if c.anchor <= c.Position {
		return c.anchor, c.Position
	}
	return c.Position, c.anchor
}

// BeginSelection starts a selection anchored at the cursor's current
// position, if one is not already active.
func (c Cursor) BeginSelection() Cursor {
	if c.hasSelection {
		return c
	}
	c.hasSelection = true
	c.anchor = c.Position
	return c
}

// ClearSelection drops any active selection, leaving Position
// unchanged.
func (c Cursor) ClearSelection() Cursor {
	c.hasSelection = false
	return c
}

// SelectAll selects the whole buffer, placing Position at the end so
// subsequent motion extends from there.
func (c Cursor) SelectAll(r rope.Rope) Cursor {
	c.hasSelection = true
	c.anchor = 0
	c.Position = r.Len()
	return c
}

// clampToBuffer clamps a byte offset to [0, r.Len()] and snaps it
// backward to the nearest grapheme boundary, never leaving the cursor
// mid-cluster.
func clampToBuffer(r rope.Rope, pos rope.ByteOffset) rope.ByteOffset {
	if pos < 0 {
		pos = 0
	}
	if pos > r.Len() {
		pos = r.Len()
	}
	if !r.IsGraphemeBoundary(pos) {
		pos = r.PrevGraphemeBoundary(pos)
	}
	return pos
}

// moveTo relocates Position to pos (clamped to a grapheme boundary),
// updates preferredColumn, and resolves any active selection per the
// caller's extend flag: a plain motion clears the selection, while an
// extending motion (shift-modified, in front-end terms) grows it.
//
// Tie-break rule: when a plain motion's destination equals the current
// Position (e.g. move_left at column 0), the selection is still
// cleared — motion always resolves a selection to a single point even
// when it does not otherwise move the cursor.
func moveTo(c Cursor, r rope.Rope, pos rope.ByteOffset, extend bool) Cursor {
	pos = clampToBuffer(r, pos)

	if extend {
		if !c.hasSelection {
			c.hasSelection = true
			c.anchor = c.Position
		}
	} else {
		c.hasSelection = false
	}

	c.Position = pos
	c.preferredColumn = columnOf(r, pos)
	return c
}

func columnOf(r rope.Rope, pos rope.ByteOffset) uint32 {
	return r.OffsetToPoint(pos).Column
}
