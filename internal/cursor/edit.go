package cursor

import (
	"strings"

	"github.com/arcweave/runepad/internal/diff"
	"github.com/arcweave/runepad/internal/mode"
	"github.com/arcweave/runepad/internal/rope"
)

// Edit is the result of a cursor editing operation: the rope after the
// edit, the cursor repositioned to sit after it, and the OpaqueDiff
// describing the change, ready to hand to an edit tree commit.
type Edit struct {
	Rope   rope.Rope
	Cursor Cursor
	Diff   diff.OpaqueDiff
}

// replaceRange returns the byte range an edit should
// replace: the active selection if one exists, otherwise a
// zero-length range at Position.
func (c Cursor) replaceRange() (start, end rope.ByteOffset) {
	return c.Range()
}

// InsertChar inserts a single rune (or any short run of text) at the
// cursor, replacing the selection if one is active.
func (c Cursor) InsertChar(r rope.Rope, text string) Edit {
	start, end := c.replaceRange()
	newRope := r.Replace(start, end, text)
	d := diff.OpaqueDiff{ByteIndex: start, OldLength: end - start, NewLength: rope.ByteOffset(len(text))}

	newPos := start + rope.ByteOffset(len(text))
	nc := Cursor{Position: newPos}
	nc.preferredColumn = columnOf(newRope, newPos)
	return Edit{Rope: newRope, Cursor: nc, Diff: d}
}

// InsertNewLine inserts a line break at the cursor, applying m's
// auto-indent predicate to the line the cursor was on so the new line
// starts with the same leading whitespace (or whatever m.AutoIndent
// decides).
func (c Cursor) InsertNewLine(r rope.Rope, m mode.Mode) Edit {
	line := r.OffsetToPoint(c.Position).Line
	prevLineText := r.LineText(line)

	text := "\n"
	if m.AutoIndent != nil {
		text += m.AutoIndent(prevLineText)
	}
	return c.InsertChar(r, text)
}

// InsertTab inserts a tab stop at the cursor: a literal tab character
// if m.UseTabs, otherwise enough spaces to reach the next multiple of
// m.TabWidth columns. disabled (e.g. while a selection spans multiple
// lines, where "tab" means indent instead) suppresses insertion
// entirely and returns the cursor unchanged.
func (c Cursor) InsertTab(r rope.Rope, m mode.Mode, disabled bool) Edit {
	if disabled {
		return Edit{Rope: r, Cursor: c}
	}
	if m.UseTabs {
		return c.InsertChar(r, "\t")
	}

	width := m.TabWidth
	if width <= 0 {
		width = 8
	}
	col := int(r.OffsetToPoint(c.Position).Column)
	spaces := width - (col % width)
	return c.InsertChar(r, strings.Repeat(" ", spaces))
}

// DeleteForward removes the selection if one is active, otherwise the
// grapheme cluster after the cursor.
func (c Cursor) DeleteForward(r rope.Rope) Edit {
	start, end := c.replaceRange()
	if start == end {
		end = r.NextGraphemeBoundary(start)
	}
	return c.deleteRange(r, start, end)
}

// DeleteBackward removes the selection if one is active, otherwise the
// grapheme cluster before the cursor.
func (c Cursor) DeleteBackward(r rope.Rope) Edit {
	start, end := c.replaceRange()
	if start == end {
		start = r.PrevGraphemeBoundary(start)
	}
	return c.deleteRange(r, start, end)
}

// DeleteWordForward removes from the cursor to the start of the next
// word.
func (c Cursor) DeleteWordForward(r rope.Rope) Edit {
	start, _ := c.replaceRange()
	target := c.MoveWordForward(r, false)
	return c.deleteRange(r, start, target.Position)
}

// DeleteWordBackward removes from the start of the previous word to
// the cursor.
func (c Cursor) DeleteWordBackward(r rope.Rope) Edit {
	_, end := c.replaceRange()
	target := c.MoveWordBackward(r, false)
	return c.deleteRange(r, target.Position, end)
}

// DeleteLine removes the entire line the cursor is on, including its
// trailing newline.
func (c Cursor) DeleteLine(r rope.Rope) Edit {
	line := r.OffsetToPoint(c.Position).Line
	start := r.LineStartOffset(line)
	end := r.LineStartOffset(line + 1)
	if end <= start {
		end = r.Len()
	}
	return c.deleteRange(r, start, end)
}

func (c Cursor) deleteRange(r rope.Rope, start, end rope.ByteOffset) Edit {
	if start >= end {
		return Edit{Rope: r, Cursor: Cursor{Position: c.Position}}
	}
	newRope := r.Delete(start, end)
	d := diff.OpaqueDiff{ByteIndex: start, OldLength: end - start}

	nc := Cursor{Position: start}
	nc.preferredColumn = columnOf(newRope, start)
	return Edit{Rope: newRope, Cursor: nc, Diff: d}
}

// IndentLine prepends one tab stop of indentation to the cursor's
// current line.
func (c Cursor) IndentLine(r rope.Rope, m mode.Mode) Edit {
	line := r.OffsetToPoint(c.Position).Line
	start := r.LineStartOffset(line)

	indent := "\t"
	if !m.UseTabs {
		width := m.TabWidth
		if width <= 0 {
			width = 8
		}
		indent = strings.Repeat(" ", width)
	}

	newRope := r.Insert(start, indent)
	d := diff.OpaqueDiff{ByteIndex: start, NewLength: rope.ByteOffset(len(indent))}
	newPos := c.Position + rope.ByteOffset(len(indent))
	nc := Cursor{Position: newPos}
	nc.preferredColumn = columnOf(newRope, newPos)
	return Edit{Rope: newRope, Cursor: nc, Diff: d}
}

// OutdentLine removes up to one tab stop of leading whitespace from
// the cursor's current line.
func (c Cursor) OutdentLine(r rope.Rope, m mode.Mode) Edit {
	line := r.OffsetToPoint(c.Position).Line
	start := r.LineStartOffset(line)
	text := r.LineText(line)

	width := m.TabWidth
	if width <= 0 {
		width = 8
	}

	removed := 0
	for removed < len(text) && removed < width {
		if text[removed] == '\t' {
			removed++
			break
		}
		if text[removed] == ' ' {
			removed++
			continue
		}
		break
	}
	if removed == 0 {
		return Edit{Rope: r, Cursor: c}
	}

	newRope := r.Delete(start, start+rope.ByteOffset(removed))
	d := diff.OpaqueDiff{ByteIndex: start, OldLength: rope.ByteOffset(removed)}
	newPos := c.Position - rope.ByteOffset(removed)
	if newPos < start {
		newPos = start
	}
	nc := Cursor{Position: newPos}
	nc.preferredColumn = columnOf(newRope, newPos)
	return Edit{Rope: newRope, Cursor: nc, Diff: d}
}

// Copy returns the selected text, or "" if there is no selection.
func (c Cursor) Copy(r rope.Rope) string {
	start, end := c.replaceRange()
	return r.Slice(start, end)
}

// CopyToClipboard copies the current selection into clip.
func (c Cursor) CopyToClipboard(r rope.Rope, clip Clipboard) error {
	return clip.Set(c.Copy(r))
}

// Cut removes the current selection, also copying it to clip.
func (c Cursor) Cut(r rope.Rope, clip Clipboard) (Edit, error) {
	if err := clip.Set(c.Copy(r)); err != nil {
		return Edit{Rope: r, Cursor: c}, err
	}
	start, end := c.replaceRange()
	return c.deleteRange(r, start, end), nil
}

// PasteFromClipboard inserts clip's contents at the cursor, replacing
// the selection if one is active.
func (c Cursor) PasteFromClipboard(r rope.Rope, clip Clipboard) (Edit, error) {
	text, err := clip.Get()
	if err != nil {
		return Edit{Rope: r, Cursor: c}, err
	}
	return c.InsertChar(r, text), nil
}
