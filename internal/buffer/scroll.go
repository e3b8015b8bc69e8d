package buffer

import "github.com/arcweave/runepad/internal/external"

// recomputeScroll adjusts lineOffset so the cursor's line stays within
// the viewport, scrolling the minimum amount necessary.
func (b *Buffer) recomputeScroll() {
	if b.viewport.Rows <= 0 {
		return
	}
	line := b.tree.Staged().OffsetToPoint(b.cur.Position).Line

	if uint32(line) < b.lineOffset {
		b.lineOffset = uint32(line)
		return
	}
	bottom := b.lineOffset + uint32(b.viewport.Rows) - 1
	if uint32(line) > bottom {
		b.lineOffset = uint32(line) - uint32(b.viewport.Rows) + 1
	}
}

// LineOffset returns the index of the first visible line.
func (b *Buffer) LineOffset() uint32 {
	return b.lineOffset
}

// CenterVisualCursor cycles the scroll position through three
// placements each time it's called: the cursor's line centered, then
// the cursor's line at the top of the viewport, then the top of the
// buffer (line offset 0), then back to centered. This mirrors the
// common "repeatedly pressing the recenter key cycles through
// placements" behavior rather than always recentering to the same spot.
func (b *Buffer) CenterVisualCursor() {
	if b.viewport.Rows <= 0 {
		return
	}
	line := b.tree.Staged().OffsetToPoint(b.cur.Position).Line
	lastLine := b.tree.Staged().LineCount() - 1

	switch b.centerState {
	case CenterMiddle:
		half := uint32(b.viewport.Rows / 2)
		if uint32(line) > half {
			b.lineOffset = uint32(line) - half
		} else {
			b.lineOffset = 0
		}
		b.centerState = CenterTop
	case CenterTop:
		b.lineOffset = uint32(line)
		b.centerState = CenterBufferStart
	case CenterBufferStart:
		b.lineOffset = 0
		b.centerState = CenterMiddle
	}

	if b.lineOffset > lastLine {
		b.lineOffset = lastLine
	}
}

// SetViewport updates the visible rows/cols, re-clamping the scroll
// position against the new size.
func (b *Buffer) SetViewport(size external.Size) {
	b.viewport = size
	if b.viewport.Rows > 0 {
		lines := b.tree.Staged().LineCount()
		rows := uint32(b.viewport.Rows)
		if lines <= rows {
			b.lineOffset = 0
		} else if b.lineOffset > lines-rows {
			b.lineOffset = lines - rows
		}
	}
	b.recomputeScroll()
}
