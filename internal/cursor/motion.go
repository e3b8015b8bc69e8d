package cursor

import (
	"unicode"

	"github.com/arcweave/runepad/internal/rope"
)

// MoveLeft moves to the previous grapheme cluster boundary. extend
// grows the selection instead of collapsing it.
func (c Cursor) MoveLeft(r rope.Rope, extend bool) Cursor {
	return moveTo(c, r, r.PrevGraphemeBoundary(c.Position), extend)
}

// MoveRight moves to the next grapheme cluster boundary.
func (c Cursor) MoveRight(r rope.Rope, extend bool) Cursor {
	return moveTo(c, r, r.NextGraphemeBoundary(c.Position), extend)
}

// MoveUp moves one line up, targeting preferredColumn rather than the
// current column, so that repeated vertical motion through short lines
// doesn't forget the original horizontal position.
func (c Cursor) MoveUp(r rope.Rope, extend bool) Cursor {
	return c.moveVertical(r, -1, extend)
}

// MoveDown moves one line down, targeting preferredColumn.
func (c Cursor) MoveDown(r rope.Rope, extend bool) Cursor {
	return c.moveVertical(r, 1, extend)
}

// MoveUpN moves n lines up in one step.
func (c Cursor) MoveUpN(r rope.Rope, n int, extend bool) Cursor {
	return c.moveVertical(r, -n, extend)
}

// MoveDownN moves n lines down in one step.
func (c Cursor) MoveDownN(r rope.Rope, n int, extend bool) Cursor {
	return c.moveVertical(r, n, extend)
}

func (c Cursor) moveVertical(r rope.Rope, delta int, extend bool) Cursor {
	point := r.OffsetToPoint(c.Position)
	targetLine := int(point.Line) + delta
	lastLine := int(r.LineCount()) - 1
	if targetLine < 0 {
		targetLine = 0
	}
	if targetLine > lastLine {
		targetLine = lastLine
	}

	newPos := r.PointToOffset(rope.Point{Line: uint32(targetLine), Column: c.preferredColumn})

	saved := c.preferredColumn
	moved := moveTo(c, r, newPos, extend)
	moved.preferredColumn = saved
	return moved
}

// MoveToStartOfLine moves to the first byte of the cursor's current
// line.
func (c Cursor) MoveToStartOfLine(r rope.Rope, extend bool) Cursor {
	line := r.OffsetToPoint(c.Position).Line
	return moveTo(c, r, r.LineStartOffset(line), extend)
}

// MoveToEndOfLine moves to the last byte of the cursor's current line
// (before its terminating newline, if any).
func (c Cursor) MoveToEndOfLine(r rope.Rope, extend bool) Cursor {
	line := r.OffsetToPoint(c.Position).Line
	return moveTo(c, r, r.LineEndOffset(line), extend)
}

// MoveToStartOfBuffer moves to byte offset 0.
func (c Cursor) MoveToStartOfBuffer(r rope.Rope, extend bool) Cursor {
	return moveTo(c, r, 0, extend)
}

// MoveToEndOfBuffer moves to the last byte offset of the buffer.
func (c Cursor) MoveToEndOfBuffer(r rope.Rope, extend bool) Cursor {
	return moveTo(c, r, r.Len(), extend)
}

type runeClass int

const (
	classSpace runeClass = iota
	classWord
	classPunct
)

func classify(rn rune) runeClass {
	switch {
	case unicode.IsSpace(rn):
		return classSpace
	case unicode.IsLetter(rn) || unicode.IsDigit(rn) || rn == '_':
		return classWord
	default:
		return classPunct
	}
}

// MoveWordForward moves to the start of the next word, skipping any
// run of the current class and the whitespace that follows it.
func (c Cursor) MoveWordForward(r rope.Rope, extend bool) Cursor {
	charIdx := r.ByteToChar(c.Position)
	total := r.CharLen()
	if charIdx >= total {
		return moveTo(c, r, r.Len(), extend)
	}

	rn, _ := r.CharAt(charIdx)
	startClass := classify(rn)
	for charIdx < total {
		rn, ok := r.CharAt(charIdx)
		if !ok || classify(rn) != startClass {
			break
		}
		charIdx++
	}
	for charIdx < total {
		rn, ok := r.CharAt(charIdx)
		if !ok || classify(rn) != classSpace {
			break
		}
		charIdx++
	}

	return moveTo(c, r, r.CharToByte(charIdx), extend)
}

// MoveWordBackward moves to the start of the previous word.
func (c Cursor) MoveWordBackward(r rope.Rope, extend bool) Cursor {
	charIdx := r.ByteToChar(c.Position)
	if charIdx == 0 {
		return moveTo(c, r, 0, extend)
	}
	charIdx--

	for charIdx > 0 {
		rn, ok := r.CharAt(charIdx)
		if !ok || classify(rn) != classSpace {
			break
		}
		charIdx--
	}

	if charIdx > 0 {
		rn, _ := r.CharAt(charIdx)
		startClass := classify(rn)
		for charIdx > 0 {
			rn, ok := r.CharAt(charIdx - 1)
			if !ok || classify(rn) != startClass {
				break
			}
			charIdx--
		}
	}

	return moveTo(c, r, r.CharToByte(charIdx), extend)
}
