package cursor

import (
	"testing"

	"github.com/arcweave/runepad/internal/rope"
	"github.com/stretchr/testify/assert"
)

func TestMoveUpDownPreservesPreferredColumn(t *testing.T) {
	r := rope.FromString("long line here\nhi\nlong line here")
	c := New(9).MoveRight(r, false) // horizontal motion sets the preferred column to 10

	c = c.MoveDown(r, false) // lands clamped on the short "hi" line
	c = c.MoveDown(r, false) // back to a long line; should return to column 10

	assert.Equal(t, uint32(10), r.OffsetToPoint(c.Position).Column)
}

func TestMoveToStartAndEndOfLine(t *testing.T) {
	r := rope.FromString("abc\ndef\n")
	c := New(5) // inside "def"

	start := c.MoveToStartOfLine(r, false)
	assert.Equal(t, uint32(0), r.OffsetToPoint(start.Position).Column)

	end := c.MoveToEndOfLine(r, false)
	assert.Equal(t, "def", r.Slice(r.LineStartOffset(1), end.Position))
}

func TestMoveToStartAndEndOfBuffer(t *testing.T) {
	r := rope.FromString("hello world")
	c := New(5)

	assert.Equal(t, rope.ByteOffset(0), c.MoveToStartOfBuffer(r, false).Position)
	assert.Equal(t, r.Len(), c.MoveToEndOfBuffer(r, false).Position)
}

func TestMoveWordForwardSkipsWordAndTrailingSpace(t *testing.T) {
	r := rope.FromString("foo bar baz")
	c := New(0)

	c = c.MoveWordForward(r, false)
	assert.Equal(t, rope.ByteOffset(4), c.Position, "lands at the start of 'bar'")
}

func TestMoveWordBackwardSkipsToStartOfPreviousWord(t *testing.T) {
	r := rope.FromString("foo bar baz")
	c := New(r.Len())

	c = c.MoveWordBackward(r, false)
	assert.Equal(t, rope.ByteOffset(8), c.Position, "lands at the start of 'baz'")
}
