package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharLenCountsRunesNotBytes(t *testing.T) {
	r := FromString("héllo")
	assert.Equal(t, uint64(5), r.CharLen())
	assert.Equal(t, ByteOffset(6), r.Len(), "é is 2 bytes in UTF-8")
}

func TestCharToByteAndBackRoundTrip(t *testing.T) {
	r := FromString("héllo wörld")
	for charIdx := uint64(0); charIdx < r.CharLen(); charIdx++ {
		b := r.CharToByte(charIdx)
		assert.Equal(t, charIdx, r.ByteToChar(b), "char %d", charIdx)
	}
}

func TestCharAtReturnsRuneOrFalseAtEnd(t *testing.T) {
	r := FromString("ab")
	rn, ok := r.CharAt(0)
	assert.True(t, ok)
	assert.Equal(t, 'a', rn)

	_, ok = r.CharAt(2)
	assert.False(t, ok)
}

func TestCharToLineAndLineToChar(t *testing.T) {
	r := FromString("one\ntwo\nthree")
	line := r.CharToLine(r.LineToChar(2))
	assert.Equal(t, uint32(2), line)
}

func TestCharToLineCountsLFOnlyNotLoneCR(t *testing.T) {
	// "a\r\nb": the char after the CRLF pair is on line 1 (0-indexed).
	r := FromString("a\r\nb")
	lastChar := r.CharLen() - 1
	assert.Equal(t, uint32(1), r.CharToLine(lastChar))

	// "a\rb": a lone CR is not a line terminator, so the whole string
	// stays on line 0.
	r = FromString("a\rb")
	lastChar = r.CharLen() - 1
	assert.Equal(t, uint32(0), r.CharToLine(lastChar))
}

func TestInsertCharAndRemoveChars(t *testing.T) {
	r := FromString("world")
	r2 := r.InsertChar(0, "hello ")
	assert.Equal(t, "hello world", r2.String())

	r3 := r2.RemoveChars(0, 6)
	assert.Equal(t, "world", r3.String())
}

func TestChunkAtByteReturnsContainingChunk(t *testing.T) {
	r := FromString("hello world")
	chunk, ok := r.ChunkAtByte(3)
	assert.True(t, ok)
	assert.Contains(t, chunk.Bytes, "l")
	assert.LessOrEqual(t, chunk.ChunkStartByte, ByteOffset(3))
}

func TestChunkAtByteOnEmptyRope(t *testing.T) {
	r := FromString("")
	_, ok := r.ChunkAtByte(0)
	assert.False(t, ok)
}
