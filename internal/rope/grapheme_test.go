package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneSharesUnderlyingTree(t *testing.T) {
	r := FromString("hello")
	c := r.Clone()
	assert.True(t, r.Equals(c))
	assert.Equal(t, r.root, c.root)
}

func TestGraphemeBoundaryOnPlainASCII(t *testing.T) {
	r := FromString("abc")
	for i := ByteOffset(0); i <= r.Len(); i++ {
		assert.True(t, r.IsGraphemeBoundary(i), "byte %d", i)
	}
}

// decomposedE pairs "e" with a combining acute accent (U+0301); uniseg
// treats the pair as a single grapheme cluster regardless of whether the
// source file stores it composed or decomposed, so tests below size the
// cluster with len() rather than a hardcoded byte count.
const decomposedE = "é"

func TestGraphemeBoundarySplitsCombiningMark(t *testing.T) {
	r := FromString(decomposedE + "x")
	assert.True(t, r.IsGraphemeBoundary(0))
	assert.False(t, r.IsGraphemeBoundary(1), "inside the e + combining-acute cluster")
}

func TestNextAndPrevGraphemeBoundaryAroundCombiningMark(t *testing.T) {
	r := FromString(decomposedE + "x")
	next := r.NextGraphemeBoundary(0)
	assert.Equal(t, ByteOffset(len(decomposedE)), next)

	prev := r.PrevGraphemeBoundary(next)
	assert.Equal(t, ByteOffset(0), prev)
}

func TestNextGraphemeBoundaryAtEndReturnsLen(t *testing.T) {
	r := FromString("abc")
	assert.Equal(t, r.Len(), r.NextGraphemeBoundary(r.Len()))
}

func TestPrevGraphemeBoundaryAtStartReturnsZero(t *testing.T) {
	r := FromString("abc")
	assert.Equal(t, ByteOffset(0), r.PrevGraphemeBoundary(0))
}
