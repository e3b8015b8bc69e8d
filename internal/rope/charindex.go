package rope

import "unicode/utf8"

// CharLen returns the total number of Unicode scalar values (runes) stored
// in the rope. Distinct from Len, which counts bytes.
func (r Rope) CharLen() uint64 {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// CharToByte converts a char (rune) index to the byte offset of the start
// of that rune. A charIdx equal to CharLen() returns Len().
func (r Rope) CharToByte(charIdx uint64) ByteOffset {
	if r.root == nil || charIdx == 0 {
		return 0
	}
	if charIdx >= r.root.summary.Chars {
		return r.Len()
	}

	node := r.root
	byteBase := ByteOffset(0)
	for !node.IsLeaf() {
		idx, rem := node.findChildByCharOffset(charIdx)
		for i := 0; i < idx; i++ {
			byteBase += node.childSummaries[i].Bytes
		}
		node = node.children[idx]
		charIdx = rem
	}

	// Scan runes within the leaf's chunks to find the byte offset.
	var chars uint64
	for _, chunk := range node.chunks {
		s := chunk.String()
		for i, rn := range s {
			if chars == charIdx {
				return byteBase + ByteOffset(i)
			}
			_ = rn
			chars++
		}
		byteBase += ByteOffset(chunk.Len())
	}
	return byteBase
}

// ByteToChar converts a byte offset to the char (rune) index at that
// position. The byte offset must land on a UTF-8 rune boundary.
func (r Rope) ByteToChar(byteIdx ByteOffset) uint64 {
	if r.root == nil || byteIdx == 0 {
		return 0
	}
	if byteIdx >= r.Len() {
		return r.root.summary.Chars
	}

	node := r.root
	charBase := uint64(0)
	for !node.IsLeaf() {
		idx, rem := node.findChildByOffset(byteIdx)
		for i := 0; i < idx; i++ {
			charBase += node.childSummaries[i].Chars
		}
		node = node.children[idx]
		byteIdx = rem
	}

	var bytes ByteOffset
	for _, chunk := range node.chunks {
		s := chunk.String()
		chunkLen := ByteOffset(len(s))
		if bytes+chunkLen <= byteIdx {
			charBase += uint64(chunk.Summary().Chars)
			bytes += chunkLen
			continue
		}
		target := int(byteIdx - bytes)
		for i := range s {
			if i >= target {
				break
			}
			charBase++
		}
		return charBase
	}
	return charBase
}

// CharAt returns the rune at the given char index.
// Returns (0, false) if the index is out of range.
func (r Rope) CharAt(charIdx uint64) (rune, bool) {
	if charIdx >= r.CharLen() {
		return 0, false
	}
	b := r.CharToByte(charIdx)
	s := r.Slice(b, r.Len())
	rn, size := utf8.DecodeRuneInString(s)
	if rn == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return rn, true
}

// CharToLine converts a char index to its 0-indexed line number.
func (r Rope) CharToLine(charIdx uint64) uint32 {
	return r.OffsetToPoint(r.CharToByte(charIdx)).Line
}

// LineToChar returns the char index of the start of the given line.
func (r Rope) LineToChar(line uint32) uint64 {
	return r.ByteToChar(r.LineStartOffset(line))
}

// InsertChar inserts text at the given char offset.
// Returns a new rope; original is unchanged.
func (r Rope) InsertChar(charIdx uint64, text string) Rope {
	return r.Insert(r.CharToByte(charIdx), text)
}

// RemoveChars removes the runes in the char range [start, end).
// Returns a new rope; original is unchanged.
func (r Rope) RemoveChars(start, end uint64) Rope {
	if start >= end {
		return r
	}
	return r.Delete(r.CharToByte(start), r.CharToByte(end))
}

// ChunkAtByte returns the chunk containing the given byte offset, along
// with the byte/char/line position of the start of that chunk. This is
// the building block incremental consumers (cursor motion, syntax
// parsing) use to walk the rope without re-deriving tree position on
// every step.
type ChunkAt struct {
	Bytes          string
	ChunkStartByte ByteOffset
	ChunkStartChar uint64
	ChunkStartLine uint32
}

// ChunkAtByte locates the chunk covering byteIdx.
func (r Rope) ChunkAtByte(byteIdx ByteOffset) (ChunkAt, bool) {
	if r.root == nil || r.Len() == 0 {
		return ChunkAt{}, false
	}
	if byteIdx > r.Len() {
		byteIdx = r.Len()
	}

	node := r.root
	byteBase := ByteOffset(0)
	charBase := uint64(0)
	lineBase := uint32(0)
	offset := byteIdx

	for !node.IsLeaf() {
		idx, rem := node.findChildByOffset(offset)
		for i := 0; i < idx; i++ {
			byteBase += node.childSummaries[i].Bytes
			charBase += node.childSummaries[i].Chars
			lineBase += node.childSummaries[i].Lines
		}
		node = node.children[idx]
		offset = rem
	}

	chunkByte := byteBase
	chunkChar := charBase
	chunkLine := lineBase
	remaining := int(offset)

	for i, chunk := range node.chunks {
		chunkLen := chunk.Len()
		if remaining < chunkLen || i == len(node.chunks)-1 {
			return ChunkAt{
				Bytes:          chunk.String(),
				ChunkStartByte: chunkByte,
				ChunkStartChar: chunkChar,
				ChunkStartLine: chunkLine,
			}, true
		}
		chunkByte += ByteOffset(chunkLen)
		chunkChar += chunk.Summary().Chars
		chunkLine += chunk.Summary().Lines
		remaining -= chunkLen
	}

	return ChunkAt{}, false
}
