package rope

import "github.com/rivo/uniseg"

// Clone returns a cheap copy of the rope. Because Rope is an immutable,
// structurally-shared value, Clone only copies the root pointer; the
// underlying tree is shared until either copy is mutated (which, being
// immutable, never happens in place).
func (r Rope) Clone() Rope {
	return Rope{root: r.root}
}

// IsGraphemeBoundary reports whether byteIdx falls on a grapheme cluster
// boundary. A grapheme cluster is what a user perceives as a single
// character (e.g. "é" formed of "e" + combining acute, or a flag emoji
// formed of two regional indicators).
func (r Rope) IsGraphemeBoundary(byteIdx ByteOffset) bool {
	if byteIdx == 0 || byteIdx >= r.Len() {
		return true
	}

	// uniseg needs surrounding context; a window around byteIdx is
	// sufficient since grapheme clusters are bounded in byte length.
	const window = 64
	start := byteIdx
	if start > window {
		start -= window
	} else {
		start = 0
	}
	end := byteIdx + window
	if end > r.Len() {
		end = r.Len()
	}

	s := r.Slice(start, end)
	target := int(byteIdx - start)

	pos := 0
	for len(s) > 0 {
		if pos == target {
			return true
		}
		if pos > target {
			return false
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		pos += len(cluster)
		s = rest
	}
	return pos == target
}

// NextGraphemeBoundary returns the byte offset of the next grapheme
// cluster boundary after byteIdx (the end of the cluster starting at
// byteIdx). Returns Len() if byteIdx is at or past the end.
func (r Rope) NextGraphemeBoundary(byteIdx ByteOffset) ByteOffset {
	length := r.Len()
	if byteIdx >= length {
		return length
	}

	const window = 256
	end := byteIdx + window
	if end > length {
		end = length
	}
	s := r.Slice(byteIdx, end)
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if len(cluster) == 0 {
		return length
	}
	return byteIdx + ByteOffset(len(cluster))
}

// PrevGraphemeBoundary returns the byte offset of the previous grapheme
// cluster boundary before byteIdx. Returns 0 if byteIdx is at or before
// the start.
func (r Rope) PrevGraphemeBoundary(byteIdx ByteOffset) ByteOffset {
	if byteIdx == 0 {
		return 0
	}

	const window = 256
	start := byteIdx
	if start > window {
		start -= window
	} else {
		start = 0
	}
	s := r.Slice(start, byteIdx)

	var lastBoundary ByteOffset
	pos := ByteOffset(0)
	for len(s) > 0 {
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		clusterLen := ByteOffset(len(cluster))
		if pos+clusterLen >= byteIdx-start {
			break
		}
		lastBoundary = pos + clusterLen
		pos += clusterLen
		s = rest
	}
	return start + lastBoundary
}
