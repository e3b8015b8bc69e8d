// Package diff holds the minimal edit descriptor the buffer engine
// threads between the cursor, the edit tree and the syntax tree.
package diff

import "github.com/arcweave/runepad/internal/rope"

// OpaqueDiff describes a single contiguous text change as a byte range
// replacement, without any knowledge of what the replaced or inserted
// text contains. It is the smallest unit the edit tree and the syntax
// tree agree on: "bytes [ByteIndex, ByteIndex+OldLength) became
// NewLength bytes of something".
type OpaqueDiff struct {
	ByteIndex rope.ByteOffset
	OldLength rope.ByteOffset
	NewLength rope.ByteOffset
}

// Empty returns the zero-length, no-op diff.
func Empty() OpaqueDiff {
	return OpaqueDiff{}
}

// IsEmpty reports whether the diff changes nothing.
func (d OpaqueDiff) IsEmpty() bool {
	return d.OldLength == 0 && d.NewLength == 0
}

// Reverse returns the diff that undoes d: old and new lengths swap, but
// the byte index stays fixed since both the forward and reverse edits
// start at the same position.
func (d OpaqueDiff) Reverse() OpaqueDiff {
	return OpaqueDiff{
		ByteIndex: d.ByteIndex,
		OldLength: d.NewLength,
		NewLength: d.OldLength,
	}
}

// OldEnd returns the byte offset one past the end of the replaced span.
func (d OpaqueDiff) OldEnd() rope.ByteOffset {
	return d.ByteIndex + d.OldLength
}

// NewEnd returns the byte offset one past the end of the inserted span.
func (d OpaqueDiff) NewEnd() rope.ByteOffset {
	return d.ByteIndex + d.NewLength
}

// Delta returns the net change in buffer length caused by the diff.
func (d OpaqueDiff) Delta() int64 {
	return int64(d.NewLength) - int64(d.OldLength)
}

// Insertion builds the diff for inserting text of the given byte length
// at offset, replacing nothing.
func Insertion(offset rope.ByteOffset, newLength rope.ByteOffset) OpaqueDiff {
	return OpaqueDiff{ByteIndex: offset, NewLength: newLength}
}

// Deletion builds the diff for removing oldLength bytes starting at
// offset, inserting nothing.
func Deletion(offset, oldLength rope.ByteOffset) OpaqueDiff {
	return OpaqueDiff{ByteIndex: offset, OldLength: oldLength}
}

// TransformOffset reports where a byte offset lands after d is applied.
// An offset inside the replaced span collapses to the end of the new
// span; an offset after the span shifts by d's delta.
func TransformOffset(offset rope.ByteOffset, d OpaqueDiff) rope.ByteOffset {
	if offset <= d.ByteIndex {
		return offset
	}
	if offset >= d.OldEnd() {
		delta := d.Delta()
		if delta >= 0 {
			return offset + rope.ByteOffset(delta)
		}
		return offset - rope.ByteOffset(-delta)
	}
	return d.NewEnd()
}

// Compose merges two diffs applied back to back into a single diff
// covering the same net change, when the second diff's range falls
// entirely within the span the first diff just inserted.
func Compose(first, second OpaqueDiff) (OpaqueDiff, bool) {
	if second.ByteIndex < first.ByteIndex || second.OldEnd() > first.NewEnd() {
		return OpaqueDiff{}, false
	}

	return OpaqueDiff{
		ByteIndex: first.ByteIndex,
		OldLength: first.OldLength,
		NewLength: first.NewLength - second.OldLength + second.NewLength,
	}, true
}
