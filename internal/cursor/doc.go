// Package cursor implements the single editing cursor: its position,
// optional selection anchor, preferred column for vertical motion, and
// the editing operations that turn a keystroke into an OpaqueDiff
// against a rope.
package cursor
