// Package syntax maintains an incrementally-updated, cancelable
// tree-sitter parse tree for a buffer. At most one parse is ever
// outstanding at a time; starting a new one cancels and discards the
// previous, and a completion that arrives after its task has been
// superseded is dropped rather than applied.
package syntax
