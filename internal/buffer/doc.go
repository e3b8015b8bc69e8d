// Package buffer coordinates a single editable file: its cursor, its
// edit tree, its syntax tree, and the scroll/viewport state a terminal
// front-end needs to render it. It is the one place that knows how an
// incoming key event becomes a cursor operation, how a cursor
// operation becomes a committed revision, and how a committed revision
// triggers the next (possibly cancelling a still-running) parse.
package buffer
