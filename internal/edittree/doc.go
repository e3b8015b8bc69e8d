// Package edittree implements a persistent, branching undo/redo tree.
//
// Unlike a linear undo stack, every edit made after an undo creates a
// new sibling branch rather than discarding the redone-over history:
// nothing is ever lost. Revisions live in an arena keyed by a stable
// integer ID rather than being linked by pointers, so the tree has no
// ownership cycles and old branches can be walked, diffed or described
// long after they stop being the current path.
package edittree
