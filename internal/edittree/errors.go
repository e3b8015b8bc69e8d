package edittree

import "errors"

// Errors returned by edit tree operations.
var (
	// ErrNothingToUndo indicates the current revision has no parent.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the current revision has no children.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrNoBranch indicates there is no sibling branch in the requested direction.
	ErrNoBranch = errors.New("no branch in that direction")

	// ErrRevisionNotFound indicates a revision ID does not exist in the arena.
	ErrRevisionNotFound = errors.New("revision not found")
)
