package edittree

import (
	"testing"

	"github.com/arcweave/runepad/internal/diff"
	"github.com/arcweave/runepad/internal/rope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffSummaryReportsLineChanges(t *testing.T) {
	tr := New(rope.FromString("one\ntwo\nthree\n"))
	from := tr.Current()

	next := rope.FromString("one\ntwo\nTHREE\nfour\n")
	d := diff.OpaqueDiff{ByteIndex: 8, OldLength: 5, NewLength: 10}
	to := tr.Commit(d, next)

	result, err := tr.DiffSummary(from, to, DefaultDiffOptions())
	require.NoError(t, err)
	assert.True(t, result.HasChanges())
}

func TestDiffSummaryUnknownRevisionErrors(t *testing.T) {
	tr := New(rope.FromString("x"))
	_, err := tr.DiffSummary(RevisionID(999), tr.Current(), DefaultDiffOptions())
	assert.ErrorIs(t, err, ErrRevisionNotFound)
}

func TestUnifiedDiffEmptyWhenNoChanges(t *testing.T) {
	result := DiffResult{Hunks: []LineDiff{{Type: LineEqual, Lines: []string{"same"}}}}
	assert.Equal(t, "", UnifiedDiff(result, "a", "b"))
}
