package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitDeliversCompletion(t *testing.T) {
	p := New(2)
	defer p.Close()

	id := p.Submit(func(ctx context.Context, id TaskID) any { return 42 })

	select {
	case c := <-p.Completions:
		assert.Equal(t, id, c.ID)
		assert.Equal(t, 42, c.Result)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for completion")
	}
}

func TestCompletionsArriveInFinishOrderNotSubmissionOrder(t *testing.T) {
	p := New(2)
	defer p.Close()

	slow := make(chan struct{})
	slowID := p.Submit(func(ctx context.Context, id TaskID) any {
		<-slow
		return "slow"
	})
	fastID := p.Submit(func(ctx context.Context, id TaskID) any { return "fast" })

	select {
	case c := <-p.Completions:
		assert.Equal(t, fastID, c.ID, "the task submitted second but finishing first should complete first")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the fast completion")
	}

	close(slow)
	select {
	case c := <-p.Completions:
		assert.Equal(t, slowID, c.ID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the slow completion")
	}
}

func TestCloseCancelsContextAndDrainsCompletions(t *testing.T) {
	p := New(1)

	started := make(chan struct{})
	p.Submit(func(ctx context.Context, id TaskID) any {
		close(started)
		<-ctx.Done()
		return "cancelled"
	})
	<-started

	p.Close()

	select {
	case c, ok := <-p.Completions:
		require.True(t, ok)
		assert.Equal(t, "cancelled", c.Result)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the in-flight task to report cancellation")
	}

	_, ok := <-p.Completions
	assert.False(t, ok, "Completions should close once every worker has exited")
}

func TestCancelFlag(t *testing.T) {
	var f CancelFlag
	assert.False(t, f.Cancelled())
	f.Cancel()
	assert.True(t, f.Cancelled())
}
