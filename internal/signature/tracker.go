package signature

import (
	"context"
	"sync"
)

// Tracker tags submissions with increasing sequence numbers so that only the
// reply to the latest one is applied. Starting a submission cancels the
// context of the one before it.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Begin starts a new submission derived from parent.
func (t *Tracker) Begin(parent context.Context) (uint64, context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.seq++
	t.cancel = cancel
	return t.seq, ctx
}

// Finish reports whether seq is still the latest submission. If it is, the
// submission's context is released.
func (t *Tracker) Finish(seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq || t.cancel == nil {
		return false
	}
	t.cancel()
	t.cancel = nil
	return true
}

// Cancel aborts the in-flight submission, if any. Its reply will be dropped.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
}

// Pending reports whether a submission is in flight.
func (t *Tracker) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *Tracker) Current() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}
