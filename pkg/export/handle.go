package export

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Handle controls one running poll loop.
type Handle struct {
	id     string
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	stopped bool
}

func newHandle(parent context.Context) (*Handle, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	return &Handle{
		id:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}, ctx
}

// ID is a random identifier used to correlate the loop's log lines.
func (h *Handle) ID() string { return h.id }

// Stop cancels the loop. It is safe to call more than once and from inside
// an event callback. No event starts after Stop returns; a callback that is
// already running is not waited for.
func (h *Handle) Stop() {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
	h.cancel()
}

// Done is closed when the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the loop goroutine has exited.
func (h *Handle) Wait() { <-h.done }

// Polling reports whether the loop is still active.
func (h *Handle) Polling() bool {
	select {
	case <-h.done:
		return false
	default:
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.stopped
}

// emit delivers the terminal event unless the handle was stopped first.
// Claiming the stop before calling out keeps a Stop from the callback a no-op.
func (h *Handle) emit(hooks Hooks, e Event) {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	h.mu.Unlock()
	h.cancel()
	hooks.emit(e)
}

func (h *Handle) finish() {
	h.cancel()
	close(h.done)
}
