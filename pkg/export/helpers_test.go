package export_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cperrin88/exportpoll/pkg/export"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type eventRecorder struct {
	mu     sync.Mutex
	events []export.Event
}

func (r *eventRecorder) hooks() export.Hooks {
	return export.Hooks{OnEvent: func(e export.Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
	}}
}

func (r *eventRecorder) all() []export.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]export.Event(nil), r.events...)
}

func waitDone(t *testing.T, h *export.Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("poll loop did not finish")
	}
}

func blockUntil(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, n))
}

func receive(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("expected backend call did not happen")
	}
}
