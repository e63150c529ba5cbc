package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle_StopIsIdempotent(t *testing.T) {
	h, ctx := newHandle(context.Background())
	assert.NotEmpty(t, h.ID())
	assert.True(t, h.Polling())

	h.Stop()
	h.Stop()

	assert.False(t, h.Polling())
	assert.Error(t, ctx.Err())
}

func TestHandle_EmitOnce(t *testing.T) {
	h, ctx := newHandle(context.Background())
	var got []Event
	hooks := Hooks{OnEvent: func(e Event) {
		got = append(got, e)
		h.Stop()
	}}

	h.emit(hooks, Event{Kind: KindExportComplete})
	h.emit(hooks, Event{Kind: KindPollingError})
	h.finish()

	assert.Len(t, got, 1)
	assert.Equal(t, KindExportComplete, got[0].Kind)
	assert.Error(t, ctx.Err())
	assert.False(t, h.Polling())
	<-h.Done()
}

func TestHandle_NoEventAfterStop(t *testing.T) {
	h, _ := newHandle(context.Background())
	called := false
	h.Stop()
	h.emit(Hooks{OnEvent: func(Event) { called = true }}, Event{Kind: KindExportError})
	assert.False(t, called)
}

func TestHandle_StopDoesNotWaitForRunningCallback(t *testing.T) {
	h, _ := newHandle(context.Background())
	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	hooks := Hooks{OnEvent: func(Event) {
		calls++
		close(entered)
		<-release
	}}

	go h.emit(hooks, Event{Kind: KindExportComplete})
	<-entered

	h.Stop()
	assert.False(t, h.Polling())
	close(release)

	h.emit(hooks, Event{Kind: KindPollingError})
	assert.Equal(t, 1, calls)
}

func TestHooks_NilCallback(t *testing.T) {
	assert.NotPanics(t, func() { Hooks{}.emit(Event{}) })
}
