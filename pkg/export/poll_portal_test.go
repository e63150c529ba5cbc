package export_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/export"
	mock_export "github.com/cperrin88/exportpoll/pkg/export/mocks"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/cperrin88/exportpoll/pkg/portal"
	mock_portal "github.com/cperrin88/exportpoll/pkg/portal/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	portalParams = model.ExportParams{
		DatasetID:    "abc_0",
		Target:       model.TargetPortal,
		Format:       model.FormatCSV,
		SpatialRefID: "4326",
	}
	portalJob = export.Job{
		DownloadID:    portalParams.DownloadID(),
		JobID:         "job1",
		ExportItemID:  "exp1",
		ExportCreated: testNow.Add(-time.Minute),
	}
)

type portalPollFixture struct {
	client    *mock_portal.MockClient
	completer *mock_export.MockJobCompleter
	clock     *clockwork.FakeClock
	poller    *export.PortalPoller
	rec       *eventRecorder
}

func newPortalPollFixture(t *testing.T) *portalPollFixture {
	ctrl := gomock.NewController(t)
	f := &portalPollFixture{
		client:    mock_portal.NewMockClient(ctrl),
		completer: mock_export.NewMockJobCompleter(ctrl),
		clock:     clockwork.NewFakeClockAt(testNow),
		rec:       &eventRecorder{},
	}
	f.poller = &export.PortalPoller{Client: f.client, Completer: f.completer, Owner: "owner", Clock: f.clock}
	return f
}

func (f *portalPollFixture) start(t *testing.T) *export.Handle {
	t.Helper()
	h := f.poller.Poll(context.Background(), portalParams, portalJob, 2*time.Second, f.rec.hooks())
	blockUntil(t, f.clock, 1)
	return h
}

func (f *portalPollFixture) expectStatus(st *portal.JobStatus, err error) *gomock.Call {
	return f.client.EXPECT().JobStatus(gomock.Any(), "owner", "exp1", "job1").Return(st, err)
}

func TestPortalPoller_ProcessingThenCompleted(t *testing.T) {
	f := newPortalPollFixture(t)
	calls := make(chan struct{}, 2)
	signal := func(st string) func(context.Context, string, string, string) (*portal.JobStatus, error) {
		return func(context.Context, string, string, string) (*portal.JobStatus, error) {
			calls <- struct{}{}
			return &portal.JobStatus{ItemID: "exp1", Status: st}, nil
		}
	}
	ready := model.DownloadMetadata{DownloadID: portalJob.DownloadID, Status: model.StatusReady, DownloadURL: "https://portal/data"}

	gomock.InOrder(
		f.client.EXPECT().JobStatus(gomock.Any(), "owner", "exp1", "job1").DoAndReturn(signal(portal.JobProcessing)),
		f.client.EXPECT().JobStatus(gomock.Any(), "owner", "exp1", "job1").DoAndReturn(signal(portal.JobCompleted)),
		f.completer.EXPECT().Complete(gomock.Any(), portalParams, portalJob).Return(ready, nil),
	)

	h := f.start(t)
	f.clock.Advance(2 * time.Second)
	receive(t, calls)
	assert.Empty(t, f.rec.all())

	f.clock.Advance(2 * time.Second)
	receive(t, calls)
	waitDone(t, h)

	events := f.rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, export.KindExportComplete, events[0].Kind)
	require.NotNil(t, events[0].Metadata)
	assert.Equal(t, ready, *events[0].Metadata)
}

func TestPortalPoller_JobFailed(t *testing.T) {
	f := newPortalPollFixture(t)
	f.expectStatus(&portal.JobStatus{Status: portal.JobFailed, StatusMessage: "invalid spatial reference"}, nil)

	h := f.start(t)
	f.clock.Advance(2 * time.Second)
	waitDone(t, h)

	events := f.rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, export.KindExportError, events[0].Kind)
	assert.ErrorIs(t, events[0].Err, errors.ErrExportFailed)
	assert.Contains(t, events[0].Err.Error(), "invalid spatial reference")
	require.NotNil(t, events[0].Metadata)
	assert.Equal(t, model.StatusError, events[0].Metadata.Status)
	assert.Equal(t, []string{"invalid spatial reference"}, events[0].Metadata.Errors)
}

func TestPortalPoller_StatusRequestFails(t *testing.T) {
	f := newPortalPollFixture(t)
	f.expectStatus(nil, errors.NewRemoteServiceError(500, "https://portal/status", ""))

	h := f.start(t)
	f.clock.Advance(2 * time.Second)
	waitDone(t, h)

	events := f.rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, export.KindPollingError, events[0].Kind)
	assert.ErrorIs(t, events[0].Err, errors.ErrRemoteService)
}

func TestPortalPoller_CompletionErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want export.Kind
	}{
		{
			name: "completion failure is an export error",
			err:  errors.NewExportCompletionError("exp1", fmt.Errorf("move failed")),
			want: export.KindExportError,
		},
		{
			name: "anything else is a polling error",
			err:  fmt.Errorf("unexpected"),
			want: export.KindPollingError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPortalPollFixture(t)
			f.expectStatus(&portal.JobStatus{Status: portal.JobCompleted}, nil)
			f.completer.EXPECT().Complete(gomock.Any(), portalParams, portalJob).Return(model.DownloadMetadata{}, tt.err)

			h := f.start(t)
			f.clock.Advance(2 * time.Second)
			waitDone(t, h)

			events := f.rec.all()
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].Kind)
			assert.ErrorIs(t, events[0].Err, tt.err)
		})
	}
}

func TestPortalPoller_StopBeforeFirstTick(t *testing.T) {
	f := newPortalPollFixture(t)

	h := f.start(t)
	assert.True(t, h.Polling())
	h.Stop()
	h.Stop()
	waitDone(t, h)

	f.clock.Advance(time.Minute)
	assert.Empty(t, f.rec.all())
	assert.False(t, h.Polling())
}

func TestPortalPoller_StopDuringCompletion(t *testing.T) {
	f := newPortalPollFixture(t)
	f.expectStatus(&portal.JobStatus{Status: portal.JobCompleted}, nil)

	var h *export.Handle
	started := make(chan struct{})
	f.completer.EXPECT().Complete(gomock.Any(), portalParams, portalJob).DoAndReturn(
		func(ctx context.Context, _ model.ExportParams, _ export.Job) (model.DownloadMetadata, error) {
			close(started)
			<-ctx.Done()
			return model.DownloadMetadata{}, ctx.Err()
		})

	h = f.start(t)
	f.clock.Advance(2 * time.Second)
	receive(t, started)
	h.Stop()
	waitDone(t, h)

	assert.Empty(t, f.rec.all())
}
