package export

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/cperrin88/exportpoll/pkg/portal"
	"github.com/jonboulle/clockwork"
)

// PortalPoller checks a portal export job at a fixed cadence and runs the
// completion handler once the job is done.
type PortalPoller struct {
	Client    portal.Client
	Completer JobCompleter
	Owner     string
	Clock     clockwork.Clock
}

// Poll starts the loop and returns at once. The first check happens one
// interval after the start.
func (p *PortalPoller) Poll(ctx context.Context, params model.ExportParams, job Job, interval time.Duration, hooks Hooks) *Handle {
	clock := p.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	h, ctx := newHandle(ctx)
	downloadID := job.DownloadID
	if downloadID == "" {
		downloadID = params.DownloadID()
	}
	fields := logger.Fields{
		"poll_id":     h.ID(),
		"download_id": downloadID,
		"job_id":      job.JobID,
		"target":      params.Target,
	}

	go func() {
		defer h.finish()
		ticker := clock.NewTicker(interval)
		defer ticker.Stop()
		logger.Debug("Polling started", fields)

		for {
			select {
			case <-ctx.Done():
				logger.Debug("Polling stopped", fields)
				return
			case <-ticker.Chan():
			}

			if done := p.check(ctx, h, params, job, downloadID, hooks, fields); done {
				return
			}
		}
	}()
	return h
}

// check runs one status request and reports whether the loop is finished.
func (p *PortalPoller) check(ctx context.Context, h *Handle, params model.ExportParams, job Job, downloadID string, hooks Hooks, fields logger.Fields) bool {
	js, err := p.Client.JobStatus(ctx, p.Owner, job.ExportItemID, job.JobID)
	if ctx.Err() != nil {
		return true
	}
	if err != nil {
		logger.Warn("Polling failed", fields, logger.Fields{"error": err.Error()})
		h.emit(hooks, Event{Kind: KindPollingError, DownloadID: downloadID, Err: err})
		return true
	}

	switch js.Status {
	case portal.JobCompleted:
		md, err := p.Completer.Complete(ctx, params, job)
		if ctx.Err() != nil {
			return true
		}
		if err != nil {
			kind := KindPollingError
			var completionErr *errors.ExportCompletionError
			if stderrors.As(err, &completionErr) {
				kind = KindExportError
			}
			logger.Warn("Export completion failed", fields, logger.Fields{"error": err.Error()})
			h.emit(hooks, Event{Kind: kind, DownloadID: downloadID, Err: err})
			return true
		}
		logger.Debug("Export ready", fields)
		h.emit(hooks, Event{Kind: KindExportComplete, DownloadID: downloadID, Metadata: &md})
		return true

	case portal.JobFailed:
		logger.Warn("Export job failed", fields, logger.Fields{"message": js.StatusMessage})
		md := model.DownloadMetadata{DownloadID: downloadID, Status: model.StatusError}
		if js.StatusMessage != "" {
			md.Errors = []string{js.StatusMessage}
		}
		h.emit(hooks, Event{
			Kind:       KindExportError,
			DownloadID: downloadID,
			Metadata:   &md,
			Err:        fmt.Errorf("%w: %s", errors.ErrExportFailed, js.StatusMessage),
		})
		return true

	default:
		return false
	}
}
