package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/jonboulle/clockwork"
)

// HubPoller re-queries hub metadata until the export is ready or failed.
type HubPoller struct {
	Fetcher MetadataFetcher
	Clock   clockwork.Clock
}

// Poll starts the loop and returns at once. The first query is issued
// immediately; later ones follow interval after the previous answer.
// A query error ends the loop with a PollingError and is never retried.
func (p *HubPoller) Poll(ctx context.Context, params model.ExportParams, interval time.Duration, hooks Hooks) *Handle {
	clock := p.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	h, ctx := newHandle(ctx)
	downloadID := params.DownloadID()
	fields := logger.Fields{"poll_id": h.ID(), "download_id": downloadID, "target": model.TargetHub}

	go func() {
		defer h.finish()
		logger.Debug("Polling started", fields)

		for {
			md, err := p.Fetcher.FetchMetadata(ctx, params)
			if ctx.Err() != nil {
				logger.Debug("Polling stopped", fields)
				return
			}
			if err != nil {
				logger.Warn("Polling failed", fields, logger.Fields{"error": err.Error()})
				h.emit(hooks, Event{Kind: KindPollingError, DownloadID: downloadID, Err: err})
				return
			}

			switch {
			case md.Status == model.StatusReady:
				logger.Debug("Export ready", fields)
				h.emit(hooks, Event{Kind: KindExportComplete, DownloadID: downloadID, Metadata: &md})
				return
			case md.Status.IsError():
				logger.Warn("Export failed", fields, logger.Fields{"status": md.Status})
				h.emit(hooks, Event{Kind: KindExportError, DownloadID: downloadID, Metadata: &md, Err: hubExportError(md)})
				return
			}

			select {
			case <-ctx.Done():
				logger.Debug("Polling stopped", fields)
				return
			case <-clock.After(interval):
			}
		}
	}()
	return h
}

func hubExportError(md model.DownloadMetadata) error {
	if len(md.Errors) == 0 {
		return fmt.Errorf("%w: status %s", errors.ErrExportFailed, md.Status)
	}
	return fmt.Errorf("%w: status %s: %s", errors.ErrExportFailed, md.Status, strings.Join(md.Errors, "; "))
}
