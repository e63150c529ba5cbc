// Package export submits dataset exports, answers download metadata queries
// and polls running exports until they finish, for both the hub and the
// portal/enterprise backends.
package export

import (
	"context"
	"time"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/cperrin88/exportpoll/pkg/portal"
	"github.com/jonboulle/clockwork"
)

// Service routes export operations to the backend named by the export target.
type Service struct {
	Hub    HubBackend
	Portal PortalBackend

	HubPoller    *HubPoller
	PortalPoller *PortalPoller
}

// NewService wires a Service. portalClient may be nil when no portal is
// configured; portal and enterprise requests then fail with ErrPortalNotConfigured.
func NewService(hub HubBackend, portalClient portal.Client, cfg PortalConfig, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	s := &Service{
		Hub:       hub,
		HubPoller: &HubPoller{Fetcher: hub, Clock: clock},
	}
	if portalClient != nil {
		s.Portal = NewPortalExporter(portalClient, cfg, clock)
		s.PortalPoller = &PortalPoller{
			Client:    portalClient,
			Completer: NewCompleter(portalClient, cfg, clock),
			Owner:     cfg.Owner,
			Clock:     clock,
		}
	}
	return s
}

func (s *Service) portalBackend() (PortalBackend, error) {
	if s.Portal == nil {
		return nil, errors.ErrPortalNotConfigured
	}
	return s.Portal, nil
}

// RequestDatasetExport submits an export job.
func (s *Service) RequestDatasetExport(ctx context.Context, params model.ExportParams) (Job, error) {
	if params.Target.IsPortalFamily() {
		backend, err := s.portalBackend()
		if err != nil {
			return Job{}, err
		}
		return backend.Submit(ctx, params)
	}
	id, err := s.Hub.Submit(ctx, params)
	if err != nil {
		return Job{}, err
	}
	return Job{DownloadID: id}, nil
}

// RequestDownloadMetadata answers one metadata query.
func (s *Service) RequestDownloadMetadata(ctx context.Context, params model.ExportParams) (model.DownloadMetadata, error) {
	if params.Target.IsPortalFamily() {
		backend, err := s.portalBackend()
		if err != nil {
			return model.DownloadMetadata{}, err
		}
		return backend.FetchMetadata(ctx, params)
	}
	return s.Hub.FetchMetadata(ctx, params)
}

// PollDownloadMetadata starts polling an export and returns its handle.
// Portal and enterprise polls need the job returned by RequestDatasetExport.
func (s *Service) PollDownloadMetadata(ctx context.Context, params model.ExportParams, job Job, interval time.Duration, hooks Hooks) (*Handle, error) {
	if interval <= 0 {
		return nil, errors.ErrPollIntervalInvalid
	}
	if params.Target.IsPortalFamily() {
		if s.PortalPoller == nil {
			return nil, errors.ErrPortalNotConfigured
		}
		if job.JobID == "" || job.ExportItemID == "" {
			return nil, errors.ErrJobIDMissing
		}
		return s.PortalPoller.Poll(ctx, params, job, interval, hooks), nil
	}
	return s.HubPoller.Poll(ctx, params, interval, hooks), nil
}
