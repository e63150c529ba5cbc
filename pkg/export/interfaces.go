//go:generate mockgen -destination=./mocks/export.go . MetadataFetcher,HubBackend,PortalBackend,JobCompleter

package export

import (
	"context"

	"github.com/cperrin88/exportpoll/pkg/model"
)

// MetadataFetcher answers one metadata query for an export.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, params model.ExportParams) (model.DownloadMetadata, error)
}

// HubBackend is the subset of the hub client used by the service.
type HubBackend interface {
	MetadataFetcher
	Submit(ctx context.Context, params model.ExportParams) (string, error)
}

// PortalBackend submits and inspects exports on a portal or enterprise instance.
type PortalBackend interface {
	MetadataFetcher
	Submit(ctx context.Context, params model.ExportParams) (Job, error)
}

// JobCompleter finalizes the item produced by a completed portal export job.
type JobCompleter interface {
	Complete(ctx context.Context, params model.ExportParams, job Job) (model.DownloadMetadata, error)
}
