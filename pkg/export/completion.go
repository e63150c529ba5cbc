package export

import (
	"context"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/cperrin88/exportpoll/pkg/portal"
	"github.com/jonboulle/clockwork"
)

// Completer turns a freshly exported item into a cached export: it tags the
// item with its provenance, makes it private and files it in the holding folder.
type Completer struct {
	client portal.Client
	cfg    PortalConfig
	clock  clockwork.Clock
}

// NewCompleter creates a Completer. A nil clock means the real clock.
func NewCompleter(client portal.Client, cfg PortalConfig, clock clockwork.Clock) *Completer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Completer{client: client, cfg: cfg.withDefaults(), clock: clock}
}

// Complete runs the completion steps for job. On failure the export item is
// deleted and an *errors.ExportCompletionError is returned. When ctx is
// cancelled the item is left in place and ctx's error is returned.
func (c *Completer) Complete(ctx context.Context, params model.ExportParams, job Job) (model.DownloadMetadata, error) {
	fields := logger.Fields{"download_id": job.DownloadID, "export_item_id": job.ExportItemID}

	if err := c.finalize(ctx, params, job); err != nil {
		if ctx.Err() != nil {
			return model.DownloadMetadata{}, ctx.Err()
		}
		logger.Warn("Export completion failed, removing export item", fields, logger.Fields{"error": err.Error()})
		if derr := c.client.DeleteItem(ctx, c.cfg.Owner, job.ExportItemID); derr != nil {
			logger.Error("Failed to remove export item", fields, logger.Fields{"error": derr.Error()})
		}
		return model.DownloadMetadata{}, errors.NewExportCompletionError(job.ExportItemID, err)
	}

	downloadID := job.DownloadID
	if downloadID == "" {
		downloadID = params.DownloadID()
	}
	logger.Debug("Export completed", fields)
	return model.DownloadMetadata{
		DownloadID:   downloadID,
		Status:       model.StatusReady,
		LastModified: model.TimePtr(c.clock.Now()),
		DownloadURL:  c.client.ItemDataURL(job.ExportItemID),
	}, nil
}

func (c *Completer) finalize(ctx context.Context, params model.ExportParams, job Job) error {
	itemID, layerID, _ := model.ParseDatasetID(params.DatasetID)
	created := job.ExportCreated
	if created.IsZero() {
		created = c.clock.Now()
	}

	keywords := provenanceKeywords(itemID, layerID, params.SpatialRefID, created)
	if err := c.client.UpdateTypeKeywords(ctx, c.cfg.Owner, job.ExportItemID, keywords); err != nil {
		return errors.Wrap(err, "failed to tag export item")
	}
	if err := c.client.SetAccess(ctx, c.cfg.Owner, job.ExportItemID, portal.AccessPrivate); err != nil {
		return errors.Wrap(err, "failed to share export item")
	}

	folderID, err := c.holdingFolder(ctx)
	if err != nil {
		return err
	}
	if err := c.client.MoveItem(ctx, c.cfg.Owner, job.ExportItemID, folderID); err != nil {
		if portal.KindOf(err) == portal.KindAlreadyInFolder {
			return nil
		}
		return errors.Wrapf(err, "failed to move export item to folder %q", c.cfg.HoldingFolder)
	}
	return nil
}

// holdingFolder returns the id of the holding folder, creating it when absent.
// Concurrent jobs may race to create it; the portal decides the outcome.
func (c *Completer) holdingFolder(ctx context.Context) (string, error) {
	folders, err := c.client.ListFolders(ctx, c.cfg.Owner)
	if err != nil {
		return "", errors.Wrap(err, "failed to list folders")
	}
	for _, f := range folders {
		if f.Title == c.cfg.HoldingFolder {
			return f.ID, nil
		}
	}
	folder, err := c.client.CreateFolder(ctx, c.cfg.Owner, c.cfg.HoldingFolder)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create folder %q", c.cfg.HoldingFolder)
	}
	return folder.ID, nil
}
