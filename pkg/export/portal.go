package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/cperrin88/exportpoll/pkg/portal"
	"github.com/cperrin88/exportpoll/pkg/status"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// PortalExporter submits exports to a portal or enterprise instance and
// derives the download status of cached export items.
type PortalExporter struct {
	client portal.Client
	cfg    PortalConfig
	clock  clockwork.Clock
}

// NewPortalExporter creates a PortalExporter. A nil clock means the real clock.
func NewPortalExporter(client portal.Client, cfg PortalConfig, clock clockwork.Clock) *PortalExporter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PortalExporter{client: client, cfg: cfg.withDefaults(), clock: clock}
}

type exportLayer struct {
	ID    int    `json:"id"`
	Where string `json:"where,omitempty"`
}

type spatialReference struct {
	WKID int `json:"wkid"`
}

type exportParameters struct {
	Layers   []exportLayer     `json:"layers,omitempty"`
	TargetSR *spatialReference `json:"targetSR,omitempty"`
}

// buildExportParameters encodes the layer filter and output spatial reference.
// The where clause only applies together with a layer.
func buildExportParameters(params model.ExportParams, layerID string, hasLayer bool) (string, error) {
	var ep exportParameters
	if hasLayer {
		id, err := strconv.Atoi(layerID)
		if err != nil {
			return "", errors.Wrapf(err, "invalid layer id %q", layerID)
		}
		ep.Layers = []exportLayer{{ID: id, Where: params.Where}}
	}
	if params.SpatialRefID != "" {
		wkid, err := strconv.Atoi(params.SpatialRefID)
		if err != nil {
			return "", errors.Wrapf(errors.ErrInvalidSpatialRef, "%q", params.SpatialRefID)
		}
		ep.TargetSR = &spatialReference{WKID: wkid}
	}
	if ep.Layers == nil && ep.TargetSR == nil {
		return "", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ep); err != nil {
		return "", errors.Wrap(err, "failed to encode export parameters")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func validateParams(params model.ExportParams) error {
	if params.DatasetID == "" {
		return errors.ErrDatasetIDEmpty
	}
	if params.Format == "" {
		return errors.ErrFormatEmpty
	}
	return nil
}

// Submit starts an export job and returns its reference. The export time is
// taken before the request is sent.
func (e *PortalExporter) Submit(ctx context.Context, params model.ExportParams) (Job, error) {
	if err := validateParams(params); err != nil {
		return Job{}, err
	}
	if e.cfg.Owner == "" {
		return Job{}, errors.ErrPortalUserMissing
	}

	itemID, layerID, hasLayer := model.ParseDatasetID(params.DatasetID)
	exportParams, err := buildExportParameters(params, layerID, hasLayer)
	if err != nil {
		return Job{}, err
	}

	created := e.clock.Now()
	res, err := e.client.ExportItem(ctx, e.cfg.Owner, portal.ExportRequest{
		ItemID:           itemID,
		ExportFormat:     params.Format,
		ExportParameters: exportParams,
		Title:            params.Title,
	})
	if err != nil {
		return Job{}, errors.Wrapf(err, "failed to export item %s", itemID)
	}

	job := Job{
		DownloadID:    params.DownloadID(),
		JobID:         res.JobID,
		ExportItemID:  res.ExportItemID,
		Size:          res.Size,
		ExportCreated: created,
	}
	logger.Debug("Portal export submitted", logger.Fields{
		"download_id":    job.DownloadID,
		"job_id":         job.JobID,
		"export_item_id": job.ExportItemID,
	})
	return job, nil
}

// FetchMetadata looks up the newest cached export for params and classifies it.
func (e *PortalExporter) FetchMetadata(ctx context.Context, params model.ExportParams) (model.DownloadMetadata, error) {
	if err := validateParams(params); err != nil {
		return model.DownloadMetadata{}, err
	}
	downloadID := params.DownloadID()
	itemID, layerID, hasLayer := model.ParseDatasetID(params.DatasetID)

	item, err := e.client.GetItem(ctx, itemID)
	if err != nil {
		return model.DownloadMetadata{}, errors.Wrapf(err, "failed to get item %s", itemID)
	}

	lastEdit, layerCount, err := e.lastEditDate(ctx, item, layerID, hasLayer)
	if err != nil {
		return model.DownloadMetadata{}, err
	}
	multiLayer := !hasLayer && layerCount > 1

	res, err := e.client.SearchItems(ctx, portal.SearchParams{
		Query:     cachedExportQuery(model.PortalFormat(params.Format, multiLayer), itemID, layerID, params.SpatialRefID),
		SortField: "modified",
		SortOrder: "desc",
		Num:       1,
	})
	if err != nil {
		return model.DownloadMetadata{}, errors.Wrap(err, "failed to search cached exports")
	}

	var cached *portal.Item
	var cachedCreated *time.Time
	if len(res.Results) > 0 {
		cached = &res.Results[0]
		cachedCreated = model.TimePtr(exportCreatedAt(*cached))
	}

	st := status.Classify(status.Input{
		Target:         params.Target,
		CachedCreated:  cachedCreated,
		LastEditDate:   lastEdit,
		ItemDisabled:   item.DownloadsDisabled(),
		FormatDisabled: item.FormatDisabled(params.Format),
		Now:            e.clock.Now(),
		LockWindow:     e.cfg.LockWindow,
	})

	md := model.DownloadMetadata{
		DownloadID:   downloadID,
		Status:       st,
		LastEditDate: lastEdit,
	}
	if cached != nil && servesArtifact(st) {
		md.LastModified = model.TimePtr(cached.Modified.Time())
		md.ContentLength = cached.Size
		md.DownloadURL = e.client.ItemDataURL(cached.ID)
	}

	logger.Debug("Portal metadata classified", logger.Fields{
		"download_id": downloadID,
		"status":      st,
		"multi_layer": multiLayer,
	})
	return md, nil
}

// servesArtifact reports whether a status hands out the cached file.
func servesArtifact(s model.Status) bool {
	switch s {
	case model.StatusReady, model.StatusReadyUnknown, model.StatusStale, model.StatusStaleLocked:
		return true
	default:
		return false
	}
}

// lastEditDate returns the last source edit and the number of layers the
// export covers. Services report edits per layer; everything else falls
// back to the item's modified time.
func (e *PortalExporter) lastEditDate(ctx context.Context, item *portal.Item, layerID string, hasLayer bool) (*time.Time, int, error) {
	fallback := model.TimePtr(item.Modified.Time())
	if !item.IsService() || item.URL == "" {
		return fallback, 1, nil
	}

	var ids []int
	if hasLayer {
		id, err := strconv.Atoi(layerID)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "invalid layer id %q", layerID)
		}
		ids = []int{id}
	} else {
		svc, err := e.client.GetService(ctx, item.URL)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "failed to get service of item %s", item.ID)
		}
		for _, l := range svc.Layers {
			ids = append(ids, l.ID)
		}
		for _, t := range svc.Tables {
			ids = append(ids, t.ID)
		}
	}

	var (
		mu     sync.Mutex
		latest time.Time
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.LayerConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			layer, err := e.client.GetLayer(gctx, item.URL, id)
			if err != nil {
				return errors.Wrapf(err, "failed to get layer %d of item %s", id, item.ID)
			}
			if layer.EditingInfo == nil {
				return nil
			}
			edited := layer.EditingInfo.LastEditDate.Time()
			mu.Lock()
			if edited.After(latest) {
				latest = edited
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if latest.IsZero() {
		return fallback, len(ids), nil
	}
	return &latest, len(ids), nil
}
