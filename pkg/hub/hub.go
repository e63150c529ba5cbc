// Package hub talks to the hub indexing service: it composes download URLs,
// submits transform jobs and reads back the cached-export record for a query.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/http"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/google/go-querystring/query"
)

// downloadsPath is the per-dataset downloads resource below the API root.
const downloadsPath = "api/v3/datasets/%s/downloads"

// Client submits exports to and reads download metadata from the hub.
type Client struct {
	baseURL string
	http    http.Client
}

// NewClient creates a hub client rooted at baseURL (e.g. https://hub.example.com).
func NewClient(baseURL string, httpClient http.Client) *Client {
	return &Client{baseURL: baseURL, http: httpClient}
}

// downloadQuery is the filter part of a download request. The same query
// string is used to submit a job and to look up its cached result.
type downloadQuery struct {
	Format       string `url:"format"`
	SpatialRefID string `url:"spatialRefId,omitempty"`
	Geometry     string `url:"geometry,omitempty"`
	Where        string `url:"where,omitempty"`
}

// DownloadsURL builds the downloads resource URL for a dataset.
func (c *Client) DownloadsURL(datasetID string) (string, error) {
	if datasetID == "" {
		return "", errors.ErrDatasetIDEmpty
	}
	u, err := url.JoinPath(c.baseURL, fmt.Sprintf(downloadsPath, url.PathEscape(datasetID)))
	if err != nil {
		return "", errors.ErrInvalidURLWithKey("hub_url", c.baseURL)
	}
	return u, nil
}

// Query encodes the filter parameters of an export. It fails with an
// UnsupportedFormatError when the hub cannot produce the format.
func Query(params model.ExportParams) (url.Values, error) {
	format, err := model.HubFormat(params.Format)
	if err != nil {
		return nil, err
	}
	v, err := query.Values(downloadQuery{
		Format:       format,
		SpatialRefID: params.SpatialRefID,
		Geometry:     params.Geometry,
		Where:        params.Where,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode download query")
	}
	return v, nil
}

func (c *Client) request(params model.ExportParams) (string, url.Values, error) {
	q, err := Query(params)
	if err != nil {
		return "", nil, err
	}
	u, err := c.DownloadsURL(params.DatasetID)
	if err != nil {
		return "", nil, err
	}
	return u, q, nil
}

// Submit starts a transform job and returns the download id of the export.
// Format errors are reported before any request is made.
func (c *Client) Submit(ctx context.Context, params model.ExportParams) (string, error) {
	u, q, err := c.request(params)
	if err != nil {
		return "", err
	}
	if err := c.http.PostForm(ctx, u, q, nil, nil); err != nil {
		return "", err
	}
	return params.DownloadID(), nil
}

// record is one cached-export entry of the downloads collection.
type record struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		Status              model.Status `json:"status"`
		LastEditDate        *time.Time   `json:"lastEditDate"`
		LastModified        *time.Time   `json:"lastModified"`
		ContentLastModified *time.Time   `json:"contentLastModified"`
		ContentLength       int64        `json:"contentLength"`
		CacheTime           int64        `json:"cacheTime"`
		DownloadURL         string       `json:"downloadUrl"`
		Errors              []string     `json:"errors"`
	} `json:"attributes"`
}

type collection struct {
	Data json.RawMessage `json:"data"`
}

// FetchMetadata performs one status query. An empty collection yields
// not_ready; a single record is mapped field for field, its status verbatim.
func (c *Client) FetchMetadata(ctx context.Context, params model.ExportParams) (model.DownloadMetadata, error) {
	downloadID := params.DownloadID()
	u, q, err := c.request(params)
	if err != nil {
		return model.DownloadMetadata{}, err
	}

	var body collection
	if err := c.http.GetJSON(ctx, u, q, &body); err != nil {
		return model.DownloadMetadata{}, err
	}

	records, err := decodeRecords(u, body.Data)
	if err != nil {
		return model.DownloadMetadata{}, err
	}
	if len(records) == 0 {
		return model.NotReady(downloadID), nil
	}

	a := records[0].Attributes
	return model.DownloadMetadata{
		DownloadID:          downloadID,
		Status:              a.Status,
		LastEditDate:        a.LastEditDate,
		LastModified:        a.LastModified,
		ContentLastModified: a.ContentLastModified,
		ContentLength:       a.ContentLength,
		CacheTime:           a.CacheTime,
		DownloadURL:         a.DownloadURL,
		Errors:              a.Errors,
	}, nil
}

func decodeRecords(u string, raw json.RawMessage) ([]record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.NewMalformedResponseError(u, `response is missing "data"`)
	}
	if trimmed[0] != '[' {
		return nil, errors.NewMalformedResponseError(u, `response "data" is not an array`)
	}
	var records []record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, errors.NewMalformedResponseError(u, err.Error())
	}
	if len(records) > 1 {
		return nil, errors.NewMalformedResponseError(u,
			fmt.Sprintf(`response "data" contains %d records, expected at most one`, len(records)))
	}
	return records, nil
}
