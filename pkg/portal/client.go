// Package portal is a client for the portal/enterprise content-management
// REST API: items, search, folders, export jobs and service layers.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/http"
	"github.com/google/go-querystring/query"
)

// jobTypeExport is the job type of item export jobs.
const jobTypeExport = "export"

// RESTClient implements Client over HTTP.
type RESTClient struct {
	root  string
	token string
	http  http.Client
}

// NewRESTClient creates a client for the REST root of a portal, for example
// https://www.example.com/sharing/rest. The token is applied by httpClient;
// it is only kept here to build download URLs.
func NewRESTClient(root, token string, httpClient http.Client) *RESTClient {
	return &RESTClient{
		root:  strings.TrimRight(root, "/"),
		token: token,
		http:  httpClient,
	}
}

func (c *RESTClient) endpoint(parts ...string) string {
	escaped := make([]string, 0, len(parts)+1)
	escaped = append(escaped, c.root)
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return strings.Join(escaped, "/")
}

func jsonQuery() url.Values {
	return url.Values{"f": {"json"}}
}

// get performs a GET and decodes the body, turning an embedded error object into *Error.
func (c *RESTClient) get(ctx context.Context, u string, q url.Values, out any) error {
	var raw json.RawMessage
	if err := c.http.GetJSON(ctx, u, q, &raw); err != nil {
		return err
	}
	return decode(u, raw, out)
}

// post performs a form POST and decodes the body, turning an embedded error object into *Error.
func (c *RESTClient) post(ctx context.Context, u string, form any, out any) error {
	var values url.Values
	if form != nil {
		v, err := query.Values(form)
		if err != nil {
			return errors.Wrap(err, "failed to encode form")
		}
		values = v
	}
	var raw json.RawMessage
	if err := c.http.PostForm(ctx, u, jsonQuery(), values, &raw); err != nil {
		return err
	}
	return decode(u, raw, out)
}

func decode(u string, raw json.RawMessage, out any) error {
	var envelope struct {
		Error *Error `json:"error"`
	}
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return errors.NewMalformedResponseError(u, err.Error())
		}
		if envelope.Error != nil {
			return envelope.Error
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewMalformedResponseError(u, err.Error())
	}
	return nil
}

// GetItem fetches an item by id.
func (c *RESTClient) GetItem(ctx context.Context, itemID string) (*Item, error) {
	var item Item
	if err := c.get(ctx, c.endpoint("content", "items", itemID), jsonQuery(), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to get item %s", itemID)
	}
	return &item, nil
}

// SearchItems runs a content search.
func (c *RESTClient) SearchItems(ctx context.Context, params SearchParams) (*SearchResult, error) {
	q, err := query.Values(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode search")
	}
	q.Set("f", "json")

	var result SearchResult
	if err := c.get(ctx, c.endpoint("search"), q, &result); err != nil {
		return nil, errors.Wrap(err, "search failed")
	}
	return &result, nil
}

type updateForm struct {
	TypeKeywords string `url:"typeKeywords"`
}

// UpdateTypeKeywords replaces an item's type keywords.
func (c *RESTClient) UpdateTypeKeywords(ctx context.Context, owner, itemID string, keywords []string) error {
	u := c.endpoint("content", "users", owner, "items", itemID, "update")
	if err := c.post(ctx, u, updateForm{TypeKeywords: strings.Join(keywords, ",")}, nil); err != nil {
		return errors.Wrapf(err, "failed to update item %s", itemID)
	}
	return nil
}

type shareForm struct {
	Everyone bool   `url:"everyone"`
	Org      bool   `url:"org"`
	Groups   string `url:"groups"`
}

// SetAccess sets the sharing level of an item. Private also unshares it from all groups.
func (c *RESTClient) SetAccess(ctx context.Context, owner, itemID string, access Access) error {
	form := shareForm{
		Everyone: access == AccessPublic,
		Org:      access == AccessPublic || access == AccessOrg,
	}
	u := c.endpoint("content", "users", owner, "items", itemID, "share")
	if err := c.post(ctx, u, form, nil); err != nil {
		return errors.Wrapf(err, "failed to set access of item %s to %s", itemID, access)
	}
	return nil
}

type moveForm struct {
	Folder string `url:"folder"`
}

// MoveItem moves an item into a folder. An item that is already there yields
// an *Error of KindAlreadyInFolder.
func (c *RESTClient) MoveItem(ctx context.Context, owner, itemID, folderID string) error {
	u := c.endpoint("content", "users", owner, "items", itemID, "move")
	if err := c.post(ctx, u, moveForm{Folder: folderID}, nil); err != nil {
		return errors.Wrapf(err, "failed to move item %s", itemID)
	}
	return nil
}

// DeleteItem deletes an item.
func (c *RESTClient) DeleteItem(ctx context.Context, owner, itemID string) error {
	u := c.endpoint("content", "users", owner, "items", itemID, "delete")
	if err := c.post(ctx, u, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete item %s", itemID)
	}
	return nil
}

// ListFolders returns the content folders of a user.
func (c *RESTClient) ListFolders(ctx context.Context, owner string) ([]Folder, error) {
	var content struct {
		Folders []Folder `json:"folders"`
	}
	if err := c.get(ctx, c.endpoint("content", "users", owner), jsonQuery(), &content); err != nil {
		return nil, errors.Wrapf(err, "failed to list folders of %s", owner)
	}
	return content.Folders, nil
}

type createFolderForm struct {
	Title string `url:"title"`
}

// CreateFolder creates a content folder for a user.
func (c *RESTClient) CreateFolder(ctx context.Context, owner, title string) (*Folder, error) {
	var resp struct {
		Success bool    `json:"success"`
		Folder  *Folder `json:"folder"`
	}
	u := c.endpoint("content", "users", owner, "createFolder")
	if err := c.post(ctx, u, createFolderForm{Title: title}, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to create folder %q", title)
	}
	if resp.Folder == nil {
		return nil, errors.NewMalformedResponseError(u, `response is missing "folder"`)
	}
	return resp.Folder, nil
}

// ExportItem starts an asynchronous export of an item.
func (c *RESTClient) ExportItem(ctx context.Context, owner string, req ExportRequest) (*ExportResult, error) {
	var result ExportResult
	u := c.endpoint("content", "users", owner, "export")
	if err := c.post(ctx, u, req, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to export item %s", req.ItemID)
	}
	return &result, nil
}

// JobStatus reads the state of an export job.
func (c *RESTClient) JobStatus(ctx context.Context, owner, itemID, jobID string) (*JobStatus, error) {
	q := jsonQuery()
	q.Set("jobId", jobID)
	q.Set("jobType", jobTypeExport)

	var status JobStatus
	u := c.endpoint("content", "users", owner, "items", itemID, "status")
	if err := c.get(ctx, u, q, &status); err != nil {
		return nil, errors.Wrapf(err, "failed to get status of job %s", jobID)
	}
	return &status, nil
}

// GetService fetches a service definition.
func (c *RESTClient) GetService(ctx context.Context, serviceURL string) (*Service, error) {
	var svc Service
	if err := c.get(ctx, strings.TrimRight(serviceURL, "/"), jsonQuery(), &svc); err != nil {
		return nil, errors.Wrapf(err, "failed to get service %s", serviceURL)
	}
	return &svc, nil
}

// GetLayer fetches one layer definition of a service.
func (c *RESTClient) GetLayer(ctx context.Context, serviceURL string, layerID int) (*Layer, error) {
	var layer Layer
	u := strings.TrimRight(serviceURL, "/") + "/" + strconv.Itoa(layerID)
	if err := c.get(ctx, u, jsonQuery(), &layer); err != nil {
		return nil, errors.Wrapf(err, "failed to get layer %d", layerID)
	}
	return &layer, nil
}

// ItemDataURL returns the data endpoint of an item with the access token attached.
func (c *RESTClient) ItemDataURL(itemID string) string {
	u := c.endpoint("content", "items", itemID, "data")
	if c.token == "" {
		return u
	}
	return u + "?" + url.Values{"token": {c.token}}.Encode()
}
