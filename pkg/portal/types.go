package portal

import "time"

// Millis is a timestamp in epoch milliseconds, as used throughout the portal REST API.
type Millis int64

// Time converts m to a UTC time. Zero stays the zero time.
func (m Millis) Time() time.Time {
	if m == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(m)).UTC()
}

// MillisOf converts t to epoch milliseconds.
func MillisOf(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

// Item types that are backed by a service with layers.
const (
	TypeFeatureService = "Feature Service"
	TypeMapService     = "Map Service"
)

// Item is the subset of a content item used by the export workflow.
type Item struct {
	ID           string          `json:"id"`
	Owner        string          `json:"owner"`
	Title        string          `json:"title"`
	Type         string          `json:"type"`
	URL          string          `json:"url"`
	Created      Millis          `json:"created"`
	Modified     Millis          `json:"modified"`
	Size         int64           `json:"size"`
	TypeKeywords []string        `json:"typeKeywords"`
	Properties   *ItemProperties `json:"properties"`
}

// IsService reports whether the item is a feature or map service.
func (i *Item) IsService() bool {
	return i.Type == TypeFeatureService || i.Type == TypeMapService
}

// ItemProperties carries the administrative downloads configuration.
type ItemProperties struct {
	Downloads *DownloadsConfig `json:"downloads,omitempty"`
}

// DownloadsConfig enables or disables downloads per item and per format.
type DownloadsConfig struct {
	Disabled bool                    `json:"disabled"`
	Formats  map[string]FormatConfig `json:"formats,omitempty"`
}

// FormatConfig is the per-format downloads setting.
type FormatConfig struct {
	Disabled bool `json:"disabled"`
}

// DownloadsDisabled reports whether downloads are disabled for the whole item.
func (i *Item) DownloadsDisabled() bool {
	return i.Properties != nil && i.Properties.Downloads != nil && i.Properties.Downloads.Disabled
}

// FormatDisabled reports whether downloads are disabled for one format.
func (i *Item) FormatDisabled(format string) bool {
	if i.Properties == nil || i.Properties.Downloads == nil {
		return false
	}
	return i.Properties.Downloads.Formats[format].Disabled
}

// SearchParams is the query of a content search.
type SearchParams struct {
	Query     string `url:"q"`
	SortField string `url:"sortField,omitempty"`
	SortOrder string `url:"sortOrder,omitempty"`
	Num       int    `url:"num,omitempty"`
	Start     int    `url:"start,omitempty"`
}

// SearchResult is one page of search results.
type SearchResult struct {
	Total     int    `json:"total"`
	Start     int    `json:"start"`
	Num       int    `json:"num"`
	NextStart int    `json:"nextStart"`
	Results   []Item `json:"results"`
}

// Folder is a user content folder.
type Folder struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ExportRequest asks the portal to export an item into a new item.
type ExportRequest struct {
	ItemID           string `url:"itemId"`
	ExportFormat     string `url:"exportFormat"`
	ExportParameters string `url:"exportParameters,omitempty"`
	Title            string `url:"title,omitempty"`
}

// ExportResult is the job reference returned by an export request.
type ExportResult struct {
	Type          string `json:"type"`
	Size          int64  `json:"size"`
	JobID         string `json:"jobId"`
	ExportItemID  string `json:"exportItemId"`
	ServiceItemID string `json:"serviceItemId"`
}

// Job states reported by the status endpoint.
const (
	JobProcessing = "processing"
	JobCompleted  = "completed"
	JobFailed     = "failed"
)

// JobStatus is the state of an asynchronous export job.
type JobStatus struct {
	ItemID        string `json:"itemId"`
	Status        string `json:"status"`
	StatusMessage string `json:"statusMessage"`
}

// Access levels of a content item.
type Access string

// Supported access levels.
const (
	AccessPrivate Access = "private"
	AccessOrg     Access = "org"
	AccessPublic  Access = "public"
)

// LayerRef is an entry of a service's layer or table list.
type LayerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Service is the subset of a service definition used to enumerate layers.
type Service struct {
	Layers []LayerRef `json:"layers"`
	Tables []LayerRef `json:"tables"`
}

// EditingInfo reports when a layer's data was last edited.
type EditingInfo struct {
	LastEditDate Millis `json:"lastEditDate"`
}

// Layer is the subset of a layer definition used for staleness checks.
type Layer struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	EditingInfo *EditingInfo `json:"editingInfo"`
}
