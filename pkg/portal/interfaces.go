//go:generate mockgen -destination=./mocks/portal.go . Client

package portal

import "context"

// Client is the content-management API surface used by the export workflow.
type Client interface {
	GetItem(ctx context.Context, itemID string) (*Item, error)
	SearchItems(ctx context.Context, params SearchParams) (*SearchResult, error)
	UpdateTypeKeywords(ctx context.Context, owner, itemID string, keywords []string) error
	SetAccess(ctx context.Context, owner, itemID string, access Access) error
	MoveItem(ctx context.Context, owner, itemID, folderID string) error
	DeleteItem(ctx context.Context, owner, itemID string) error
	ListFolders(ctx context.Context, owner string) ([]Folder, error)
	CreateFolder(ctx context.Context, owner, title string) (*Folder, error)
	ExportItem(ctx context.Context, owner string, req ExportRequest) (*ExportResult, error)
	JobStatus(ctx context.Context, owner, itemID, jobID string) (*JobStatus, error)
	GetService(ctx context.Context, serviceURL string) (*Service, error)
	GetLayer(ctx context.Context, serviceURL string, layerID int) (*Layer, error)

	// ItemDataURL returns the download URL of an item's data, including the access token.
	ItemDataURL(itemID string) string
}
