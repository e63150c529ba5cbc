// Package download saves the artifact of a ready export to the local disk.
package download

import (
	"context"
	"net/url"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
)

// Fetcher downloads export artifacts.
type Fetcher interface {
	// Fetch saves item below dir and returns the absolute path of the file.
	Fetch(ctx context.Context, item Item, dir string) (string, error)
}

// Item is one artifact to download.
type Item struct {
	DownloadID string   // download id of the export, used to name the file when the URL does not
	URL        *url.URL // source URL
	Size       int64    // expected content length; 0 skips the check
	Filename   string   // optional preferred filename
	Extension  string   // appended when the name falls back to the download id
}

// ItemFromMetadata builds the download item of a ready export in format.
func ItemFromMetadata(md model.DownloadMetadata, format string) (Item, error) {
	if md.DownloadURL == "" {
		return Item{}, errors.Wrapf(errors.ErrNoDownloadURL, "%s (status %s)", md.DownloadID, md.Status)
	}
	u, err := url.Parse(md.DownloadURL)
	if err != nil {
		return Item{}, errors.Wrapf(err, "invalid download URL for %s", md.DownloadID)
	}
	return Item{
		DownloadID: md.DownloadID,
		URL:        u,
		Size:       md.ContentLength,
		Extension:  model.FileExtension(format),
	}, nil
}
