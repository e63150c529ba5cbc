package model

import "time"

// DownloadMetadata is the projection of a job's state returned by each query.
// Optional fields are left zero when the backend did not report them.
type DownloadMetadata struct {
	DownloadID          string     `json:"downloadId"`
	Status              Status     `json:"status"`
	LastEditDate        *time.Time `json:"lastEditDate,omitempty"`
	LastModified        *time.Time `json:"lastModified,omitempty"`
	ContentLastModified *time.Time `json:"contentLastModified,omitempty"`
	ContentLength       int64      `json:"contentLength,omitempty"`
	CacheTime           int64      `json:"cacheTime,omitempty"`
	DownloadURL         string     `json:"downloadUrl,omitempty"`
	Errors              []string   `json:"errors,omitempty"`
}

// NotReady returns the metadata of a download with no cached artifact.
func NotReady(downloadID string) DownloadMetadata {
	return DownloadMetadata{DownloadID: downloadID, Status: StatusNotReady}
}

// TimePtr returns a pointer to a copy of t, or nil when t is zero.
func TimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
