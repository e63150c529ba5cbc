package export

import "time"

// Job is the result of submitting an export.
type Job struct {
	DownloadID string `json:"downloadId"`

	// The remaining fields are only set for portal and enterprise exports.
	JobID         string    `json:"jobId,omitempty"`
	ExportItemID  string    `json:"exportItemId,omitempty"`
	Size          int64     `json:"size,omitempty"`
	ExportCreated time.Time `json:"exportCreated,omitzero"`
}
