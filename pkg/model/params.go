package model

import (
	"strconv"
	"strings"
)

// undefinedField marks an absent position inside a download id.
const undefinedField = "undefined"

// datasetIDDelimiter separates the item id from the layer index in a dataset id.
const datasetIDDelimiter = "_"

// ExportParams describes one export request. It is the input to submission,
// metadata queries and polling, and the source of the download id.
type ExportParams struct {
	DatasetID    string `json:"datasetId"`
	Target       Target `json:"target,omitempty"`
	Format       string `json:"format"`
	SpatialRefID string `json:"spatialRefId,omitempty"`
	Geometry     string `json:"geometry,omitempty"`
	Where        string `json:"where,omitempty"`
	Title        string `json:"title,omitempty"`
}

// DownloadID returns the deterministic download id for the parameters.
func (p ExportParams) DownloadID() string {
	return ComposeDownloadID(p)
}

// ComposeDownloadID joins dataset id, format, spatial reference, geometry and
// filter with ":". Absent fields are rendered as "undefined".
func ComposeDownloadID(p ExportParams) string {
	return strings.Join([]string{
		orUndefined(p.DatasetID),
		orUndefined(p.Format),
		orUndefined(p.SpatialRefID),
		orUndefined(p.Geometry),
		orUndefined(p.Where),
	}, ":")
}

func orUndefined(s string) string {
	if s == "" {
		return undefinedField
	}
	return s
}

// ParseDatasetID splits a dataset id into its item id and optional layer index.
// "abc_0" yields ("abc", "0", true); "abc" yields ("abc", "", false).
// A suffix that is not a non-negative integer is treated as part of the item id.
func ParseDatasetID(datasetID string) (itemID, layerID string, hasLayer bool) {
	idx := strings.LastIndex(datasetID, datasetIDDelimiter)
	if idx <= 0 || idx == len(datasetID)-1 {
		return datasetID, "", false
	}
	suffix := datasetID[idx+1:]
	if n, err := strconv.Atoi(suffix); err != nil || n < 0 {
		return datasetID, "", false
	}
	return datasetID[:idx], suffix, true
}
