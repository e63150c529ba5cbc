package model

import (
	"sort"
	"strings"

	"github.com/cperrin88/exportpoll/pkg/errors"
)

// Caller-facing format names.
const (
	FormatCSV               = "CSV"
	FormatShapefile         = "Shapefile"
	FormatFileGeodatabase   = "File Geodatabase"
	FormatGeoJSON           = "GeoJson"
	FormatKML               = "KML"
	FormatExcel             = "Excel"
	FormatFeatureCollection = "Feature Collection"
	FormatScenePackage      = "Scene Package"
)

// collectionSuffix is appended to the portal item type of multi-layer exports.
const collectionSuffix = " Collection"

var hubFormats = map[string]string{
	FormatCSV:             "csv",
	FormatShapefile:       "shapefile",
	FormatFileGeodatabase: "filegdb",
	FormatGeoJSON:         "geojson",
	FormatKML:             "kml",
}

var fileExtensions = map[string]string{
	FormatCSV:               ".csv",
	FormatShapefile:         ".zip",
	FormatFileGeodatabase:   ".zip",
	FormatGeoJSON:           ".geojson",
	FormatKML:               ".kml",
	FormatExcel:             ".xlsx",
	FormatFeatureCollection: ".json",
	FormatScenePackage:      ".spk",
}

// FileExtension returns the file extension of an exported artifact, or ""
// for unknown formats. Multi-layer collections are delivered as zip archives.
func FileExtension(format string) string {
	if strings.HasSuffix(format, collectionSuffix) {
		return ".zip"
	}
	return fileExtensions[format]
}

// HubFormat converts a caller-facing format name to the hub backend's token.
func HubFormat(format string) (string, error) {
	token, ok := hubFormats[format]
	if !ok {
		return "", errors.NewUnsupportedFormatError(format, TargetHub.String())
	}
	return token, nil
}

// HubFormats lists the caller-facing names the hub backend accepts, sorted.
func HubFormats() []string {
	out := make([]string, 0, len(hubFormats))
	for name := range hubFormats {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// PortalFormat returns the portal item type for an export. Multi-layer exports
// produce "<Format> Collection".
func PortalFormat(format string, multiLayer bool) string {
	if multiLayer {
		return format + collectionSuffix
	}
	return format
}
