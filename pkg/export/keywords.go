package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cperrin88/exportpoll/pkg/portal"
)

// Type keyword prefixes recording which source an export item was made from.
const (
	keywordExportItem   = "exportItem:"
	keywordExportLayer  = "exportLayer:"
	keywordExportCreate = "exportCreated:"
	keywordSpatialRef   = "spatialRefId:"

	noLayer      = "null"
	noSpatialRef = "undefined"
)

// provenanceKeywords are attached to a finished export item so later
// metadata queries can find it again.
func provenanceKeywords(itemID, layerID, spatialRefID string, created time.Time) []string {
	return []string{
		keywordExportItem + itemID,
		keywordExportLayer + orDefault(layerID, noLayer),
		keywordExportCreate + strconv.FormatInt(created.UnixMilli(), 10),
		keywordSpatialRef + orDefault(spatialRefID, noSpatialRef),
	}
}

// cachedExportQuery finds export items of one format made from the same source.
func cachedExportQuery(portalFormat, itemID, layerID, spatialRefID string) string {
	return fmt.Sprintf(`type:"%s" AND typekeywords:"%s%s" AND typekeywords:"%s%s" AND typekeywords:"%s%s"`,
		portalFormat,
		keywordExportItem, itemID,
		keywordExportLayer, orDefault(layerID, noLayer),
		keywordSpatialRef, orDefault(spatialRefID, noSpatialRef),
	)
}

// exportCreatedAt returns the recorded export time of an item, or its
// creation time when no keyword is present.
func exportCreatedAt(item portal.Item) time.Time {
	for _, kw := range item.TypeKeywords {
		raw, ok := strings.CutPrefix(kw, keywordExportCreate)
		if !ok {
			continue
		}
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return portal.Millis(ms).Time()
		}
	}
	return item.Created.Time()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
