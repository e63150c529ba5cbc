package export

import (
	"time"

	"github.com/cperrin88/exportpoll/pkg/status"
)

// DefaultHoldingFolder is the folder completed portal exports are moved into.
const DefaultHoldingFolder = "Hub Exports"

// defaultLayerConcurrency bounds concurrent layer definition requests.
const defaultLayerConcurrency = 4

// PortalConfig configures the portal exporter and completion handler.
type PortalConfig struct {
	// Owner is the user that owns export items and the holding folder.
	Owner         string
	HoldingFolder string
	LockWindow    time.Duration
	// LayerConcurrency limits concurrent layer lookups; zero means the default.
	LayerConcurrency int
}

func (c PortalConfig) withDefaults() PortalConfig {
	if c.HoldingFolder == "" {
		c.HoldingFolder = DefaultHoldingFolder
	}
	if c.LockWindow <= 0 {
		c.LockWindow = status.DefaultLockWindow
	}
	if c.LayerConcurrency <= 0 {
		c.LayerConcurrency = defaultLayerConcurrency
	}
	return c
}
