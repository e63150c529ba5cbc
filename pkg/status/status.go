// Package status turns raw backend facts about a cached export into one of
// the canonical download statuses. Classification is a pure function and is
// recomputed on every query; no status history is kept.
package status

import (
	"time"

	"github.com/cperrin88/exportpoll/pkg/model"
)

// DefaultLockWindow is how long after a source edit a portal refresh is withheld.
const DefaultLockWindow = 10 * time.Minute

// Input holds everything the classifier looks at.
type Input struct {
	Target model.Target

	// CachedCreated is the creation time of the newest cached artifact, nil if none exists.
	CachedCreated *time.Time
	// LastEditDate is the last edit of the source data, nil if it could not be determined.
	LastEditDate *time.Time

	// ItemDisabled and FormatDisabled reflect the administrative downloads configuration.
	ItemDisabled   bool
	FormatDisabled bool

	Now        time.Time
	LockWindow time.Duration
}

// Classify applies the decision table. Disabling always wins; locking only
// narrows not_ready to locked and stale to stale_locked.
func Classify(in Input) model.Status {
	if in.ItemDisabled || in.FormatDisabled {
		return model.StatusDisabled
	}

	locked := isLocked(in)

	if in.CachedCreated == nil {
		if locked {
			return model.StatusLocked
		}
		return model.StatusNotReady
	}

	if in.LastEditDate == nil {
		return model.StatusReadyUnknown
	}

	if !in.CachedCreated.Before(*in.LastEditDate) {
		return model.StatusReady
	}
	if locked {
		return model.StatusStaleLocked
	}
	return model.StatusStale
}

// isLocked reports whether the source was edited inside the protection window.
// Only the portal target is ever locked.
func isLocked(in Input) bool {
	if in.Target != model.TargetPortal || in.LastEditDate == nil {
		return false
	}
	window := in.LockWindow
	if window <= 0 {
		window = DefaultLockWindow
	}
	return in.Now.Sub(*in.LastEditDate) <= window
}
