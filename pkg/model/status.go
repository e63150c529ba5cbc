package model

// Status is the canonical state of a download, recomputed on every query.
type Status string

const (
	StatusNotReady      Status = "not_ready"
	StatusCreating      Status = "creating"
	StatusUpdating      Status = "updating"
	StatusReady         Status = "ready"
	StatusReadyUnknown  Status = "ready_unknown"
	StatusStale         Status = "stale"
	StatusLocked        Status = "locked"
	StatusStaleLocked   Status = "stale_locked"
	StatusDisabled      Status = "disabled"
	StatusErrorCreating Status = "error_creating"
	StatusErrorUpdating Status = "error_updating"
	StatusError         Status = "error"
)

// IsTerminal reports whether a hub poll loop ends on this status.
func (s Status) IsTerminal() bool {
	return s == StatusReady || s.IsError()
}

// IsError reports whether the backend reported a failed export.
func (s Status) IsError() bool {
	return s == StatusError || s == StatusErrorCreating || s == StatusErrorUpdating
}
