package export

import "github.com/cperrin88/exportpoll/pkg/model"

// Kind names a terminal poll outcome.
type Kind string

// Event kinds. Every poll loop emits at most one of them, then stops.
const (
	KindExportComplete Kind = "ExportComplete"
	KindExportError    Kind = "ExportError"
	KindPollingError   Kind = "PollingError"
)

// Event is delivered to Hooks.OnEvent when a poll loop finishes.
type Event struct {
	Kind       Kind
	DownloadID string
	// Metadata is set for ExportComplete and, when the backend reported it, ExportError.
	Metadata *model.DownloadMetadata
	// Err is set for ExportError and PollingError.
	Err error
}

// Hooks carries the per-job event callback.
type Hooks struct {
	OnEvent func(Event)
}

func (h Hooks) emit(e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}
