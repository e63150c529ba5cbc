package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/cperrin88/exportpoll/pkg/export"
	"github.com/cperrin88/exportpoll/pkg/model"
)

// TabWidth is the width of tabs in formatted output.
const TabWidth = 2

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type row struct {
	key   string
	value string
}

func printRows(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", r.key, r.value)
	}
	return tw.Flush()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func printMetadata(w io.Writer, format string, md model.DownloadMetadata) error {
	if format == "json" {
		return printJSON(w, md)
	}
	rows := []row{
		{"DOWNLOAD ID", md.DownloadID},
		{"STATUS", string(md.Status)},
		{"LAST EDIT", formatTime(md.LastEditDate)},
		{"LAST MODIFIED", formatTime(md.LastModified)},
		{"CONTENT MODIFIED", formatTime(md.ContentLastModified)},
		{"DOWNLOAD URL", md.DownloadURL},
	}
	if md.ContentLength > 0 {
		rows = append(rows, row{"SIZE", fmt.Sprintf("%d", md.ContentLength)})
	}
	for _, e := range md.Errors {
		rows = append(rows, row{"ERROR", e})
	}
	return printRows(w, rows)
}

func printJob(w io.Writer, format string, job export.Job) error {
	if format == "json" {
		return printJSON(w, job)
	}
	created := ""
	if !job.ExportCreated.IsZero() {
		created = job.ExportCreated.Format(time.RFC3339)
	}
	return printRows(w, []row{
		{"DOWNLOAD ID", job.DownloadID},
		{"JOB ID", job.JobID},
		{"EXPORT ITEM ID", job.ExportItemID},
		{"EXPORT CREATED", created},
	})
}
