package cli

import (
	"fmt"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/config"
	"github.com/cperrin88/exportpoll/pkg/download"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/spf13/cobra"
)

// saveArtifact downloads the file of a ready export into dir.
func saveArtifact(cmd *cobra.Command, cfg *config.Config, md model.DownloadMetadata, format, dir string) error {
	item, err := download.ItemFromMetadata(md, format)
	if err != nil {
		return err
	}

	var fetcher download.Fetcher = download.NewManager(cfg.Settings.HTTPTimeout, "")
	path, err := fetcher.Fetch(cmd.Context(), item, dir)
	if err != nil {
		return fmt.Errorf("failed to download export: %w", err)
	}

	logger.Success("Export downloaded", logger.Fields{"download_id": md.DownloadID, "path": path})
	return nil
}
