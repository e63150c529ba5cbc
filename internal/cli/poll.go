package cli

import (
	"fmt"
	"time"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/config"
	"github.com/cperrin88/exportpoll/pkg/export"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/spf13/cobra"
)

// NewPollCmd creates the poll command.
func NewPollCmd() *cobra.Command {
	var (
		flags    exportFlags
		job      export.Job
		interval time.Duration
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "poll DATASET_ID",
		Short: "Wait for an export to finish",
		Long: `Poll an export until it is ready or fails. Portal and enterprise exports
need the job id and export item id printed by the export command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			params, err := flags.params(args[0])
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = cfg.Settings.PollInterval
			}
			job.DownloadID = params.DownloadID()
			return pollAndPrint(cmd, cfg, newService(cfg), params, job, interval, outDir)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&job.JobID, "job-id", "", "Portal export job id")
	cmd.Flags().StringVar(&job.ExportItemID, "export-item-id", "", "Portal export item id")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Polling interval (defaults to config)")
	cmd.Flags().StringVar(&outDir, "output-dir", "", "Download the finished export into this directory")

	return cmd
}

// pollAndPrint blocks until the poll loop ends and prints its outcome.
// Interrupting the command stops the loop without output.
func pollAndPrint(cmd *cobra.Command, cfg *config.Config, svc *export.Service, params model.ExportParams, job export.Job, interval time.Duration, outDir string) error {
	events := make(chan export.Event, 1)
	h, err := svc.PollDownloadMetadata(cmd.Context(), params, job, interval, export.Hooks{
		OnEvent: func(e export.Event) { events <- e },
	})
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}
	logger.Debug("Waiting for export", logger.Fields{"poll_id": h.ID(), "interval": interval.String()})
	h.Wait()

	select {
	case e := <-events:
		if err := handleEvent(cmd, cfg.Settings.OutputFormat, e); err != nil {
			return err
		}
		if outDir == "" {
			return nil
		}
		return saveArtifact(cmd, cfg, *e.Metadata, params.Format, outDir)
	default:
		logger.Info("Polling stopped", logger.Fields{"download_id": job.DownloadID})
		return cmd.Context().Err()
	}
}

func handleEvent(cmd *cobra.Command, format string, e export.Event) error {
	switch e.Kind {
	case export.KindExportComplete:
		logger.Success("Export ready", logger.Fields{"download_id": e.DownloadID})
		return printMetadata(cmd.OutOrStdout(), format, *e.Metadata)
	case export.KindExportError:
		if e.Metadata != nil {
			_ = printMetadata(cmd.OutOrStdout(), format, *e.Metadata)
		}
		return fmt.Errorf("export %s failed: %w", e.DownloadID, e.Err)
	default:
		return fmt.Errorf("polling %s failed: %w", e.DownloadID, e.Err)
	}
}
