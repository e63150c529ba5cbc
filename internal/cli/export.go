package cli

import (
	"fmt"
	"time"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	var (
		flags    exportFlags
		wait     bool
		interval time.Duration
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "export DATASET_ID",
		Short: "Submit a dataset export",
		Long: `Submit an export of a dataset to the hub or a portal. The dataset id is the
item id, optionally followed by "_" and a layer index. With --wait the command
polls until the export finishes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], &flags, wait, interval, outDir)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Poll until the export is ready")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Polling interval (defaults to config)")
	cmd.Flags().StringVar(&outDir, "output-dir", "", "With --wait, download the finished export into this directory")

	return cmd
}

func runExport(cmd *cobra.Command, datasetID string, flags *exportFlags, wait bool, interval time.Duration, outDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	params, err := flags.params(datasetID)
	if err != nil {
		return err
	}

	svc := newService(cfg)
	job, err := svc.RequestDatasetExport(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to submit export: %w", err)
	}
	logger.Success("Export submitted", logger.Fields{"download_id": job.DownloadID, "target": params.Target})

	if !wait {
		return printJob(cmd.OutOrStdout(), cfg.Settings.OutputFormat, job)
	}
	if interval <= 0 {
		interval = cfg.Settings.PollInterval
	}
	return pollAndPrint(cmd, cfg, svc, params, job, interval, outDir)
}
