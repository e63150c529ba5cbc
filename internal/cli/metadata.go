package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMetadataCmd creates the metadata command.
func NewMetadataCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "metadata DATASET_ID",
		Short: "Show the download status of an export",
		Long:  "Query the backend once and print the download metadata of an export.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			params, err := flags.params(args[0])
			if err != nil {
				return err
			}

			md, err := newService(cfg).RequestDownloadMetadata(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to get download metadata: %w", err)
			}
			return printMetadata(cmd.OutOrStdout(), cfg.Settings.OutputFormat, md)
		},
	}

	flags.register(cmd)
	return cmd
}
