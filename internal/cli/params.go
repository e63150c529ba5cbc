package cli

import (
	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/spf13/cobra"
)

// exportFlags are the export parameters shared by every command.
type exportFlags struct {
	target       string
	format       string
	spatialRefID string
	geometry     string
	where        string
	title        string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.target, "target", "t", string(model.TargetHub), "Backend: hub, portal or enterprise")
	cmd.Flags().StringVarP(&f.format, "format", "f", model.FormatCSV, "Export format, e.g. CSV, Shapefile, GeoJson")
	cmd.Flags().StringVar(&f.spatialRefID, "spatial-ref", "", "Output spatial reference (wkid)")
	cmd.Flags().StringVar(&f.geometry, "geometry", "", "Spatial filter geometry")
	cmd.Flags().StringVar(&f.where, "where", "", "Attribute filter")
	cmd.Flags().StringVar(&f.title, "title", "", "Title of the exported item (portal only)")
}

func (f *exportFlags) params(datasetID string) (model.ExportParams, error) {
	if datasetID == "" {
		return model.ExportParams{}, errors.ErrDatasetIDEmpty
	}
	if f.format == "" {
		return model.ExportParams{}, errors.ErrFormatEmpty
	}
	return model.ExportParams{
		DatasetID:    datasetID,
		Target:       model.ParseTarget(f.target),
		Format:       f.format,
		SpatialRefID: f.spatialRefID,
		Geometry:     f.geometry,
		Where:        f.where,
		Title:        f.title,
	}, nil
}
