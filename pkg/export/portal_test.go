package export_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/export"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/cperrin88/exportpoll/pkg/portal"
	mock_portal "github.com/cperrin88/exportpoll/pkg/portal/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const serviceURL = "https://services.example.com/arcgis/rest/services/Cities/FeatureServer"

func newExporter(t *testing.T) (*export.PortalExporter, *mock_portal.MockClient) {
	ctrl := gomock.NewController(t)
	client := mock_portal.NewMockClient(ctrl)
	return export.NewPortalExporter(client, export.PortalConfig{Owner: "owner"}, clockwork.NewFakeClockAt(testNow)), client
}

func createdKeyword(t time.Time) string {
	return "exportCreated:" + strconv.FormatInt(t.UnixMilli(), 10)
}

func TestPortalExporter_Submit(t *testing.T) {
	e, client := newExporter(t)
	params := model.ExportParams{
		DatasetID:    "abc_2",
		Target:       model.TargetPortal,
		Format:       model.FormatCSV,
		SpatialRefID: "4326",
		Where:        "POP > 10",
		Title:        "Cities",
	}

	client.EXPECT().ExportItem(gomock.Any(), "owner", portal.ExportRequest{
		ItemID:           "abc",
		ExportFormat:     "CSV",
		ExportParameters: `{"layers":[{"id":2,"where":"POP > 10"}],"targetSR":{"wkid":4326}}`,
		Title:            "Cities",
	}).Return(&portal.ExportResult{JobID: "job1", ExportItemID: "exp1", Size: 42}, nil)

	job, err := e.Submit(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, export.Job{
		DownloadID:    "abc_2:CSV:4326:undefined:POP > 10",
		JobID:         "job1",
		ExportItemID:  "exp1",
		Size:          42,
		ExportCreated: testNow,
	}, job)
}

func TestPortalExporter_SubmitWholeItem(t *testing.T) {
	e, client := newExporter(t)
	client.EXPECT().ExportItem(gomock.Any(), "owner", portal.ExportRequest{ItemID: "abc", ExportFormat: "Shapefile"}).
		Return(&portal.ExportResult{JobID: "job1", ExportItemID: "exp1"}, nil)

	job, err := e.Submit(context.Background(), model.ExportParams{DatasetID: "abc", Target: model.TargetEnterprise, Format: model.FormatShapefile})
	require.NoError(t, err)
	assert.Equal(t, "exp1", job.ExportItemID)
}

func TestPortalExporter_SubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		owner  string
		params model.ExportParams
		want   error
	}{
		{name: "empty dataset", owner: "owner", params: model.ExportParams{Format: "CSV"}, want: errors.ErrDatasetIDEmpty},
		{name: "empty format", owner: "owner", params: model.ExportParams{DatasetID: "abc"}, want: errors.ErrFormatEmpty},
		{name: "no owner", params: model.ExportParams{DatasetID: "abc", Format: "CSV"}, want: errors.ErrPortalUserMissing},
		{name: "bad spatial reference", owner: "owner", params: model.ExportParams{DatasetID: "abc", Format: "CSV", SpatialRefID: "wgs84"}, want: errors.ErrInvalidSpatialRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_portal.NewMockClient(ctrl)
			e := export.NewPortalExporter(client, export.PortalConfig{Owner: tt.owner}, clockwork.NewFakeClockAt(testNow))

			_, err := e.Submit(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPortalExporter_SubmitRemoteError(t *testing.T) {
	e, client := newExporter(t)
	client.EXPECT().ExportItem(gomock.Any(), "owner", gomock.Any()).
		Return(nil, &portal.Error{Code: 400, Message: "Export format not supported"})

	_, err := e.Submit(context.Background(), model.ExportParams{DatasetID: "abc", Format: "Scene Package"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Export format not supported")
}

func TestPortalExporter_FetchMetadataReady(t *testing.T) {
	e, client := newExporter(t)
	params := model.ExportParams{DatasetID: "abc", Target: model.TargetPortal, Format: model.FormatCSV}
	modified := testNow.Add(-2 * time.Hour)
	exported := testNow.Add(-time.Hour)

	client.EXPECT().GetItem(gomock.Any(), "abc").Return(&portal.Item{ID: "abc", Type: "CSV", Modified: portal.MillisOf(modified)}, nil)
	client.EXPECT().SearchItems(gomock.Any(), portal.SearchParams{
		Query:     `type:"CSV" AND typekeywords:"exportItem:abc" AND typekeywords:"exportLayer:null" AND typekeywords:"spatialRefId:undefined"`,
		SortField: "modified",
		SortOrder: "desc",
		Num:       1,
	}).Return(&portal.SearchResult{Results: []portal.Item{{
		ID:           "cached1",
		Size:         2048,
		Created:      portal.MillisOf(exported),
		Modified:     portal.MillisOf(exported.Add(time.Second)),
		TypeKeywords: []string{createdKeyword(exported)},
	}}}, nil)
	client.EXPECT().ItemDataURL("cached1").Return("https://portal/data/cached1")

	md, err := e.FetchMetadata(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReady, md.Status)
	assert.Equal(t, params.DownloadID(), md.DownloadID)
	require.NotNil(t, md.LastEditDate)
	assert.Equal(t, modified, *md.LastEditDate)
	require.NotNil(t, md.LastModified)
	assert.Equal(t, exported.Add(time.Second), *md.LastModified)
	assert.Equal(t, int64(2048), md.ContentLength)
	assert.Equal(t, "https://portal/data/cached1", md.DownloadURL)
}

func expectService(client *mock_portal.MockClient, edits map[int]time.Time) {
	client.EXPECT().GetItem(gomock.Any(), "abc").Return(&portal.Item{
		ID:       "abc",
		Type:     portal.TypeFeatureService,
		URL:      serviceURL,
		Modified: portal.MillisOf(testNow.Add(-48 * time.Hour)),
	}, nil)
	svc := &portal.Service{}
	for id := range edits {
		svc.Layers = append(svc.Layers, portal.LayerRef{ID: id})
	}
	client.EXPECT().GetService(gomock.Any(), serviceURL).Return(svc, nil)
	for id, edited := range edits {
		client.EXPECT().GetLayer(gomock.Any(), serviceURL, id).
			Return(&portal.Layer{ID: id, EditingInfo: &portal.EditingInfo{LastEditDate: portal.MillisOf(edited)}}, nil)
	}
}

func TestPortalExporter_FetchMetadataMultiLayerLocked(t *testing.T) {
	tests := []struct {
		target model.Target
		want   model.Status
	}{
		{target: model.TargetPortal, want: model.StatusLocked},
		{target: model.TargetEnterprise, want: model.StatusNotReady},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			e, client := newExporter(t)
			expectService(client, map[int]time.Time{
				0: testNow.Add(-time.Hour),
				1: testNow.Add(-5 * time.Minute),
			})
			client.EXPECT().SearchItems(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p portal.SearchParams) (*portal.SearchResult, error) {
					assert.Contains(t, p.Query, `type:"CSV Collection"`)
					return &portal.SearchResult{}, nil
				})

			md, err := e.FetchMetadata(context.Background(), model.ExportParams{DatasetID: "abc", Target: tt.target, Format: model.FormatCSV})
			require.NoError(t, err)
			assert.Equal(t, tt.want, md.Status)
			require.NotNil(t, md.LastEditDate)
			assert.Equal(t, testNow.Add(-5*time.Minute), *md.LastEditDate)
			assert.Empty(t, md.DownloadURL)
		})
	}
}

func TestPortalExporter_FetchMetadataSingleLayerStale(t *testing.T) {
	e, client := newExporter(t)
	edited := testNow.Add(-30 * time.Minute)
	exported := testNow.Add(-time.Hour)

	client.EXPECT().GetItem(gomock.Any(), "abc").Return(&portal.Item{ID: "abc", Type: portal.TypeFeatureService, URL: serviceURL}, nil)
	client.EXPECT().GetLayer(gomock.Any(), serviceURL, 1).
		Return(&portal.Layer{ID: 1, EditingInfo: &portal.EditingInfo{LastEditDate: portal.MillisOf(edited)}}, nil)
	client.EXPECT().SearchItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p portal.SearchParams) (*portal.SearchResult, error) {
			assert.Equal(t, `type:"GeoJson" AND typekeywords:"exportItem:abc" AND typekeywords:"exportLayer:1" AND typekeywords:"spatialRefId:4326"`, p.Query)
			return &portal.SearchResult{Results: []portal.Item{{ID: "cached1", Modified: portal.MillisOf(exported), TypeKeywords: []string{createdKeyword(exported)}}}}, nil
		})
	client.EXPECT().ItemDataURL("cached1").Return("https://portal/data/cached1")

	md, err := e.FetchMetadata(context.Background(), model.ExportParams{
		DatasetID:    "abc_1",
		Target:       model.TargetPortal,
		Format:       model.FormatGeoJSON,
		SpatialRefID: "4326",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusStale, md.Status)
	assert.Equal(t, "https://portal/data/cached1", md.DownloadURL)
}

func TestPortalExporter_FetchMetadataNoEditInfo(t *testing.T) {
	e, client := newExporter(t)
	exported := testNow.Add(-time.Hour)

	client.EXPECT().GetItem(gomock.Any(), "abc").Return(&portal.Item{ID: "abc", Type: portal.TypeMapService, URL: serviceURL}, nil)
	client.EXPECT().GetService(gomock.Any(), serviceURL).Return(&portal.Service{Tables: []portal.LayerRef{{ID: 3}}}, nil)
	client.EXPECT().GetLayer(gomock.Any(), serviceURL, 3).Return(&portal.Layer{ID: 3}, nil)
	client.EXPECT().SearchItems(gomock.Any(), gomock.Any()).
		Return(&portal.SearchResult{Results: []portal.Item{{ID: "cached1", Created: portal.MillisOf(exported)}}}, nil)
	client.EXPECT().ItemDataURL("cached1").Return("url")

	md, err := e.FetchMetadata(context.Background(), model.ExportParams{DatasetID: "abc", Target: model.TargetPortal, Format: model.FormatKML})
	require.NoError(t, err)
	assert.Equal(t, model.StatusReadyUnknown, md.Status)
	assert.Nil(t, md.LastEditDate)
}

func TestPortalExporter_FetchMetadataDisabled(t *testing.T) {
	e, client := newExporter(t)
	client.EXPECT().GetItem(gomock.Any(), "abc").Return(&portal.Item{
		ID:       "abc",
		Type:     "CSV",
		Modified: portal.MillisOf(testNow.Add(-time.Hour)),
		Properties: &portal.ItemProperties{Downloads: &portal.DownloadsConfig{
			Formats: map[string]portal.FormatConfig{"CSV": {Disabled: true}},
		}},
	}, nil)
	client.EXPECT().SearchItems(gomock.Any(), gomock.Any()).
		Return(&portal.SearchResult{Results: []portal.Item{{ID: "cached1", Created: portal.MillisOf(testNow)}}}, nil)

	md, err := e.FetchMetadata(context.Background(), model.ExportParams{DatasetID: "abc", Target: model.TargetPortal, Format: model.FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDisabled, md.Status)
	assert.Empty(t, md.DownloadURL)
}

func TestPortalExporter_FetchMetadataLayerError(t *testing.T) {
	e, client := newExporter(t)
	client.EXPECT().GetItem(gomock.Any(), "abc").Return(&portal.Item{ID: "abc", Type: portal.TypeFeatureService, URL: serviceURL}, nil)
	client.EXPECT().GetLayer(gomock.Any(), serviceURL, 0).Return(nil, errors.NewRemoteServiceError(503, serviceURL+"/0", ""))

	_, err := e.FetchMetadata(context.Background(), model.ExportParams{DatasetID: "abc_0", Target: model.TargetPortal, Format: model.FormatCSV})
	assert.ErrorIs(t, err, errors.ErrRemoteService)
}

func TestPortalExporter_FetchMetadataItemError(t *testing.T) {
	e, client := newExporter(t)
	client.EXPECT().GetItem(gomock.Any(), "abc").Return(nil, &portal.Error{Code: 404, Message: "Item does not exist"})

	_, err := e.FetchMetadata(context.Background(), model.ExportParams{DatasetID: "abc", Format: model.FormatCSV})
	assert.ErrorIs(t, err, portal.ErrNotFound)
}
