package download

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	tests := []struct {
		name       string
		timeout    time.Duration
		userAgent  string
		expectedUA string
	}{
		{name: "default user agent", timeout: time.Second, expectedUA: DefaultUserAgent},
		{name: "custom user agent", timeout: 2 * time.Second, userAgent: "test-agent/1.0", expectedUA: "test-agent/1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.timeout, tt.userAgent)
			require.NotNil(t, m)
			assert.Equal(t, tt.timeout, m.client.Timeout)
			assert.Equal(t, tt.expectedUA, m.userAgent)
		})
	}
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestFetch(t *testing.T) {
	const body = "id,name\n1,a\n"

	tests := []struct {
		name     string
		status   int
		path     string
		item     Item
		wantFile string
		wantErr  error
	}{
		{
			name:     "named by url",
			status:   http.StatusOK,
			path:     "/files/abc.csv",
			item:     Item{DownloadID: "abc_0:CSV:undefined:undefined:undefined", Size: int64(len(body))},
			wantFile: "abc.csv",
		},
		{
			name:     "named by download id",
			status:   http.StatusOK,
			path:     "/sharing/rest/content/items/exp1/data",
			item:     Item{DownloadID: "abc_0:CSV:undefined:undefined:undefined", Extension: ".csv"},
			wantFile: "abc_0_CSV_undefined_undefined_undefined.csv",
		},
		{
			name:     "explicit filename",
			status:   http.StatusOK,
			path:     "/files/abc.csv",
			item:     Item{DownloadID: "abc", Filename: "../out.csv"},
			wantFile: "out.csv",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			path:    "/files/abc.csv",
			item:    Item{DownloadID: "abc"},
			wantErr: errors.ErrDownloadFailed,
		},
		{
			name:    "size mismatch",
			status:  http.StatusOK,
			path:    "/files/abc.csv",
			item:    Item{DownloadID: "abc", Size: 3},
			wantErr: errors.ErrSizeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_, _ = w.Write([]byte(body))
				}
			}))
			defer server.Close()

			dir := t.TempDir()
			item := tt.item
			item.URL = mustParse(t, server.URL+tt.path)

			got, err := NewManager(time.Second, "").Fetch(context.Background(), item, dir)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, stderrors.Is(err, tt.wantErr), err.Error())
				entries, _ := os.ReadDir(dir)
				assert.Empty(t, entries, "no partial files are left behind")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), got)
			data, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.Equal(t, body, string(data))
		})
	}
}

func TestFetch_ReusesCompleteFile(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("abc"))
	}))
	defer server.Close()

	dir := t.TempDir()
	item := Item{DownloadID: "x", URL: mustParse(t, server.URL+"/x.csv"), Size: 3}
	m := NewManager(time.Second, "")

	_, err := m.Fetch(context.Background(), item, dir)
	require.NoError(t, err)
	_, err = m.Fetch(context.Background(), item, dir)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetch_InvalidInput(t *testing.T) {
	m := NewManager(time.Second, "")

	_, err := m.Fetch(context.Background(), Item{DownloadID: "x"}, t.TempDir())
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)

	_, err = m.Fetch(context.Background(), Item{DownloadID: "x", URL: mustParse(t, "http://localhost/x")}, "")
	assert.ErrorIs(t, err, errors.ErrInvalidOutputDir)
}

func TestItemFromMetadata(t *testing.T) {
	item, err := ItemFromMetadata(model.DownloadMetadata{
		DownloadID:    "abc",
		Status:        model.StatusReady,
		DownloadURL:   "https://files.example.com/abc.csv",
		ContentLength: 12,
	}, model.FormatGeoJSON)
	require.NoError(t, err)
	assert.Equal(t, "abc", item.DownloadID)
	assert.Equal(t, "/abc.csv", item.URL.Path)
	assert.Equal(t, int64(12), item.Size)
	assert.Equal(t, ".geojson", item.Extension)

	_, err = ItemFromMetadata(model.NotReady("abc"), model.FormatCSV)
	assert.ErrorIs(t, err, errors.ErrNoDownloadURL)
}
