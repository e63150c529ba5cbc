// Package testutil provides fake hub and portal backends and config helpers
// for end-to-end command tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/config"
	"github.com/stretchr/testify/assert"
)

// ArtifactBody is the content served for every exported file.
const ArtifactBody = "id,name\n1,alpha\n2,beta\n"

// HubServer fakes the hub downloads API. Until MarkReady is called every
// query answers with an empty collection.
type HubServer struct {
	*httptest.Server
	ready atomic.Bool
	Posts atomic.Int32
}

// NewHubServer starts a fake hub closed at the end of the test.
func NewHubServer(t *testing.T) *HubServer {
	t.Helper()
	hs := &HubServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/datasets/{id}/downloads", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") == "" {
			http.Error(w, "format is required", http.StatusBadRequest)
			return
		}
		if r.Method == http.MethodPost {
			hs.Posts.Add(1)
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		if !hs.ready.Load() {
			_, _ = w.Write([]byte(`{"data":[]}`))
			return
		}
		fileURL := fmt.Sprintf("http://%s/files/%s.%s", r.Host, r.PathValue("id"), r.URL.Query().Get("format"))
		_, _ = fmt.Fprintf(w, `{"data":[{"id":"d1","type":"downloads","attributes":{"status":"ready","downloadUrl":%q,"contentLength":%d}}]}`,
			fileURL, len(ArtifactBody))
	})
	mux.HandleFunc("GET /files/{name}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(ArtifactBody))
	})
	hs.Server = httptest.NewServer(mux)
	t.Cleanup(hs.Close)
	return hs
}

// MarkReady makes subsequent queries report a ready export.
func (hs *HubServer) MarkReady() { hs.ready.Store(true) }

// Portal fixture values.
const (
	PortalUser     = "jsmith"
	PortalToken    = "tok"
	PortalJobID    = "job1"
	PortalExportID = "exp1"
)

// PortalServer fakes the content-management REST API for a single export job
// whose item already sits in the holding folder.
type PortalServer struct {
	*httptest.Server
}

// RESTRoot returns the REST root to configure as portal_url.
func (ps *PortalServer) RESTRoot() string { return ps.URL + "/sharing/rest" }

// NewPortalServer starts a fake portal closed at the end of the test.
func NewPortalServer(t *testing.T) *PortalServer {
	t.Helper()
	user := "/sharing/rest/content/users/" + PortalUser
	item := user + "/items/" + PortalExportID

	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, PortalToken, r.URL.Query().Get("token"))
			assert.Equal(t, "json", r.URL.Query().Get("f"))
			h(w, r)
		}
	}
	reply := func(body string) http.HandlerFunc {
		return authed(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(body)) })
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+user+"/export", authed(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.NotEmpty(t, r.PostForm.Get("itemId"))
		assert.NotEmpty(t, r.PostForm.Get("exportFormat"))
		_, _ = fmt.Fprintf(w, `{"type":%q,"jobId":%q,"exportItemId":%q,"size":0}`,
			r.PostForm.Get("exportFormat"), PortalJobID, PortalExportID)
	}))
	mux.HandleFunc("GET "+item+"/status", authed(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PortalJobID, r.URL.Query().Get("jobId"))
		assert.Equal(t, "export", r.URL.Query().Get("jobType"))
		_, _ = fmt.Fprintf(w, `{"itemId":%q,"status":"completed"}`, PortalExportID)
	}))
	mux.HandleFunc("POST "+item+"/update", authed(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.True(t, strings.HasPrefix(r.PostForm.Get("typeKeywords"), "exportItem:"))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	mux.HandleFunc("POST "+item+"/share", reply(`{"notSharedWith":[]}`))
	mux.HandleFunc("GET "+user, reply(`{"folders":[{"id":"f1","title":"Hub Exports"}]}`))
	mux.HandleFunc("POST "+item+"/move",
		reply(`{"error":{"code":400,"messageCode":"CONT_0011","message":"Item is already in the folder."}}`))
	mux.HandleFunc("GET /sharing/rest/content/items/"+PortalExportID+"/data", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PortalToken, r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(ArtifactBody))
	})

	ps := &PortalServer{Server: httptest.NewServer(mux)}
	t.Cleanup(ps.Close)
	return ps
}

// WithPortal points a configuration at ps with the fixture credentials.
func (ps *PortalServer) WithPortal(cfg *config.Config) {
	cfg.Portal.URL = ps.RESTRoot()
	cfg.Portal.Username = PortalUser
	cfg.Portal.Token = PortalToken
}

// SetupTestConfig writes a default configuration, adjusted by mutate, to a
// temporary directory and returns its path.
func SetupTestConfig(t *testing.T, mutate func(*config.Config)) string {
	t.Helper()

	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	logger.Debugf("Writing test config to: %s", configPath)
	if err := cfg.SaveConfig(configPath); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}
