package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/config"
	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/export"
	"github.com/cperrin88/exportpoll/pkg/model"
	"github.com/cperrin88/exportpoll/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetTestOutput(io.Discard)
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeMetadata(t *testing.T, out string) model.DownloadMetadata {
	t.Helper()
	var md model.DownloadMetadata
	require.NoError(t, json.Unmarshal([]byte(out), &md), out)
	return md
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "exportpoll version")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = run(t, "--config", path, "config", "init")
	assert.ErrorIs(t, err, errors.ErrConfigFileExists)

	_, err = run(t, "--config", path, "config", "set", "poll_interval", "2s")
	require.NoError(t, err)

	out, err := run(t, "--config", path, "config", "get", "poll_interval")
	require.NoError(t, err)
	assert.Equal(t, "2s\n", out)

	_, err = run(t, "--config", path, "config", "set", "output_format", "table")
	assert.ErrorIs(t, err, errors.ErrInvalidOutputFormat)

	_, err = run(t, "--config", path, "config", "get", "nope")
	assert.ErrorIs(t, err, errors.ErrUnknownConfigKey)

	_, err = run(t, "--config", path, "config", "set", "token", "secret")
	require.NoError(t, err)
	out, err = run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "poll_interval")
	assert.NotContains(t, out, "secret")
}

func TestMetadata_Hub(t *testing.T) {
	hub := testutil.NewHubServer(t)
	path := testutil.SetupTestConfig(t, func(c *config.Config) { c.Hub.URL = hub.URL })

	out, err := run(t, "--config", path, "-o", "json", "metadata", "abc_0", "--format", "CSV")
	require.NoError(t, err)
	md := decodeMetadata(t, out)
	assert.Equal(t, model.StatusNotReady, md.Status)
	assert.Equal(t, "abc_0:CSV:undefined:undefined:undefined", md.DownloadID)

	hub.MarkReady()
	out, err = run(t, "--config", path, "metadata", "abc_0")
	require.NoError(t, err)
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "/files/abc_0.csv")
}

func TestExport_Hub(t *testing.T) {
	hub := testutil.NewHubServer(t)
	hub.MarkReady()
	path := testutil.SetupTestConfig(t, func(c *config.Config) { c.Hub.URL = hub.URL })
	outDir := t.TempDir()

	out, err := run(t, "--config", path, "-o", "json", "export", "abc_0",
		"--wait", "--interval", "10ms", "--output-dir", outDir)
	require.NoError(t, err)

	md := decodeMetadata(t, out)
	assert.Equal(t, model.StatusReady, md.Status)
	assert.Equal(t, int64(len(testutil.ArtifactBody)), md.ContentLength)
	assert.Equal(t, int32(1), hub.Posts.Load())

	data, err := os.ReadFile(filepath.Join(outDir, "abc_0.csv"))
	require.NoError(t, err)
	assert.Equal(t, testutil.ArtifactBody, string(data))
}

func TestExport_UnsupportedHubFormat(t *testing.T) {
	hub := testutil.NewHubServer(t)
	path := testutil.SetupTestConfig(t, func(c *config.Config) { c.Hub.URL = hub.URL })

	_, err := run(t, "--config", path, "export", "abc_0", "--format", "Excel")
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
	assert.Zero(t, hub.Posts.Load())
}

func TestPortalCommandsNeedPortal(t *testing.T) {
	path := testutil.SetupTestConfig(t, nil)

	_, err := run(t, "--config", path, "metadata", "abc_0", "--target", "portal")
	assert.ErrorIs(t, err, errors.ErrPortalNotConfigured)

	_, err = run(t, "--config", path, "export", "abc_0", "--target", "enterprise")
	assert.ErrorIs(t, err, errors.ErrPortalNotConfigured)
}

func TestPoll_PortalNeedsJob(t *testing.T) {
	portal := testutil.NewPortalServer(t)
	path := testutil.SetupTestConfig(t, portal.WithPortal)

	_, err := run(t, "--config", path, "poll", "abc_0", "--target", "enterprise")
	assert.ErrorIs(t, err, errors.ErrJobIDMissing)
}

func TestExport_PortalPrintsJob(t *testing.T) {
	portal := testutil.NewPortalServer(t)
	path := testutil.SetupTestConfig(t, portal.WithPortal)

	out, err := run(t, "--config", path, "-o", "json", "export", "abc_0", "--target", "portal")
	require.NoError(t, err)

	var job export.Job
	require.NoError(t, json.Unmarshal([]byte(out), &job))
	assert.Equal(t, testutil.PortalJobID, job.JobID)
	assert.Equal(t, testutil.PortalExportID, job.ExportItemID)
	assert.False(t, job.ExportCreated.IsZero())
}

func TestExportWait_Portal(t *testing.T) {
	portal := testutil.NewPortalServer(t)
	path := testutil.SetupTestConfig(t, portal.WithPortal)
	outDir := t.TempDir()

	out, err := run(t, "--config", path, "-o", "json", "export", "abc_0", "--target", "portal",
		"--wait", "--interval", "10ms", "--output-dir", outDir)
	require.NoError(t, err)

	md := decodeMetadata(t, out)
	assert.Equal(t, model.StatusReady, md.Status)
	assert.Equal(t, portal.RESTRoot()+"/content/items/"+testutil.PortalExportID+"/data?token="+testutil.PortalToken, md.DownloadURL)

	data, err := os.ReadFile(filepath.Join(outDir, "abc_0_CSV_undefined_undefined_undefined.csv"))
	require.NoError(t, err)
	assert.Equal(t, testutil.ArtifactBody, string(data))
}

func TestPoll_Portal(t *testing.T) {
	portal := testutil.NewPortalServer(t)
	path := testutil.SetupTestConfig(t, portal.WithPortal)

	out, err := run(t, "--config", path, "poll", "abc_0", "--target", "portal",
		"--job-id", testutil.PortalJobID, "--export-item-id", testutil.PortalExportID, "--interval", "10ms")
	require.NoError(t, err)
	assert.Contains(t, out, "ready")
}
