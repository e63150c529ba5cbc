package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cperrin88/exportpoll/internal/logger"
	pkgerrors "github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/fsutil"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "exportpoll/1.0"

// Manager is an HTTP download manager that writes through a temporary file
// and verifies the content length reported by the backend.
type Manager struct {
	client    *http.Client
	userAgent string
}

// NewManager creates a new download manager with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string) *Manager {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Manager{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads a single item and returns the path to the downloaded file.
// An existing file of the expected size is reused.
func (m *Manager) Fetch(ctx context.Context, item Item, dir string) (string, error) {
	if item.URL == nil {
		return "", fmt.Errorf("nil URL: %w", pkgerrors.ErrDownloadFailed)
	}
	if dir == "" {
		return "", pkgerrors.ErrInvalidOutputDir
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", pkgerrors.ErrInvalidOutputDir, dir, err)
	}
	if err := os.MkdirAll(absDir, fsutil.DirModeDefault); err != nil {
		return "", pkgerrors.Wrap(err, "could not create output dir")
	}

	absPath := filepath.Join(absDir, selectFilename(item))
	if reuseExisting(absPath, item.Size) {
		logger.Debug("Reusing downloaded artifact", logger.Fields{"path": absPath})
		return absPath, nil
	}

	resp, err := m.doRequest(ctx, item)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, written, err := writeBodyToTemp(resp.Body, absPath)
	if err != nil {
		return "", err
	}
	if item.Size > 0 && written != item.Size {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%s: got %d bytes, want %d: %w", item.DownloadID, written, item.Size, pkgerrors.ErrSizeMismatch)
	}
	if err := finalizeFile(tmpPath, absPath); err != nil {
		return "", err
	}

	logger.Debug("Artifact downloaded", logger.Fields{
		"download_id": item.DownloadID,
		"path":        absPath,
		"bytes":       written,
	})
	return absPath, nil
}

// selectFilename prefers the explicit name, then the last URL segment when it
// carries an extension, then the download id plus the format extension.
func selectFilename(item Item) string {
	if item.Filename != "" {
		return filepath.Base(item.Filename)
	}
	if base := path.Base(item.URL.Path); strings.Contains(base, ".") && base != "." && base != ".." {
		return base
	}
	return sanitize(item.DownloadID) + item.Extension
}

func sanitize(id string) string {
	if id == "" {
		return "export"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ':', '/', '\\', ' ', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, id)
}

func reuseExisting(absPath string, size int64) bool {
	if size <= 0 {
		return false
	}
	info, err := os.Stat(absPath)
	return err == nil && info.Mode().IsRegular() && info.Size() == size
}

func (m *Manager) doRequest(ctx context.Context, item Item) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "could not create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", item.DownloadID, pkgerrors.ErrDownloadFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d: %w", resp.StatusCode, pkgerrors.ErrDownloadFailed)
	}
	return resp, nil
}

func writeBodyToTemp(body io.Reader, absPath string) (string, int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return "", 0, pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, body)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", 0, pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", 0, pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", 0, pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, written, nil
}

func finalizeFile(tmpPath, absPath string) error {
	if err := os.Chmod(tmpPath, fsutil.FileModeDefault); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	if err := os.Rename(tmpPath, absPath); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	return nil
}
