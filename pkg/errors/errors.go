// Package errors holds the error taxonomy shared by the export and polling
// packages, plus small wrapping helpers.
package errors

import (
	"fmt"
	"strings"
)

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config to YAML")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")

	// Settings validation errors.
	ErrHTTPTimeoutNegative = fmt.Errorf("http_timeout cannot be negative")
	ErrPollIntervalInvalid = fmt.Errorf("poll_interval must be positive")
	ErrLockWindowNegative  = fmt.Errorf("lock_window cannot be negative")
	ErrInvalidOutputFormat = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel     = fmt.Errorf("invalid log level")
	ErrInvalidURL          = fmt.Errorf("invalid URL")
	ErrHoldingFolderEmpty  = fmt.Errorf("holding_folder cannot be empty")
	ErrPortalNotConfigured = fmt.Errorf("portal_url is not configured")
	ErrPortalUserMissing   = fmt.Errorf("username is required for portal exports")
	ErrDatasetIDEmpty      = fmt.Errorf("dataset id cannot be empty")
	ErrFormatEmpty         = fmt.Errorf("format cannot be empty")
	ErrJobIDMissing        = fmt.Errorf("job id is required to poll a portal export")
	ErrInvalidSpatialRef   = fmt.Errorf("spatial reference must be a numeric wkid")

	// Export taxonomy sentinels, matched with errors.Is against the typed errors below.
	ErrRemoteService     = fmt.Errorf("remote service error")
	ErrMalformedResponse = fmt.Errorf("malformed response")
	ErrUnsupportedFormat = fmt.Errorf("unsupported format")
	ErrExportCompletion  = fmt.Errorf("export completion failed")
	ErrExportFailed      = fmt.Errorf("export failed")

	// Download errors.
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrNoDownloadURL    = fmt.Errorf("export has no download URL")
	ErrSizeMismatch     = fmt.Errorf("downloaded size does not match content length")
	ErrInvalidOutputDir = fmt.Errorf("invalid output directory")
)

// Error types for the export workflow.
type (
	// RemoteServiceError is returned for any non-2xx HTTP response.
	RemoteServiceError struct {
		StatusCode int
		URL        string
		Message    string
	}

	// MalformedResponseError is returned when a backend answers with a body
	// that does not have the expected shape.
	MalformedResponseError struct {
		URL    string
		Reason string
	}

	// UnsupportedFormatError is returned before any network call when the
	// target backend cannot produce the requested format.
	UnsupportedFormatError struct {
		Format string
		Target string
	}

	// ExportCompletionError is raised only by the portal completion handler.
	// Pollers use it to tell an export failure apart from a polling failure.
	ExportCompletionError struct {
		ItemID string
		Err    error
	}
)

// Error implements the error interface for RemoteServiceError.
func (e *RemoteServiceError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return fmt.Sprintf("remote service error: HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("remote service error: HTTP %d from %s: %s", e.StatusCode, e.URL, msg)
}

// Is reports whether target is ErrRemoteService.
func (e *RemoteServiceError) Is(target error) bool { return target == ErrRemoteService }

// Error implements the error interface for MalformedResponseError.
func (e *MalformedResponseError) Error() string {
	if e.URL == "" {
		return "malformed response: " + e.Reason
	}
	return fmt.Sprintf("malformed response from %s: %s", e.URL, e.Reason)
}

// Is reports whether target is ErrMalformedResponse.
func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// Error implements the error interface for UnsupportedFormatError.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q for target %s", e.Format, e.Target)
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// Error implements the error interface for ExportCompletionError.
func (e *ExportCompletionError) Error() string {
	return fmt.Sprintf("failed to complete export of item %s: %v", e.ItemID, e.Err)
}

// Unwrap returns the underlying error for ExportCompletionError.
func (e *ExportCompletionError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExportCompletion.
func (e *ExportCompletionError) Is(target error) bool { return target == ErrExportCompletion }

// NewRemoteServiceError creates a new RemoteServiceError.
func NewRemoteServiceError(statusCode int, url, message string) error {
	return &RemoteServiceError{StatusCode: statusCode, URL: url, Message: message}
}

// NewMalformedResponseError creates a new MalformedResponseError.
func NewMalformedResponseError(url, reason string) error {
	return &MalformedResponseError{URL: url, Reason: reason}
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError.
func NewUnsupportedFormatError(format, target string) error {
	return &UnsupportedFormatError{Format: format, Target: target}
}

// NewExportCompletionError creates a new ExportCompletionError.
func NewExportCompletionError(itemID string, err error) error {
	return &ExportCompletionError{ItemID: itemID, Err: err}
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrInvalidOutputFormatWithDetails creates a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: json, text", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogLevelWithDetails creates a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: debug, info, warn, error", ErrInvalidLogLevel, level)
}

// ErrInvalidURLWithKey creates a wrapped error naming the offending setting.
func ErrInvalidURLWithKey(key, value string) error {
	return fmt.Errorf("%s: %w: %s", key, ErrInvalidURL, value)
}
