// Package fsutil holds file system helpers shared by the configuration and
// download layers.
package fsutil

// File and directory permission constants.
const (
	FileModeDefault = 0o644 // -rw-r--r--
	FileModePrivate = 0o600 // -rw-------: files holding credentials

	DirModeDefault = 0o755 // drwxr-xr-x
	DirModePrivate = 0o700 // drwx------
)
