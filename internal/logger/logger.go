// Package logger is the process-wide structured logger. It wraps logrus so
// packages can log with a map of fields without holding a logger instance.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// OutputFormat selects the log line encoding.
type OutputFormat string

// Supported output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var (
	// testOutput is used to capture log output during tests
	testOutput   io.Writer
	testOutputMu sync.Mutex
)

// Fields is a type alias for log fields to make the API cleaner
type Fields = logrus.Fields

var (
	logger   *logrus.Logger
	loggerMu sync.Mutex
)

// SetTestOutput sets the output writer for testing purposes
func SetTestOutput(w io.Writer) {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = w
}

// UnsetTestOutput resets the test output to nil
func UnsetTestOutput() {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = nil
}

func getOutput() io.Writer {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	if testOutput != nil {
		return testOutput
	}
	return os.Stderr
}

// InitLogger initializes the global logger. Unknown levels fall back to info.
func InitLogger(logLevel string, format OutputFormat) {
	lg := logrus.New()
	lg.SetOutput(getOutput())

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	lg.SetLevel(level)
	lg.SetFormatter(formatterFor(format))

	loggerMu.Lock()
	logger = lg
	loggerMu.Unlock()
}

func formatterFor(format OutputFormat) logrus.Formatter {
	if format == FormatJSON {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
}

// GetLogger returns the configured logger instance.
func GetLogger() *logrus.Logger {
	loggerMu.Lock()
	lg := logger
	loggerMu.Unlock()
	if lg == nil {
		InitLogger("info", FormatText)
		loggerMu.Lock()
		lg = logger
		loggerMu.Unlock()
	}
	return lg
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Info(msg)
}

// Debug logs a debug message (only shown when debug level is enabled).
func Debug(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Debug(msg)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func Warn(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Warn(msg)
}

// Error logs an error message.
func Error(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Error(msg)
}

// Success logs a success message as info with success indicator.
func Success(msg string, fields ...Fields) {
	merged := mergeFields(fields...)
	merged["status"] = "success"
	GetLogger().WithFields(merged).Info(msg)
}

// mergeFields merges multiple field maps into one. Later maps win.
func mergeFields(fields ...Fields) Fields {
	result := make(Fields)
	for _, field := range fields {
		for k, v := range field {
			result[k] = v
		}
	}
	return result
}
