// Package logging provides the colorful leveled logger used by namegen.
//
// Every log line goes to stderr (or a file set with SetOutput) so that stdout
// carries nothing but the rendered name and can be piped or captured.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - printf-style helpers: Info, Warn, Error, Debug, Success
//   - Level filtering by name: DEBUG, INFO, WARN, ERROR
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	logger = newLogger(os.Stderr)

	// current destination, kept so Success can build its styled logger on it
	output io.Writer = os.Stderr
)

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.WarnLevel,
	})
	l.SetStyles(setupCustomStyles())
	return l
}

// setupCustomStyles gives each level a distinct color that reads on both
// light and dark terminals.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// Info logs informational messages.
func Info(format string, v ...any) {
	logger.Info(fmt.Sprintf(format, v...))
}

// Warn logs conditions worth noticing that do not stop a render.
func Warn(format string, v ...any) {
	logger.Warn(fmt.Sprintf(format, v...))
}

// Error logs failures.
func Error(format string, v ...any) {
	logger.Error(fmt.Sprintf(format, v...))
}

// Success logs a completed operation in green at INFO level, so it is
// filtered exactly like Info.
func Success(format string, v ...any) {
	if logger.GetLevel() > log.InfoLevel {
		return
	}

	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281")) // Light green

	tempLogger := log.NewWithOptions(output, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	tempLogger.SetStyles(styles)
	tempLogger.Info(fmt.Sprintf(format, v...))
}

// Debug logs detail useful when tracking down a bad template or corpus.
func Debug(format string, v ...any) {
	logger.Debug(fmt.Sprintf(format, v...))
}

// SetLevel sets the minimum level by name (DEBUG, INFO, WARN, ERROR).
// Unknown names fall back to WARN.
func SetLevel(level string) {
	var logLevel log.Level
	switch level {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.WarnLevel
	}
	logger.SetLevel(logLevel)
}

// SetOutput redirects all logs to w, keeping the current level. A nil w
// suppresses logging entirely.
func SetOutput(w io.Writer) {
	level := logger.GetLevel()
	if w == nil {
		logger.SetLevel(log.FatalLevel + 1)
		return
	}
	output = w
	logger = newLogger(w)
	logger.SetLevel(level)
}
