package colors

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

var structuredLoggingEnabled atomic.Bool

func init() {
	structuredLoggingEnabled.Store(true)
}

// StructuredLogLevel represents log level for structured logs.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// StructuredLogEntry represents a structured log entry.
type StructuredLogEntry struct {
	Timestamp string             `json:"timestamp"`
	Level     StructuredLogLevel `json:"level"`
	Component string             `json:"component"`
	Action    string             `json:"action"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
	Fields    map[string]any     `json:"fields,omitempty"`
}

// DisableStructuredLogging disables structured logging output.
// Shells call this before entering the alternate screen; JSON lines on
// stderr would otherwise tear the rendered frame.
func DisableStructuredLogging() {
	structuredLoggingEnabled.Store(false)
}

// EnableStructuredLogging enables structured logging output.
func EnableStructuredLogging() {
	structuredLoggingEnabled.Store(true)
}

// StructuredLog writes a structured log entry to stderr when debug mode is on.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, fields map[string]any) {
	if !debugEnabled || !structuredLoggingEnabled.Load() {
		return
	}

	entry := StructuredLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Action:    action,
		Status:    status,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		emit(true, "failed to marshal structured log: %v\n", marshalErr)
		return
	}
	emit(true, "%s\n", data)
}

// StructuredInfo logs a structured info entry.
func StructuredInfo(component, action, status string, fields map[string]any) {
	StructuredLog(LevelInfo, component, action, status, nil, fields)
}

// StructuredError logs a structured error entry.
func StructuredError(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelError, component, action, status, err, fields)
}

// ANSI returns the 16-color terminal number for one of the color constants,
// suitable for lipgloss.Color.
func ANSI(code string) string {
	var n int
	if _, err := fmt.Sscanf(code, "\033[0;3%dm", &n); err == nil {
		return fmt.Sprint(n)
	}
	if _, err := fmt.Sscanf(code, "\033[1;3%dm", &n); err == nil {
		return fmt.Sprint(n)
	}
	return "7"
}
