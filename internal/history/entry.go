// Package history records browser install and uninstall operations with BoltDB.
package history

import (
	"time"
)

// Operation represents the kind of browser operation.
type Operation string

const (
	OpInstall   Operation = "install"
	OpUninstall Operation = "uninstall"
)

// Entry represents a single operation in the history.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation Operation `json:"operation"`
	Browser   string    `json:"browser"`
	Method    string    `json:"method"` // requested backend or removed provenance
	Manager   string    `json:"manager"`
	DryRun    bool      `json:"dry_run,omitempty"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewEntry creates a new history entry.
func NewEntry(op Operation, browser, method string) *Entry {
	now := time.Now()
	return &Entry{
		ID:        generateID(now),
		Timestamp: now,
		Operation: op,
		Browser:   browser,
		Method:    method,
	}
}

// Finish marks the entry successful when err is nil and failed otherwise.
func (e *Entry) Finish(err error) *Entry {
	e.Success = err == nil
	e.Error = ""
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// generateID generates a unique ID for the entry.
func generateID(t time.Time) string {
	return t.Format("20060102150405.000000")
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}

// Status returns "success", "failed" or "dry-run".
func (e *Entry) Status() string {
	switch {
	case !e.Success:
		return "failed"
	case e.DryRun:
		return "dry-run"
	}
	return "success"
}

// Summary returns a brief summary of the operation.
func (e *Entry) Summary() string {
	s := e.FormatTime() + " " + string(e.Operation) + " " + e.Browser
	if e.Method != "" {
		s += " [" + e.Method + "]"
	}
	return s + " (" + e.Status() + ")"
}
