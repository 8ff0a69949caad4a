package installer

import "fmt"

// Level classifies a progress event.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	}
	return "info"
}

// Event is a single progress message.
type Event struct {
	Level   Level
	Message string
}

// Reporter receives progress events as an operation runs.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

// Report calls f(e).
func (f ReporterFunc) Report(e Event) { f(e) }

// Discard drops every event.
var Discard Reporter = ReporterFunc(func(Event) {})

func (i *Installer) infof(format string, args ...any) {
	i.reporter.Report(Event{Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

func (i *Installer) warnf(format string, args ...any) {
	i.reporter.Report(Event{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

func (i *Installer) successf(format string, args ...any) {
	i.reporter.Report(Event{Level: LevelSuccess, Message: fmt.Sprintf(format, args...)})
}

func (i *Installer) errorf(format string, args ...any) {
	i.reporter.Report(Event{Level: LevelError, Message: fmt.Sprintf(format, args...)})
}
