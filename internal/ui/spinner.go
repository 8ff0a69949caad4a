package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress while package managers are queried. It writes to
// stderr so piped output stays clean.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a stopped spinner labelled with message.
func NewSpinner(message string) *Spinner {
	charSet := spinner.CharSets[14]
	if !UseUnicode {
		charSet = spinner.CharSets[9]
	}

	s := spinner.New(charSet, 100*time.Millisecond, spinner.WithWriter(os.Stderr), spinner.WithHiddenCursor(true))
	s.Suffix = " " + message

	if UseColors {
		_ = s.Color("cyan")
	}

	return &Spinner{s: s}
}

// Start starts the spinner.
func (sp *Spinner) Start() {
	sp.s.Start()
}

// Stop stops the spinner and clears its line.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// While runs fn with a spinner labelled message and returns its result.
func While[T any](message string, fn func() T) T {
	sp := NewSpinner(message)
	sp.Start()
	defer sp.Stop()
	return fn()
}
