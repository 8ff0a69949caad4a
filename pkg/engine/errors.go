package engine

import (
	"fmt"

	"browsermgr/pkg/installer"
)

// UnknownBrowserError is returned by Resolve for names outside the catalog.
type UnknownBrowserError struct {
	Name string
}

func (e *UnknownBrowserError) Error() string {
	return fmt.Sprintf("unknown browser %q", e.Name)
}

// Unwrap lets errors.Is match installer.ErrUnknownBrowser.
func (e *UnknownBrowserError) Unwrap() error {
	return installer.ErrUnknownBrowser
}
