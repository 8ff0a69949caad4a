package cli

import "errors"

var (
	// ErrAborted is returned when the user aborts an operation.
	ErrAborted = errors.New("operation aborted by user")

	// ErrBootstrap wraps every failure to start up: wrong OS or a broken config file.
	ErrBootstrap = errors.New("startup failed")

	// ErrUnsupportedOS is returned on anything but Linux.
	ErrUnsupportedOS = errors.New("browsermgr only supports Linux")

	// ErrNotInteractive is returned when a prompt is needed but stdin is not a terminal.
	ErrNotInteractive = errors.New("no browser given and stdin is not a terminal")

	// ErrNothingInstalled is returned by uninstall when there is nothing to pick from.
	ErrNothingInstalled = errors.New("no catalog browsers are installed")
)
