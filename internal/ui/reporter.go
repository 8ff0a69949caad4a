package ui

import "browsermgr/pkg/installer"

// Reporter prints installer progress events as status messages.
var Reporter installer.Reporter = installer.ReporterFunc(func(e installer.Event) {
	switch e.Level {
	case installer.LevelSuccess:
		SuccessMsg("%s", e.Message)
	case installer.LevelWarn:
		WarningMsg("%s", e.Message)
	case installer.LevelError:
		ErrorMsg("%s", e.Message)
	default:
		InfoMsg("%s", e.Message)
	}
})
