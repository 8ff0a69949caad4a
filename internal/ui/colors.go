// Package ui provides terminal output helpers for browsermgr.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Message styles.
var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan)
	Header  = color.New(color.FgMagenta, color.Bold)
	Muted   = color.New(color.FgHiBlack)

	BrowserName  = color.New(color.FgWhite, color.Bold)
	PackageName  = color.New(color.FgGreen)
	Installed    = color.New(color.FgGreen)
	NotInstalled = color.New(color.FgHiBlack)
)

var provenanceColors = map[string]*color.Color{
	"system":  color.New(color.FgGreen),
	"snap":    color.New(color.FgYellow),
	"flatpak": color.New(color.FgBlue),
	"manual":  color.New(color.FgMagenta),
}

// statusColors colors history outcomes.
var statusColors = map[string]*color.Color{
	"success": color.New(color.FgGreen),
	"dry-run": color.New(color.FgYellow),
	"failed":  color.New(color.FgRed),
}

// symbols are the status markers placed in front of messages.
type symbols struct {
	ok, fail, warn, info, arrow string
}

var (
	unicodeSymbols = symbols{ok: "✓", fail: "✗", warn: "!", info: "→", arrow: "→"}
	asciiSymbols   = symbols{ok: "[OK]", fail: "[ERROR]", warn: "[WARN]", info: "->", arrow: "->"}
)

var (
	// UseColors reports whether colored output is enabled.
	UseColors = true
	// UseUnicode reports whether unicode markers are enabled.
	UseUnicode = true

	sym = unicodeSymbols

	// stdout and stderr go through fatih/color's writers so escapes work everywhere.
	stdout io.Writer = color.Output
	stderr io.Writer = color.Error
)

// Init applies the output settings. NO_COLOR always wins.
func Init(useColors, useUnicode bool) {
	UseColors = useColors && os.Getenv("NO_COLOR") == ""
	UseUnicode = useUnicode

	color.NoColor = !UseColors
	if useUnicode {
		sym = unicodeSymbols
	} else {
		sym = asciiSymbols
	}
}

func say(w io.Writer, c *color.Color, marker, format string, args []any) {
	msg := fmt.Sprintf(format, args...)
	if marker != "" {
		msg = marker + " " + msg
	}
	c.Fprintln(w, msg)
}

// SuccessMsg prints a success message.
func SuccessMsg(format string, args ...any) { say(stdout, Success, sym.ok, format, args) }

// ErrorMsg prints an error message to stderr.
func ErrorMsg(format string, args ...any) { say(stderr, Error, sym.fail, format, args) }

// WarningMsg prints a warning to stderr.
func WarningMsg(format string, args ...any) { say(stderr, Warning, sym.warn, format, args) }

// InfoMsg prints a progress message.
func InfoMsg(format string, args ...any) { say(stdout, Info, sym.info, format, args) }

// HeaderMsg prints a section header preceded by a blank line.
func HeaderMsg(format string, args ...any) {
	fmt.Fprintln(stdout)
	say(stdout, Header, "", format, args)
}

// MutedMsg prints a dim message.
func MutedMsg(format string, args ...any) { say(stdout, Muted, "", format, args) }

// Println prints a plain formatted line.
func Println(format string, args ...any) {
	fmt.Fprintf(stdout, format+"\n", args...)
}

// Badge renders an install source as a colored [tag].
func Badge(provenance string) string {
	c, ok := provenanceColors[provenance]
	if !ok {
		c = Muted
	}
	return c.Sprint("[" + provenance + "]")
}

// Status colors a history outcome.
func Status(status string) string {
	c, ok := statusColors[status]
	if !ok {
		c = Muted
	}
	return c.Sprint(status)
}

const banner = `
+-------------------------------------------+
|                browsermgr                 |
|   install and remove Linux web browsers   |
+-------------------------------------------+`

// Banner prints the program banner.
func Banner() {
	Header.Fprintln(stdout, banner)
}

// Bold returns s in bold.
func Bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Cyan returns s in cyan.
func Cyan(s string) string {
	return color.CyanString(s)
}
