package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"browsermgr/pkg/browser"
	"browsermgr/pkg/inventory"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func headerRow(cols ...string) string {
	row := make([]string, len(cols))
	for i, c := range cols {
		row[i] = Bold(strings.ToUpper(c))
	}
	return strings.Join(row, "\t")
}

// PrintInstalled prints installed browsers with their install source.
func PrintInstalled(out io.Writer, registry *browser.Registry, records []inventory.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, Muted.Sprint("No browsers installed"))
		return
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, headerRow("browser", "source", "package"))

	for _, rec := range records {
		name := rec.Browser
		if desc, ok := registry.Get(rec.Browser); ok {
			name = desc.Name
		}

		detail := rec.Package
		if rec.Provenance == inventory.ProvenanceManual {
			detail = rec.Path
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", BrowserName.Sprint(name), Badge(string(rec.Provenance)), PackageName.Sprint(detail))
	}

	w.Flush()
}

// PrintCatalog prints every catalog browser and whether it is installed.
func PrintCatalog(out io.Writer, registry *browser.Registry, installed inventory.Snapshot) {
	w := newTabWriter(out)
	fmt.Fprintln(w, headerRow("id", "name", "status", "description"))

	for _, desc := range registry.All() {
		status := NotInstalled.Sprint("-")
		if rec, ok := installed[desc.ID]; ok {
			status = Installed.Sprint("installed ") + Badge(string(rec.Provenance))
		}

		// Truncate description if too long
		text := desc.Description
		if len(text) > 50 {
			text = text[:47] + "..."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", desc.ID, BrowserName.Sprint(desc.Name), status, text)
	}

	w.Flush()
}

// Field is one label/value line of an information panel.
type Field struct {
	Label string
	Value string
}

// PrintFields prints a titled panel, skipping empty values.
func PrintFields(out io.Writer, title string, fields []Field) {
	fmt.Fprintln(out, Header.Sprint("\n"+title))
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(out, "  %s: %s\n", Cyan(f.Label), f.Value)
	}
}
