// Package tui provides the interactive browser menu.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Menu palette. The hues follow the CLI colors in internal/ui.
var (
	ColorAccent = lipgloss.Color("#7C3AED")
	ColorInfo   = lipgloss.Color("#06B6D4")
	ColorOK     = lipgloss.Color("#10B981")
	ColorWarn   = lipgloss.Color("#F59E0B")
	ColorFail   = lipgloss.Color("#EF4444")
	ColorMuted  = lipgloss.Color("#6B7280")
	ColorText   = lipgloss.Color("#F3F4F6")
	ColorBg     = lipgloss.Color("#1F2937")
	ColorPanel  = lipgloss.Color("#374151")
)

// provenanceColors gives each install source a recognisable badge.
var provenanceColors = map[string]lipgloss.Color{
	"system":  ColorOK,
	"snap":    lipgloss.Color("#E95420"),
	"flatpak": lipgloss.Color("#4A90D9"),
	"manual":  lipgloss.Color("#A855F7"),
}

// Styles holds the lipgloss styles the menu renders with.
type Styles struct {
	Header, Footer         lipgloss.Style
	TabActive, TabInactive lipgloss.Style

	Title, Subtitle, Description lipgloss.Style
	ListItem, ListItemSelected   lipgloss.Style
	BrowserName, Label           lipgloss.Style

	Success, Warning, Error lipgloss.Style

	Dialog, DialogTitle, DialogButton lipgloss.Style
}

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// DefaultStyles returns the menu's styles.
func DefaultStyles() *Styles {
	tab := lipgloss.NewStyle().Padding(0, 2)

	return &Styles{
		Header: fg(ColorText).Background(ColorPanel).Padding(0, 1).Bold(true),
		Footer: fg(ColorMuted).Padding(0, 1),

		TabActive:   tab.Foreground(ColorAccent).Bold(true).Underline(true),
		TabInactive: tab.Foreground(ColorMuted),

		Title:       fg(ColorText).Bold(true).MarginBottom(1),
		Subtitle:    fg(ColorInfo).Bold(true),
		Description: fg(ColorMuted),

		ListItem:         lipgloss.NewStyle().PaddingLeft(2),
		ListItemSelected: fg(ColorAccent).Bold(true),

		BrowserName: fg(ColorText).Bold(true),
		Label:       fg(ColorInfo).Width(20),

		Success: fg(ColorOK).Bold(true),
		Warning: fg(ColorWarn).Bold(true),
		Error:   fg(ColorFail).Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2).
			Width(60),
		DialogTitle:  fg(ColorText).Bold(true).MarginBottom(1),
		DialogButton: fg(ColorText).Background(ColorAccent).Padding(0, 2).MarginRight(1),
	}
}

// Badge renders text as a colored label.
func Badge(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1).
		Render(text)
}

// ProvenanceBadge renders an install source as a badge.
func ProvenanceBadge(provenance string) string {
	color, ok := provenanceColors[provenance]
	if !ok {
		color = ColorMuted
	}
	return Badge(provenance, color)
}
