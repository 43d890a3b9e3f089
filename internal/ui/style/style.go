// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles groups the text styles used by command output.
type Styles struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Muted lipgloss.Style
	OK    lipgloss.Style
	Bad   lipgloss.Style
	Warn  lipgloss.Style
}

// New returns the command output styles. Without color every style renders
// text unchanged.
func New(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Key: plain, Muted: plain, OK: plain, Bad: plain, Warn: plain}
	}
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(Iris),
		Key:   lipgloss.NewStyle().Foreground(Slate),
		Muted: lipgloss.NewStyle().Foreground(Slate),
		OK:    lipgloss.NewStyle().Foreground(Green),
		Bad:   lipgloss.NewStyle().Foreground(Red),
		Warn:  lipgloss.NewStyle().Foreground(Yellow),
	}
}
