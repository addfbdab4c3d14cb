// Package style holds the palette, icons and lipgloss styles shared by the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#0F9D8A")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
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

// Text styles used by command output.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Teal)
	Label = lipgloss.NewStyle().Foreground(Slate).Width(12)
	Value = lipgloss.NewStyle().Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Slate)
)
