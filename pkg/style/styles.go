// Package style defines the lipgloss styles shared by toolup's command
// output. Colors are adaptive so output stays readable on light and dark
// terminals.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a8c", Dark: "#8cb4ff"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#5fd75f"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#aa6600", Dark: "#ffd75f"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#cc0000", Dark: "#ff5f5f"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#888888"}
	KeyColor     = lipgloss.AdaptiveColor{Light: "#005f87", Dark: "#5fafd7"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(KeyColor)

	EnabledStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Value renders a config value with the boolean convention: "true" green,
// "false" muted, anything else untouched.
func Value(v string) string {
	switch v {
	case "true":
		return EnabledStyle.Render(v)
	case "false":
		return DisabledStyle.Render(v)
	default:
		return v
	}
}
