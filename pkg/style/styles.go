// Package style centralizes the lipgloss styles and terminal-capability
// checks used when printing documentation.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	AccentColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}
)

// Base styles
var (
	// TitleStyle decorates listing and document headers
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// GroupStyle decorates group names within a listing
	GroupStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// SubGroupStyle decorates nested group names
	SubGroupStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	NormalStyle = lipgloss.NewStyle().
			Foreground(HeadingColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

// IsTerminal reports whether stdout is an interactive terminal
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// HasDarkBackground reports the detected terminal background, defaulting
// to dark when detection is unavailable
func HasDarkBackground() bool {
	if !IsTerminal() {
		return true
	}
	return termenv.HasDarkBackground()
}
