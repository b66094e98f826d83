// Package ui presents a session in the terminal: instruction screens,
// fixation/digit/ISI trial phases, mind-wandering probes, and block
// summaries.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application.
type Colors struct {
	Subtle     lipgloss.AdaptiveColor
	Highlight  lipgloss.AdaptiveColor
	Special    lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Inhibition lipgloss.AdaptiveColor
	Free       lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
	// Condition cues keep the source protocol's colors: yellow for
	// response inhibition, blue for non-inhibition.
	Inhibition: lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD700"},
	Free:       lipgloss.AdaptiveColor{Light: "#1E6FD9", Dark: "#4DA6FF"},
}

// Style is the collection of styles used by the views.
type Style struct {
	Title       lipgloss.Style
	Instruction lipgloss.Style
	Fixation    lipgloss.Style
	Stimulus    lipgloss.Style
	CueRI       lipgloss.Style
	CueNRI      lipgloss.Style
	Probe       lipgloss.Style
	Scale       lipgloss.Style
	Summary     lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyle returns the default style configuration.
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.Bold(true).
			Foreground(defaultColors.Highlight),

		Instruction: base,

		Fixation: base.Bold(true),

		Stimulus: base.Bold(true),

		CueRI: base.Bold(true).
			Foreground(defaultColors.Inhibition),

		CueNRI: base.Bold(true).
			Foreground(defaultColors.Free),

		Probe: base,

		Scale: base.Foreground(defaultColors.Highlight),

		Summary: base.Foreground(defaultColors.Special),

		Help: base.Foreground(defaultColors.Subtle),

		Error: base.Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration.
var Current = DefaultStyle()
