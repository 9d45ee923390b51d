package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sprawl/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray)
)

const iconSuccess = "✓"

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints run statistics on a single line to w.
// Only diagnostic streams should be passed here; the image goes to stdout unstyled.
func printStats(w io.Writer, s pipeline.Stats) {
	parts := []string{
		stat(s.Cells, "cells"),
		stat(s.Width, "wide"),
		stat(s.Height, "tall"),
		stat(s.Frontier, "frontier"),
	}

	line := styleIconSuccess.Render(iconSuccess) + " "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += part
	}
	line += StyleDim.Render(fmt.Sprintf("  %016x", s.Fingerprint))
	fmt.Fprintln(w, line)
}

func stat(n int, label string) string {
	return StyleNumber.Render(fmt.Sprint(n)) + " " + styleLabel.Render(label)
}
