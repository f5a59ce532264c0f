package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00879E"))

	counterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// renderScanning covers the gap between startup and discovery.
func renderScanning() string {
	return headerStyle.Render("Shrinktune") + " " + mutedStyle.Render("scanning for MP3 files...") + "\n"
}

// renderProgress renders the transient progress line with a bar.
func renderProgress(m Model) string {
	percent := 0
	if m.Total > 0 {
		percent = int(m.processed * 100 / int64(m.Total))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Shrinktune"))
	b.WriteString(" ")
	b.WriteString(renderBar(m.processed, int64(m.Total), 30))
	b.WriteString(" ")
	b.WriteString(counterStyle.Render(fmt.Sprintf("%d/%d (%d%%)", m.processed, m.Total, percent)))
	b.WriteString("\n")
	return b.String()
}

// renderBar renders a fixed-width progress bar.
func renderBar(done, total int64, width int) string {
	filled := 0
	if total > 0 {
		filled = int(done * int64(width) / total)
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
