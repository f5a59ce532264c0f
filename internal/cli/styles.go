package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/wavefold/shrinktune/internal/pipeline"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#00879E") // Shrinktune teal
	accentColor  = lipgloss.Color("#E0A526") // Amber
	mutedColor   = lipgloss.Color("#888888") // Gray
	textColor    = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	SavingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)
)

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("Shrinktune 🎚"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSummary prints the final batch report. Totals reflect successful
// files only; failures are called out separately.
func PrintSummary(s pipeline.Summary) {
	fmt.Println(TitleStyle.Render("Batch complete"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Files processed:"), ValueStyle.Render(fmt.Sprintf("%d", s.FilesProcessed)))
	if s.Failed > 0 {
		fmt.Printf("%s %s\n", KeyStyle.Render("Files failed:"), ErrorStyle.Render(fmt.Sprintf("%d", s.Failed)))
	}
	fmt.Printf("%s %s\n", KeyStyle.Render("Original size:"), ValueStyle.Render(pipeline.FormatBytes(s.TotalOriginalBytes)))
	fmt.Printf("%s %s\n", KeyStyle.Render("Compressed size:"), ValueStyle.Render(pipeline.FormatBytes(s.TotalCompressedBytes)))
	fmt.Printf("%s %s\n", KeyStyle.Render("Space saved:"),
		SavingStyle.Render(fmt.Sprintf("%s (%.2f%%)", pipeline.FormatBytes(s.SpaceSaved()), s.PercentSaved())))
	fmt.Printf("%s %s\n", KeyStyle.Render("Elapsed:"), ValueStyle.Render(fmt.Sprintf("%.1fs", s.Elapsed.Seconds())))
}
