// Package cli is the user-facing output surface shared by every
// command: styled status lines, headers and the sweep progress line.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorWarning = lipgloss.Color("#FFAF00")
	ColorSubtle  = lipgloss.Color("#767676")

	titleStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarning)
	subtleStyle  = lipgloss.NewStyle().Foreground(ColorSubtle)
)

func Header(title string) {
	fmt.Println()
	fmt.Println(titleStyle.Render("━━ " + title + " " + strings.Repeat("━", max(0, 56-len(title)))))
}

func Infof(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

func Successf(format string, args ...any) {
	fmt.Printf("  %s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	fmt.Printf("  %s %s\n", warnStyle.Render("⚠"), fmt.Sprintf(format, args...))
}

func Failf(format string, args ...any) {
	fmt.Printf("  %s %s\n", errorStyle.Render("✗"), fmt.Sprintf(format, args...))
}

func KeyValue(key, value string) {
	fmt.Printf("  %s %s\n", subtleStyle.Render(fmt.Sprintf("%-18s", key+":")), value)
}

// ProgressLine rewrites the current line with a bar and (index, total)
// counter, used by the plain (non-TUI) bench output.
func ProgressLine(index, total int, desc string) {
	pct := float64(index) / float64(total)
	fmt.Printf("\r%s %3.0f%% | %d/%d | %s", ProgressBar(pct, 24), pct*100, index, total, desc)
	if index == total {
		fmt.Println()
	}
}

// ProgressBar renders a fixed-width bar for pct in [0, 1].
func ProgressBar(pct float64, width int) string {
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + successStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("-", width-filled) + "]"
}
