package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/styletree/styletree/internal/build"
)

var (
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted detail
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Println(styleError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// printInfo prints a status message.
func printInfo(format string, args ...any) {
	fmt.Println(styleInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented detail line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// printResult renders one build pass: a line per unit, then totals.
func printResult(r *build.Result) {
	for _, rep := range r.Reports {
		if rep.Err != nil {
			printError("%s: %v", rep.Name, rep.Err)
			continue
		}
		printSuccess("%s %s %s", rep.Name, styleDim.Render("→"), rep.Output)
		printDetail("%s in %s", humanSize(rep.Size), rep.Duration.Round(time.Microsecond))
	}

	summary := fmt.Sprintf("%d compiled, %d failed in %s",
		r.Succeeded(), r.Failed(), r.Duration.Round(time.Millisecond))
	if r.Failed() > 0 {
		fmt.Println(styleError.Render(summary))
		return
	}
	fmt.Println(styleDim.Render(summary))
}

// humanSize formats a byte count for the summary lines.
func humanSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}
