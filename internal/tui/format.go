package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// wrapText wraps text to fit within width, with optional indent for continuation lines.
// maxLines limits output; 0 means unlimited. Truncates with "..." if exceeded.
func wrapText(text string, width int, indent string, maxLines int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		if lipgloss.Width(currentLine)+1+lipgloss.Width(word) <= width {
			currentLine += " " + word
			continue
		}
		lines = append(lines, currentLine)
		currentLine = indent + word
	}
	lines = append(lines, currentLine)

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[len(lines)-1])
		if len(last) > 3 {
			lines[len(lines)-1] = string(last[:len(last)-3]) + "..."
		}
	}

	return strings.Join(lines, "\n")
}

// padBetween joins left and right with enough spaces to span width.
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + strings.Repeat(" ", max(gap, 1)) + right
}

// progressBar renders a bar of the given width with done/total filled.
func progressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := min(width*done/total, width)
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// heightOf returns the rendered height of a string, treating empty strings as 0 lines.
// This is needed because lipgloss.Height("") returns 1.
func heightOf(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
