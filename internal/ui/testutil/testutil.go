// Package testutil provides helpers for testing rendered views.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences, including the kitty graphics
// sequences an image page writes.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines splits a rendered view into plain lines.
func Lines(view string) []string {
	return strings.Split(StripANSI(view), "\n")
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first plain line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Locate returns the cell column and row of the first occurrence of substr
// in the plain view.
func Locate(view, substr string) (x, y int, ok bool) {
	for row, line := range Lines(view) {
		if i := strings.Index(line, substr); i >= 0 {
			return ansi.StringWidth(line[:i]), row, true
		}
	}
	return 0, 0, false
}

// Cell returns the text of one cell-wide slice of the view at (x, y), or
// "" when out of range.
func Cell(view string, x, y int) string {
	lines := Lines(view)
	if y < 0 || y >= len(lines) || x < 0 {
		return ""
	}
	return ansi.Cut(lines[y], x, x+1)
}

// CountLines returns the number of non-blank lines in the output.
func CountLines(output string) int {
	count := 0
	for _, line := range Lines(output) {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// MaxWidth returns the widest line of the view in cells.
func MaxWidth(view string) int {
	w := 0
	for _, line := range strings.Split(view, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}
