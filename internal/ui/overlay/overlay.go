// Package overlay layers rendered blocks on top of a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block over base with its top-left corner at column x, row y.
// Block lines replace the base cells they cover; cells outside the block
// keep their base content and styling. base lines shorter than width are
// padded, and block content past width or below the last base line is
// clipped. Both strings may contain ANSI styling.
func Place(base, block string, x, y, width int) string {
	if block == "" || x >= width {
		return base
	}
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		col := x
		if col < 0 {
			line = ansi.Cut(line, -col, ansi.StringWidth(line))
			col = 0
		}
		lineWidth := ansi.StringWidth(line)
		if col+lineWidth > width {
			line = ansi.Truncate(line, width-col, "")
			lineWidth = width - col
		}
		if lineWidth == 0 {
			continue
		}

		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, col) + line
		if end := col + lineWidth; end < width {
			result += ansi.Cut(baseLine, end, width)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}
