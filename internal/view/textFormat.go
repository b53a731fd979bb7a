package view

import (
	"strings"
)

// TruncateTextToWidth Cuts off front of text and adds ellipsis to indicate that text was shortened. Fills lines with spaces.
func TruncateTextToWidth(width int, out string) string {
	return mapLines(out, func(line []rune) string {
		if len(line) <= width {
			return pad(line, width)
		}
		if width > 3 {
			return "..." + string(line[len(line)-width+3:])
		}
		return string(line[len(line)-width:])
	})
}

// TrimTextToWidth Cuts off end of every line if longer than width. Fills lines to width with spaces.
func TrimTextToWidth(width int, out string) string {
	return mapLines(out, func(line []rune) string {
		if len(line) > width {
			return string(line[:width])
		}
		return pad(line, width)
	})
}

func mapLines(out string, fit func(line []rune) string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = fit([]rune(line))
	}
	return strings.Join(lines, "\n")
}

func pad(line []rune, width int) string {
	return string(line) + strings.Repeat(" ", max(width-len(line), 0))
}
