// Package color wraps fatih/color with the handful of foreground colours used on the console.
// Colouring is switched off automatically when stdout is not a terminal.
package color

import "github.com/fatih/color"

var (
	red     = color.New(color.FgRed).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

func FgRed(text string) string {
	return red(text)
}

func FgGreen(text string) string {
	return green(text)
}

func FgYellow(text string) string {
	return yellow(text)
}

func FgCyan(text string) string {
	return cyan(text)
}

func FgMagenta(text string) string {
	return magenta(text)
}
