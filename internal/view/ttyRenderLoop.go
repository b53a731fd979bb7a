package view

import (
	"context"
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
	"time"
)

const refreshRate = 100 * time.Millisecond

// IsTerminal reports whether file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// TerminalWidth returns the width of file, or fallback when it is not a terminal.
func TerminalWidth(file *os.File, fallback int) int {
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// StartTTYRenderLoop redraws r in place until ctx is cancelled, then draws one last frame
// so the final state stays on screen.
func StartTTYRenderLoop(ctx context.Context, r View, out io.Writer, file *os.File) {
	if !IsTerminal(file) {
		panic(fmt.Errorf("cannot start a TTY render loop on a non-terminal file"))
	}
	RenderLoop(ctx, r, out, func() int { return TerminalWidth(file, 80) }, refreshRate)
}

// RenderLoop is the terminal independent part of StartTTYRenderLoop.
func RenderLoop(ctx context.Context, r View, out io.Writer, width func() int, refresh time.Duration) {
	lineCount := r.Render(width())
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	redraw := func() bool {
		if lineCount > 0 {
			if _, err := fmt.Fprint(out, ansiLineOffset(lineCount)); err != nil {
				return false
			}
		}
		lineCount = r.Render(width())
		return true
	}

	for {
		select {
		case <-ctx.Done():
			redraw()
			return
		case <-ticker.C:
			if !redraw() {
				return
			}
		}
	}
}
