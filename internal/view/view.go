package view

import (
	"fmt"
)

// View writes itself to its output and reports how many lines it wrote,
// so a TTY render loop can move the cursor back over them.
type View interface {
	Render(width int) (lines int)
}

func ansiLineOffset(lines int) string {
	return fmt.Sprintf("\033[%dA", lines)
}
