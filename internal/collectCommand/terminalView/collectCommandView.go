package terminalView

import (
	"gtc/internal/view"
	"io"
	"time"
)

// NewCloneProgressView is what the TTY render loop redraws while clones are running.
func NewCloneProgressView(vm *ProgressViewModel, stdout io.Writer, startTime time.Time) *view.CompositeView {
	compositeView := view.NewCompositeView(nil)
	compositeView.AddView(NewProgressView(vm, stdout))
	compositeView.AddFooter(view.NewTimeElapsedView(startTime, stdout, time.Since))
	return compositeView
}
