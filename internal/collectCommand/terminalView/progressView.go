package terminalView

import (
	"fmt"
	"gtc/internal/color"
	"gtc/internal/counter"
	"gtc/internal/ext"
	"gtc/internal/view"
	"io"
	"strings"
)

const maxBarWidth = 40

// ProgressViewModel counts finished clone jobs. It implements gitrepo.Progress.
type ProgressViewModel struct {
	Total     int
	Completed *counter.Counter
	onAdvance func()
}

func NewProgressViewModel(total int) *ProgressViewModel {
	return &ProgressViewModel{
		Total:     total,
		Completed: counter.NewCounter(),
	}
}

// OnAdvance registers a callback run after every Advance, used when there is no render loop.
func (vm *ProgressViewModel) OnAdvance(callback func()) {
	vm.onAdvance = callback
}

func (vm *ProgressViewModel) Advance(completed int) {
	vm.Completed.Add(completed)
	if vm.onAdvance != nil {
		vm.onAdvance()
	}
}

func (vm *ProgressViewModel) Percentage() float64 {
	if vm.Total == 0 {
		return 100
	}
	return float64(vm.Completed.Count()) / float64(vm.Total) * 100
}

type ProgressView struct {
	viewModel *ProgressViewModel
	stdout    io.Writer
}

func NewProgressView(vm *ProgressViewModel, stdout io.Writer) *ProgressView {
	return &ProgressView{
		viewModel: vm,
		stdout:    stdout,
	}
}

// Line is the uncoloured progress text with a bar sized for width.
func (v ProgressView) Line(width int) string {
	completed := v.viewModel.Completed.Count()
	label := fmt.Sprintf("Cloning repositories %d/%d %6.2f%%", completed, v.viewModel.Total, v.viewModel.Percentage())

	barWidth := ext.Clamp(width-len(label)-3, 0, maxBarWidth)
	if barWidth == 0 {
		return label
	}
	filled := barWidth
	if v.viewModel.Total > 0 {
		filled = ext.Clamp(barWidth*completed/v.viewModel.Total, 0, barWidth)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "] " + label
}

func (v ProgressView) Render(width int) int {
	out := color.FgMagenta(view.TrimTextToWidth(width, v.Line(width))) + "\n"
	_, err := fmt.Fprint(v.stdout, out)
	if err != nil {
		return 0
	}
	return 1
}
