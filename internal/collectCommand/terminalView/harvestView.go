package terminalView

import (
	"fmt"
	"gtc/internal/color"
	"gtc/internal/ext"
	"gtc/internal/harvest"
	"io"
	"strings"
)

type HarvestView struct {
	result    harvest.Result
	outputDir string
	stdout    io.Writer
}

func NewHarvestView(result harvest.Result, outputDir string, stdout io.Writer) *HarvestView {
	return &HarvestView{
		result:    result,
		outputDir: outputDir,
		stdout:    stdout,
	}
}

func (v HarvestView) Render(int) int {
	out := fmt.Sprintf("\n%s template files in %s (%s copied this run)\n",
		color.FgGreen(fmt.Sprintf("%d", v.result.Total)),
		color.FgCyan(ext.ReplaceHomeDirWithTilde(v.outputDir)),
		color.FgMagenta(fmt.Sprintf("%d", v.result.Copied)))
	if len(v.result.Collisions) > 0 {
		out += color.FgYellow(fmt.Sprintf("%d templates overwritten by a same-named file from another repository", len(v.result.Collisions))) + "\n"
	}
	_, err := fmt.Fprint(v.stdout, out)
	if err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}
