package terminalView

import (
	"errors"
	"fmt"
	"gtc/internal/color"
	"gtc/internal/ext"
	"gtc/internal/gitrepo"
	"io"
	"strings"
)

type FailureView struct {
	report      gitrepo.FailureReport
	logFilePath string
	stdout      io.Writer
}

func NewFailureView(report gitrepo.FailureReport, logFilePath string, stdout io.Writer) *FailureView {
	return &FailureView{
		report:      report,
		logFilePath: logFilePath,
		stdout:      stdout,
	}
}

func (v FailureView) Render(int) int {
	if len(v.report) == 0 {
		return 0
	}
	var out strings.Builder
	out.WriteString(color.FgRed("Failed to clone the following repositories:") + "\n")
	for _, outcome := range v.report {
		out.WriteString(outcome.Reference.String())
		var cloneErr *gitrepo.CloneError
		if errors.As(outcome.Err, &cloneErr) && cloneErr.AuthRequired {
			out.WriteString(" (requires credentials)")
		}
		out.WriteString("\n")
	}
	out.WriteString(fmt.Sprintf("See log file:\n%s\n", color.FgMagenta(ext.ReplaceHomeDirWithTilde(v.logFilePath))))

	_, err := fmt.Fprint(v.stdout, out.String())
	if err != nil {
		return 0
	}
	return strings.Count(out.String(), "\n")
}
