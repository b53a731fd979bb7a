package terminalView

import (
	"bytes"
	"errors"
	"gtc/internal/color"
	"gtc/internal/gitrepo"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureView_Render(t *testing.T) {
	report := gitrepo.FailureReport{
		{Reference: "https://github.com/org/private.git", Err: &gitrepo.CloneError{Reference: "https://github.com/org/private.git", ExitCode: 128, AuthRequired: true}},
		{Reference: "https://github.com/org/gone.git", Err: errors.New("exit status 128")},
	}
	var buf bytes.Buffer

	lines := NewFailureView(report, "somePath.log", &buf).Render(80)

	expected := color.FgRed("Failed to clone the following repositories:") + "\n" +
		"https://github.com/org/private.git (requires credentials)\n" +
		"https://github.com/org/gone.git\n" +
		"See log file:\n" + color.FgMagenta("somePath.log") + "\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, 5, lines)
}

func TestFailureView_RendersNothingWithoutFailures(t *testing.T) {
	var buf bytes.Buffer

	lines := NewFailureView(nil, "somePath.log", &buf).Render(80)

	assert.Zero(t, lines)
	assert.Empty(t, buf.String())
}
