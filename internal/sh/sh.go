package sh

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

type DirectoryPath string
type ShellCommand string

// Command is a single process invocation. Env entries are appended to the inherited environment
// of this child only.
type Command struct {
	Dir  DirectoryPath
	Name string
	Args []string
	Env  []string
}

type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes a Command. Run is the production implementation; tests substitute fakes.
type Runner func(ctx context.Context, command Command) (Result, error)

// Run executes the command and captures both output streams.
// A non-zero exit is reported through Result.ExitCode together with the *exec.ExitError.
// ExitCode is -1 when the process could not be started.
func Run(ctx context.Context, command Command) (Result, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = string(command.Dir)
	cmd.Env = append(os.Environ(), command.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		ExitCode: 0,
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}
	return result, err
}

func ExecuteShellCommand(cwd DirectoryPath, command ShellCommand) (string, error) {
	cmd := exec.Command("sh", "-c", string(command))
	cmd.Dir = string(cwd)
	cmd.Env = os.Environ()
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
