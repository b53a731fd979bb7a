package gitrepo

import (
	"context"
	"gtc/internal/color"
	"gtc/internal/log"
	"gtc/internal/sh"
	"strconv"
)

// Environment for a clone that must fail instead of waiting on a terminal or credential manager.
var nonInteractiveEnv = []string{
	"GIT_TERMINAL_PROMPT=0",
	"GCM_INTERACTIVE=never",
}

// ExecCloner clones by running the git binary.
type ExecCloner struct {
	GitBinary string
	Runner    sh.Runner
}

func NewExecCloner() *ExecCloner {
	return &ExecCloner{
		GitBinary: "git",
		Runner:    sh.Run,
	}
}

func (c *ExecCloner) Clone(ctx context.Context, reference Reference, destination string, options CloneOptions) Outcome {
	args := []string{"clone"}
	if options.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(options.Depth))
	}
	args = append(args, "--", reference.String(), destination)

	var env []string
	if options.NonInteractive {
		env = append(env, nonInteractiveEnv...)
	}

	logger.Log.Debugf("Running %s %v", c.GitBinary, args)
	result, err := c.Runner(ctx, sh.Command{
		Name: c.GitBinary,
		Args: args,
		Env:  env,
	})
	cloneErr := Classify(reference, result.ExitCode, result.Stderr, err)
	if cloneErr != nil {
		logger.Log.Errorf("Failed to clone %s: %v", color.FgRed(reference.String()), cloneErr)
	}
	return Outcome{
		Reference:   reference,
		Destination: destination,
		Err:         cloneErr,
	}
}
