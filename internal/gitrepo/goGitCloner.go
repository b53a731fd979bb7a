package gitrepo

import (
	"context"
	"errors"
	"gtc/internal/color"
	"gtc/internal/log"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// GoGitCloner clones in-process with go-git. It has no terminal to prompt on, so every
// clone is non-interactive regardless of CloneOptions.NonInteractive.
type GoGitCloner struct{}

func NewGoGitCloner() *GoGitCloner {
	return &GoGitCloner{}
}

func (c *GoGitCloner) Clone(ctx context.Context, reference Reference, destination string, options CloneOptions) Outcome {
	cloneOptions := &git.CloneOptions{
		URL: reference.String(),
	}
	if options.Depth > 0 {
		cloneOptions.Depth = options.Depth
	}

	logger.Log.Debugf("go-git clone %s into %s", reference, destination)
	_, err := git.PlainCloneContext(ctx, destination, false, cloneOptions)
	if err == nil {
		return Outcome{Reference: reference, Destination: destination}
	}

	cloneErr := &CloneError{
		Reference:    reference,
		ExitCode:     1,
		Stderr:       err.Error(),
		AuthRequired: errors.Is(err, transport.ErrAuthenticationRequired) || errors.Is(err, transport.ErrAuthorizationFailed),
		Err:          err,
	}
	logger.Log.Errorf("Failed to clone %s: %v", color.FgRed(reference.String()), cloneErr)
	return Outcome{
		Reference:   reference,
		Destination: destination,
		Err:         cloneErr,
	}
}
