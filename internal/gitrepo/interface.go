package gitrepo

import "context"

type CloneOptions struct {
	// NonInteractive suppresses credential prompts for this invocation only.
	NonInteractive bool
	// Depth > 0 requests a shallow clone.
	Depth int
}

type Cloner interface {
	Clone(ctx context.Context, reference Reference, destination string, options CloneOptions) Outcome
}

// DestinationReserver claims a unique working directory for a repository URL and returns its path.
type DestinationReserver interface {
	Reserve(url string) (string, error)
}

// Progress observes completed clone jobs.
type Progress interface {
	Advance(completed int)
}

type noProgress struct{}

func (noProgress) Advance(int) {}
