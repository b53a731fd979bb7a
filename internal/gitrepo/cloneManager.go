package gitrepo

import (
	"context"
	"fmt"
	"gtc/internal/color"
	"gtc/internal/ext"
	"gtc/internal/log"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 6

// FailureReport lists failed clone jobs in completion order.
type FailureReport []Outcome

func (r FailureReport) References() []Reference {
	return lo.Map(r, func(outcome Outcome, _ int) Reference {
		return outcome.Reference
	})
}

// ClonePool runs one clone job per reference with at most Concurrency jobs in flight.
type ClonePool struct {
	Cloner      Cloner
	Reserver    DestinationReserver
	Concurrency int
	Options     CloneOptions
}

// Run blocks until every job has finished. Jobs have no timeout; a hung clone holds its slot
// while the other slots keep draining the queue.
func (p *ClonePool) Run(ctx context.Context, references []Reference, progress Progress) FailureReport {
	if progress == nil {
		progress = noProgress{}
	}
	total := len(references)
	outcomes := make(chan Outcome, total)

	jobs := errgroup.Group{}
	jobs.SetLimit(ext.DefaultValue(p.Concurrency, DefaultConcurrency))

	// Go blocks while every slot is busy, so submission runs beside the collecting loop.
	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		for _, reference := range references {
			jobs.Go(func() error {
				outcomes <- p.cloneOne(ctx, reference)
				return nil
			})
		}
	}()

	var report FailureReport
	for completed := 0; completed < total; {
		batch := []Outcome{<-outcomes}
	drain:
		for {
			select {
			case outcome := <-outcomes:
				batch = append(batch, outcome)
			default:
				break drain
			}
		}

		for _, outcome := range batch {
			if outcome.Failed() {
				report = append(report, outcome)
			}
		}
		completed += len(batch)
		logger.Log.Debugf("%d of %d clone jobs done", completed, total)
		progress.Advance(len(batch))
	}

	<-submitted
	_ = jobs.Wait()
	return report
}

func (p *ClonePool) cloneOne(ctx context.Context, reference Reference) Outcome {
	destination, err := p.Reserver.Reserve(reference.String())
	if err != nil {
		logger.Log.Errorf("Failed to reserve a directory for %s: %v", color.FgRed(reference.String()), err)
		return Outcome{
			Reference: reference,
			Err:       fmt.Errorf("reserve destination for %s: %w", reference, err),
		}
	}
	logger.Log.Infof("Cloning %s to %s", color.FgMagenta(reference.String()), color.FgMagenta(destination))
	return p.Cloner.Clone(ctx, reference, destination, p.Options)
}
