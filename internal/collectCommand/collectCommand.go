package collectCommand

import (
	"context"
	"fmt"
	"gtc/internal/appConfig"
	"gtc/internal/collectCommand/terminalView"
	"gtc/internal/color"
	"gtc/internal/gitrepo"
	"gtc/internal/harvest"
	"gtc/internal/log"
	"gtc/internal/repolist"
	"gtc/internal/view"
	"gtc/internal/workdir"
	"io"
	"net/http"
	"os"
	"time"
)

type Summary struct {
	References []gitrepo.Reference
	Failures   gitrepo.FailureReport
	Harvest    harvest.Result
}

// CollectCommand runs fetch, clone, harvest and cleanup strictly one after the other.
type CollectCommand struct {
	Config     *appConfig.AppConfig
	HTTPClient *http.Client
	Cloner     gitrepo.Cloner
	Stdout     io.Writer
	// Terminal enables the in-place progress display. Nil prints one progress line per update.
	Terminal *os.File
}

func NewCollectCommand(config *appConfig.AppConfig) *CollectCommand {
	command := &CollectCommand{
		Config:     config,
		HTTPClient: http.DefaultClient,
		Cloner:     config.NewCloner(),
		Stdout:     os.Stdout,
	}
	if view.IsTerminal(os.Stdout) {
		command.Terminal = os.Stdout
	}
	return command
}

func ExecuteCollectCommand(ctx context.Context, config *appConfig.AppConfig) (*Summary, error) {
	return NewCollectCommand(config).Execute(ctx)
}

func (c *CollectCommand) Execute(ctx context.Context) (*Summary, error) {
	startTime := time.Now()
	config := c.Config

	references, err := repolist.Fetch(ctx, c.HTTPClient, config.RepoListURL)
	if err != nil {
		c.println(color.FgRed("Failed to retrieve Repo List from the server."))
		return nil, err
	}
	summary := &Summary{References: references}

	if err := workdir.Prepare(config.WorkingDirectory); err != nil {
		return summary, err
	}

	summary.Failures = c.cloneAll(ctx, references, startTime)
	c.println("Cloning process complete!\n")
	logger.Log.Infof("Cloned %d of %d repositories", len(references)-len(summary.Failures), len(references))
	terminalView.NewFailureView(summary.Failures, logger.GetLogFilePath(), c.Stdout).Render(0)

	summary.Harvest, err = harvest.Harvest(config.WorkingDirectory, config.OutputDirectory, config.TemplateExtension)
	if err != nil {
		return summary, err
	}
	terminalView.NewHarvestView(summary.Harvest, config.OutputDirectory, c.Stdout).Render(0)

	if err := workdir.Cleanup(config.WorkingDirectory); err != nil {
		return summary, err
	}
	c.println("\nRemoving caches and temporary files.\n")

	view.NewTimeElapsedView(startTime, c.Stdout, time.Since).Render(0)
	c.println(color.FgCyan(config.InfoURL))
	return summary, nil
}

func (c *CollectCommand) cloneAll(ctx context.Context, references []gitrepo.Reference, startTime time.Time) gitrepo.FailureReport {
	progress := terminalView.NewProgressViewModel(len(references))
	pool := &gitrepo.ClonePool{
		Cloner:      c.Cloner,
		Reserver:    workdir.NewNamer(c.Config.WorkingDirectory),
		Concurrency: c.Config.Concurrency,
		Options: gitrepo.CloneOptions{
			NonInteractive: true,
			Depth:          c.Config.CloneDepth,
		},
	}

	if c.Terminal == nil {
		progressView := terminalView.NewProgressView(progress, c.Stdout)
		progress.OnAdvance(func() {
			c.println(progressView.Line(0))
		})
		return pool.Run(ctx, references, progress)
	}

	renderCtx, stopRenderLoop := context.WithCancel(ctx)
	renderDone := make(chan struct{})
	go func() {
		defer close(renderDone)
		view.StartTTYRenderLoop(renderCtx, terminalView.NewCloneProgressView(progress, c.Stdout, startTime), c.Stdout, c.Terminal)
	}()
	report := pool.Run(ctx, references, progress)
	stopRenderLoop()
	<-renderDone
	return report
}

func (c *CollectCommand) println(text string) {
	_, err := fmt.Fprintln(c.Stdout, text)
	if err != nil {
		logger.Log.Errorf("Failed to write to console: %v", err)
	}
}
