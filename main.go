package main

import (
	"context"
	"flag"
	"fmt"
	"gtc/internal/appConfig"
	"gtc/internal/collectCommand"
	"gtc/internal/color"
	. "gtc/internal/log"
	typex "gtc/type"
	"os"
)

func main() {
	var verbose = typex.NullableBool{}
	flag.Var(&verbose, "verbose", "Print verbose output to the log file")
	configFile := flag.String("config", appConfig.DefaultConfigFileName, "Configuration file, looked up in the current and home directory")
	flag.Parse()
	InitLogger(verbose.Val(false))

	config, err := appConfig.LoadConfig(*configFile)
	if err != nil {
		Log.Errorf("Failed to load configuration: %v", err)
		fail(err)
	}
	Log.Infof("Collecting %s templates from %s into %s", config.TemplateExtension, config.RepoListURL, config.OutputDirectory)

	summary, err := collectCommand.ExecuteCollectCommand(context.Background(), config)
	if err != nil {
		Log.Errorf("Template collection aborted: %v", err)
		fail(err)
	}
	Log.Infof("Done: %d repositories, %d failed, %d templates", len(summary.References), len(summary.Failures), summary.Harvest.Total)
}

func fail(err error) {
	_, _ = fmt.Fprintln(os.Stderr, color.FgRed(err.Error()))
	os.Exit(1)
}
