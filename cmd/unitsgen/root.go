package main

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/measures/internal/injector"
	"github.com/zeusync/measures/internal/observability/log"
)

const defaultManifest = "relations.yaml"

type globalOptions struct {
	verbose   bool
	logFormat string
}

func (o *globalOptions) app() (*injector.App, func(), error) {
	cfg := log.DefaultConfig()
	cfg.Level = injector.LevelOf(o.verbose)
	cfg.Format = log.Format(o.logFormat)
	return injector.InitializeApp(cfg)
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "unitsgen",
		Short:         "Generate unit-aware operators from declared relations",
		Long:          "unitsgen reads relations.yaml manifests and writes the Go functions implied by each declared unit relation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every generated operator")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(log.FormatConsole), "Log encoding: json or console")

	root.AddCommand(
		newGenerateCommand(opts),
		newCheckCommand(opts),
		newExplainCommand(),
	)
	return root
}

func manifestArgs(args []string) []string {
	if len(args) == 0 {
		return []string{defaultManifest}
	}
	return args
}
