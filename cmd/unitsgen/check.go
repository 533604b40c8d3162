package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/measures/internal/manifest"
	"github.com/zeusync/measures/internal/observability/log"
)

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [manifest...]",
		Short: "Validate manifests and their relations without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := opts.app()
			if err != nil {
				return err
			}
			defer cleanup()

			var errs []error
			for _, path := range manifestArgs(args) {
				m, err := manifest.LoadFile(path)
				if err == nil {
					var n int
					n, err = countOperators(m)
					if err == nil {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %d relations, %d operators\n", path, len(m.Relations), n)
						continue
					}
				}
				app.Log.Error("check failed", log.String("manifest", path), log.Error(err))
				errs = append(errs, err)
			}
			return errors.Join(errs...)
		},
	}
}

func countOperators(m *manifest.Manifest) (int, error) {
	set, err := m.Resolve()
	if err != nil {
		return 0, err
	}
	return set.Len(), nil
}
