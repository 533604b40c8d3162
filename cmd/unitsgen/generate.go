package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/measures/internal/manifest"
	"github.com/zeusync/measures/internal/observability/log"
)

func newGenerateCommand(opts *globalOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate [manifest...]",
		Short: "Write the generated operator file of each manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := opts.app()
			if err != nil {
				return err
			}
			defer cleanup()

			paths := manifestArgs(args)
			written := make([]string, len(paths))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range paths {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out, err := generateOne(app.Generator.Write, path, outDir)
					if err != nil {
						app.Log.Error("generate failed", log.String("manifest", path), log.Error(err))
						return err
					}
					written[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, out := range written {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Directory of the generated files (default: next to each manifest)")
	return cmd
}

func generateOne(write func(*manifest.Manifest) (string, error), path, outDir string) (string, error) {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return "", err
	}
	m.Dir = outDir
	return write(m)
}
