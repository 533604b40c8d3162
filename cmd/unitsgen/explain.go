package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/measures/internal/generator"
)

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "explain <relation>",
		Short:   "Print the operators a single relation implies",
		Example: `  unitsgen explain "Newton:2 X Metre:2 == NewtonMetre"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := generator.Explain(strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
