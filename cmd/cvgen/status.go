package main

import (
	"github.com/jonathan/cvgen/internal/artifact"
	"github.com/jonathan/cvgen/internal/observability"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize a CV batch file",
		Long:  "Prints totals per type and per role, and the most recent creation time, for a batch file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := artifact.Load(jsonPath)
			if err != nil {
				return err
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintLibraryStatus(artifact.Status(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", artifact.DefaultPath, "Path to the batch JSON file")
	return cmd
}
