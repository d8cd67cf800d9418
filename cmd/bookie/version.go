package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/bookie/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bookie %s (commit %s, branch %s)\n",
				build.Version, build.Commit, build.Branch)
			return err
		},
	}
}
