package main

import (
	"github.com/spf13/cobra"

	"github.com/joestump/bookie/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// openApp migrates; what is left is to report where the schema stands.
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			version, err := db.Version(a.db, a.cfg.DB.Driver)
			if err != nil {
				return err
			}
			return a.out.Notice("schema at version %d", version)
		},
	}
}
