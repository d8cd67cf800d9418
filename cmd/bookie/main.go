package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bookie",
		Short: "A personal bookmark catalogue",
		Long:  "Bookie stores URLs with a title, notes and tags, and finds them again by tag or text.",
		// With no subcommand bookie lists everything.
		RunE:          runList,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db-driver", "", "database driver: sqlite3, mysql or postgres (env BOOKIE_DB_DRIVER)")
	flags.String("db-dsn", "", "database DSN; defaults to ~/.bookie/bookie.db (env BOOKIE_DB_DSN)")
	flags.String("log-level", "", "debug, info, warn or error (env BOOKIE_LOG_LEVEL)")
	flags.String("log-format", "", "pretty or json (env BOOKIE_LOG_FORMAT)")

	rootCmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newDeleteCmd(),
		newUpdateCmd(),
		newSearchCmd(),
		newTagsCmd(),
		newMigrateCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
