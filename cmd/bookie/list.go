package main

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "display"},
		Short:   "List all bookmarks",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	bookmarks, err := a.bookmarks.ListAll(cmd.Context())
	if err != nil {
		return err
	}
	return a.out.Bookmarks(bookmarks)
}
