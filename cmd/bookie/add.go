package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joestump/bookie/internal/store"
)

func newAddCmd() *cobra.Command {
	var nb store.NewBookmark

	cmd := &cobra.Command{
		Use:   "add URL",
		Short: "Add a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb.URL = args[0]

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			ctx := cmd.Context()
			id, err := a.bookmarks.Add(ctx, nb)
			if errors.Is(err, store.ErrDuplicateURL) {
				// Not a failure: the url is already catalogued.
				a.log.Warn("bookmark not saved", "reason", "duplicate url", "url", nb.URL)
				return a.out.Notice("already bookmarked: %s", nb.URL)
			}
			if err != nil {
				return err
			}

			b, err := a.bookmarks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return a.out.Bookmark(b)
		},
	}

	cmd.Flags().StringVar(&nb.Title, "title", "", "bookmark title")
	cmd.Flags().StringVarP(&nb.Notes, "notes", "n", "", "free-text notes")
	cmd.Flags().StringArrayVarP(&nb.Tags, "tags", "t", nil, "tag (repeatable; commas are part of the name)")
	return cmd
}
