package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joestump/bookie/internal/store"
)

func newSearchCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "search [TERM...]",
		Short: "Find bookmarks by tag or by text",
		Long: `Find bookmarks whose tags contain any --tag pattern, or, without --tag,
whose tags, title or url contain any TERM. Matching is case-sensitive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(tags) > 0 && len(args) > 0 {
				return errors.New("use either --tag patterns or text terms, not both")
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var bookmarks []*store.Bookmark
			if len(tags) > 0 {
				bookmarks, err = a.bookmarks.SearchByTags(cmd.Context(), tags)
			} else {
				bookmarks, err = a.bookmarks.SearchByText(cmd.Context(), args)
			}
			if err != nil {
				return err
			}
			return a.out.Bookmarks(bookmarks)
		},
	}

	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag substring (repeatable)")
	return cmd
}
