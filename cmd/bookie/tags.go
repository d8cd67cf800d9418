package main

import (
	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with the number of bookmarks carrying each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			tags, err := a.tags.ListWithCounts(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.Tags(tags)
		},
	}
}
