package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a bookmark after confirmation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bookmark id %q", args[0])
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			ctx := cmd.Context()
			ok, err := a.bookmarks.Exists(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				return a.out.Notice("no bookmark with id %d", id)
			}

			if !yes {
				b, err := a.bookmarks.GetByID(ctx, id)
				if err != nil {
					return err
				}
				if err := a.out.Bookmark(b); err != nil {
					return err
				}
				confirmed, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete this bookmark?")
				if err != nil {
					return err
				}
				if !confirmed {
					return a.out.Notice("kept bookmark %d", id)
				}
			}

			if err := a.bookmarks.Delete(ctx, id); err != nil {
				return err
			}
			return a.out.Notice("deleted bookmark %d", id)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// confirm asks a yes/no question on out and reads one line from in. Anything
// other than y or yes, including end of input, means no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
