package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNotImplemented = errors.New("update is not implemented")

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Edit a bookmark (not implemented)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNotImplemented
		},
	}
}
