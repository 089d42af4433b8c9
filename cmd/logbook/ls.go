package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLsCmd(opts *rootOptions) *cobra.Command {
	var nodesOnly bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the entries of the root directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.builder()
			if err != nil {
				return err
			}

			list := b.Entries
			if nodesOnly {
				list = b.Nodes
			}
			names, err := list()
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&nodesOnly, "nodes", "n", false, "only list directories")

	return cmd
}
