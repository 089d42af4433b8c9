package main

import (
	"fmt"

	"logbook/cmd/logbook/cli"
	"logbook/internal/content"

	"github.com/spf13/cobra"
)

func newCommandsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "Print the command reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.builder()
			if err != nil {
				return err
			}
			entries, err := b.Commands()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cli.PrintHeader(out, content.ReferenceTitle)
			for _, e := range entries {
				fmt.Fprintf(out, "%s: %s\n", e.Name, e.Description)
			}
			return nil
		},
	}
}
