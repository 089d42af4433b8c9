package main

import (
	"fmt"

	"logbook/cmd/logbook/cli"

	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the metadata directory without opening the interactive view",
		Long: `Create .metadata, its root directory and the default commands.txt in the
current directory. An existing metadata directory is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := opts.ensure()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cli.PrintSuccess(out, "Metadata ready")
			cli.PrintInfo(out, cli.DrawBox(fmt.Sprintf("metadata: %s\nroot:     %s\ncommands: %s",
				paths.MetaDir, paths.RootDir, paths.CommandFile)))
			return nil
		},
	}
}
