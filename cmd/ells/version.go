package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), buildInfo())
			return nil
		},
	}

	return cmd
}

func buildInfo() string {
	return fmt.Sprintf("ells %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}
