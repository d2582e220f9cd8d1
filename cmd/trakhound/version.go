package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trakhound/entitystore/internal/server"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "trakhound %s\n", server.Version)
			return err
		},
	}
}
