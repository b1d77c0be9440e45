package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/weavetour/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of weavetour",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weavetour %s (%s)\n", version.Version, version.Commit())
		},
	}
}
