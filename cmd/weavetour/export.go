package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/weavetour/pkg/export"
)

// promptDestination is swapped in tests.
var promptDestination = export.PromptDestination

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		dir         string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the tutorial summary as Markdown",
		Long:  `Writes weave-evaluations-summary.md into --dir (default: export.dir from the config).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dir") {
				dir = cfg.Export.Dir
			}

			if interactive {
				dir, err = promptDestination(dir)
				if errors.Is(err, export.ErrCanceled) {
					fmt.Fprintln(cmd.OutOrStdout(), "Kept existing summary.")
					return nil
				}
				if err != nil {
					return err
				}
			}

			path, err := export.SaveSummary(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved summary to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for the destination")
	return cmd
}
