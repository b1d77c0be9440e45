package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/weavetour/pkg/export"
	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

// copyToClipboard is swapped in tests.
var copyToClipboard = export.CopyToClipboard

func newSnippetCmd() *cobra.Command {
	var copyText bool

	table := tutorial.DefaultSnippets()
	cmd := &cobra.Command{
		Use:       "snippet <key>",
		Short:     "Print an example snippet",
		Long:      "Prints the example code for a snippet key. Keys: " + strings.Join(table.Keys(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: table.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := tutorial.NewPresenter(table, nil).ShowSnippet(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if copyText {
				if err := copyToClipboard(text); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyText, "copy", "c", false, "also copy the snippet to the clipboard")
	return cmd
}
