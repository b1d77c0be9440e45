package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/weavetour/internal/browser"
	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

// openURL is swapped in tests.
var openURL = browser.Open

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [n]",
		Short: "Open one of the tutorial's resource links",
		Long:  "Without an argument, lists the resource links. With n, opens the nth link in the browser.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			links := tutorial.DefaultStore().Links()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for i, l := range links {
					fmt.Fprintf(out, "%d. %s  %s\n", i+1, l.Label, l.Target)
				}
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(links) {
				return fmt.Errorf("link number must be between 1 and %d", len(links))
			}
			link := links[n-1]
			if err := openURL(link.Target); err != nil {
				return fmt.Errorf("opening %s: %w", link.Target, err)
			}
			fmt.Fprintf(out, "Opened %s\n", link.Target)
			return nil
		},
	}
	return cmd
}
