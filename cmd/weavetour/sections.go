package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/weavetour/pkg/markup"
	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

// excerptWidth caps the plain-text preview in --json output.
const excerptWidth = 120

// sectionInfo is the --json shape of one section.
type sectionInfo struct {
	Index   int               `json:"index"`
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Excerpt string            `json:"excerpt"`
	Actions []tutorial.Action `json:"actions,omitempty"`
}

func newSectionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List the tutorial sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := tutorial.DefaultStore().Sections()
			out := cmd.OutOrStdout()

			if asJSON {
				infos := make([]sectionInfo, len(sections))
				for i, s := range sections {
					infos[i] = sectionInfo{
						Index:   i,
						ID:      s.ID,
						Title:   s.Title,
						Excerpt: markup.Excerpt(s.Content, excerptWidth),
						Actions: s.Actions,
					}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tID\tTITLE\tACTIONS")
			for i, s := range sections {
				labels := make([]string, len(s.Actions))
				for j, a := range s.Actions {
					labels[j] = string(a.Kind)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, s.ID, s.Title, strings.Join(labels, ","))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}
