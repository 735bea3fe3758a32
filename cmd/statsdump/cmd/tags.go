package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ssargent/statsdump/pkg/statsdump"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tags the decoder understands",
		Long: `Print the tag dispatch table in precedence order: exact tags first,
then substring patterns, of which the first match wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tMATCH\tFIELD\tPLAYER\tGARBAGE\tCODEC")
			for _, rule := range statsdump.DefaultTable().Rules() {
				pattern := rule.Pattern
				if len(rule.Except) > 0 {
					pattern = fmt.Sprintf("%s (not %v)", pattern, rule.Except)
				}
				h := rule.Handler
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n", pattern, rule.Match, h.Field, h.Slot, h.Garbage, h.Codec)
			}
			return w.Flush()
		},
	}
}
