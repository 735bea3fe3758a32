package cmd

import (
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Decode a stats dump and print it",
		Long: `Decode a stats.dmp file and print every field it carries.

Fields absent from the dump are omitted from text output and keep their
sentinel values (-1, "UNPARSED") in json and yaml output.

Examples:
  statsdump parse stats.dmp
  statsdump parse --format json stats.dmp
  statsdump parse --strict stats.dmp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := envFrom(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			rec, err := newDecoder(cmd.Flags(), e).DecodeFile(args[0])
			if err != nil {
				return err
			}
			if n := len(rec.UnknownTags); n > 0 {
				e.logger.Info("decoded with unknown tags", "file", args[0], "count", n)
			}

			return writeRecord(cmd.OutOrStdout(), rec, format)
		},
	}

	parseCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	parseCmd.Flags().Bool("strict", false, "Fail on unknown tags instead of skipping them")

	return parseCmd
}
