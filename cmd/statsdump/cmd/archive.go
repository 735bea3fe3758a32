package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/statsdump/pkg/api"
)

// openArchive opens the configured archive through the container
func openArchive(e *env) (api.DumpArchive, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	return container.GetArchiveOpener().OpenArchive(e.cfg.Archive.Dir)
}

// withArchive runs fn against the configured archive and closes it afterwards
func withArchive(cmd *cobra.Command, fn func(e *env, a api.DumpArchive) error) error {
	e, err := envFrom(cmd)
	if err != nil {
		return err
	}
	a, err := openArchive(e)
	if err != nil {
		return err
	}
	defer closeArchive(e, a)
	return fn(e, a)
}

// closeArchive closes a, logging a failure since the command result is already decided
func closeArchive(e *env, a api.DumpArchive) {
	if err := a.Close(); err != nil {
		e.logger.Warn("failed to close archive", "dir", e.cfg.Archive.Dir, "error", err)
	}
}

func newArchiveCmd() *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Store and retrieve dumps in the local archive",
	}

	archiveCmd.AddCommand(
		newArchivePutCmd(),
		newArchiveGetCmd(),
		newArchiveListCmd(),
		newArchiveRmCmd(),
	)
	return archiveCmd
}

func newArchivePutCmd() *cobra.Command {
	putCmd := &cobra.Command{
		Use:   "put <file>...",
		Short: "Decode and archive stats dumps",
		Long: `Decode each file and store it in the archive. Files whose bytes are
already archived are reported as duplicates and not stored again.

Example:
  statsdump archive put games/*.dmp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchive(cmd, func(e *env, a api.DumpArchive) error {
				decoder := newDecoder(cmd.Flags(), e)

				var errs []error
				for _, path := range args {
					raw, err := os.ReadFile(path)
					if err != nil {
						errs = append(errs, fmt.Errorf("failed to read %s: %w", path, err))
						continue
					}
					rec, err := decoder.Decode(raw)
					if err != nil {
						errs = append(errs, fmt.Errorf("%s: %w", path, err))
						continue
					}
					entry, duplicate, err := a.Put(raw, rec)
					if err != nil {
						errs = append(errs, fmt.Errorf("failed to archive %s: %w", path, err))
						continue
					}

					status := "stored"
					if duplicate {
						status = "duplicate"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.ID, status, path)
					e.logger.Debug("archived stats dump", "file", path, "id", entry.ID, "duplicate", duplicate)
				}
				return errors.Join(errs...)
			})
		},
	}

	putCmd.Flags().Bool("strict", false, "Fail on unknown tags instead of skipping them")
	return putCmd
}

func newArchiveGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print an archived dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			raw, _ := cmd.Flags().GetBool("raw")

			return withArchive(cmd, func(e *env, a api.DumpArchive) error {
				data, err := a.Raw(args[0])
				if err != nil {
					return err
				}
				if raw {
					_, err := cmd.OutOrStdout().Write(data)
					return err
				}

				rec, err := newDecoder(cmd.Flags(), e).Decode(data)
				if err != nil {
					return err
				}
				return writeRecord(cmd.OutOrStdout(), rec, format)
			})
		},
	}

	getCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	getCmd.Flags().Bool("raw", false, "Write the original dump bytes")
	getCmd.Flags().Bool("strict", false, "Fail on unknown tags instead of skipping them")
	return getCmd
}

func newArchiveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived dumps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchive(cmd, func(e *env, a api.DumpArchive) error {
				entries, err := a.List()
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tRECEIVED\tSIZE\tGAME\tMAP\tPLAYERS")
				for _, entry := range entries {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
						entry.ID,
						entry.ReceivedAt.Format(time.RFC3339),
						entry.Size,
						entry.GameNumber,
						entry.MapName,
						strings.Join(entry.Players, ", "),
					)
				}
				return w.Flush()
			})
		},
	}
}

func newArchiveRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an archived dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchive(cmd, func(e *env, a api.DumpArchive) error {
				if err := a.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}
