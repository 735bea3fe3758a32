/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/statsdump/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with a generated API key",
		Long: `Create a configuration file for the collector.

The file is written with 0600 permissions and holds a freshly generated
API key that clients must send in the X-API-Key header.

Examples:
  statsdump init
  statsdump init --config ./statsdump.yaml --archive-dir ./dumps`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := envFrom(cmd)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")
			archiveDir, _ := cmd.Flags().GetString("archive-dir")

			if config.ConfigExists(e.configPath) && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s. Use --force to overwrite.\n", e.configPath)
				return nil
			}

			cfg, err := config.BootstrapConfig(e.configPath, archiveDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", e.configPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Archive directory: %s\n", cfg.Archive.Dir)
			fmt.Fprintf(cmd.OutOrStdout(), "API key: %s\n", cfg.Server.APIKey)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
	initCmd.Flags().String("archive-dir", "", "Directory for the dump archive (default ./data)")

	return initCmd
}
