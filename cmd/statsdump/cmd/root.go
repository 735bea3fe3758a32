/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/statsdump/pkg/config"
	"github.com/ssargent/statsdump/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// env is the configuration and logger resolved before every command runs
type env struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

type envKey struct{}

func envFrom(cmd *cobra.Command) (*env, error) {
	e, ok := cmd.Context().Value(envKey{}).(*env)
	if !ok {
		return nil, fmt.Errorf("command environment not initialized")
	}
	return e, nil
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statsdump",
		Short: "Red Alert stats dump decoder and collector",
		Long: `statsdump decodes the end-of-match statistics file (stats.dmp) written by
Red Alert 3.03p, archives dumps and serves them over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}

			cfg := config.DefaultConfig()
			if config.ConfigExists(configPath) {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, &env{
				configPath: configPath,
				cfg:        cfg,
				logger:     logger,
			}))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: OS-specific location)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newParseCmd(),
		newTagsCmd(),
		newInitCmd(),
		newArchiveCmd(),
		newServeCmd(),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
