/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/statsdump/pkg/api"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP collector",
		Long: `Start the stats dump collector. Game servers POST raw dumps to
/api/v1/dumps; the collector decodes and archives them, and serves them back
as JSON, text or raw bytes. Prometheus metrics are exposed on /metrics.

Examples:
  statsdump serve
  statsdump serve --port 9000 --bind 0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := envFrom(cmd)
			if err != nil {
				return err
			}
			cfg := e.cfg

			// Flags override the config file only when set explicitly
			if cmd.Flags().Changed("port") {
				cfg.Server.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				cfg.Server.Bind, _ = cmd.Flags().GetString("bind")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if cfg.Server.APIKey == "" {
				e.logger.Warn("no API key configured; the collector API is unauthenticated")
			}

			dumps, err := openArchive(e)
			if err != nil {
				return err
			}
			defer closeArchive(e, dumps)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			starter := container.GetServerFactory().CreateServerStarter()
			return starter.StartServer(ctx, dumps, api.ServerConfig{
				Bind:           cfg.Server.Bind,
				Port:           cfg.Server.Port,
				APIKey:         cfg.Server.APIKey,
				MaxDumpSize:    cfg.Server.MaxDumpSize,
				AllowedOrigins: cfg.Server.AllowedOrigins,
				Strict:         cfg.Decoder.Strict,
			}, e.logger)
		},
	}

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")

	return serveCmd
}
