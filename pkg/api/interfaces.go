// Package api provides interfaces for dependency injection
package api

import (
	"context"
	"log/slog"
)

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the collector until ctx is cancelled
	StartServer(ctx context.Context, dumps DumpArchive, config ServerConfig, logger *slog.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}

// ArchiveOpener opens the dump archive the collector writes to
type ArchiveOpener interface {
	// OpenArchive opens or creates the archive in dir
	OpenArchive(dir string) (DumpArchive, error)
}
