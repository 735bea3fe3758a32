// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"log/slog"

	"github.com/ssargent/statsdump/pkg/archive"
)

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, dumps DumpArchive, config ServerConfig, logger *slog.Logger) error {
	return StartServer(ctx, dumps, config, logger)
}

// DefaultArchiveOpener opens pebble-backed archives
type DefaultArchiveOpener struct{}

// NewArchiveOpener creates a new archive opener
func NewArchiveOpener() ArchiveOpener {
	return &DefaultArchiveOpener{}
}

// OpenArchive opens or creates the archive in dir
func (o *DefaultArchiveOpener) OpenArchive(dir string) (DumpArchive, error) {
	a, err := archive.Open(dir)
	if err != nil {
		return nil, err
	}
	return a, nil
}
