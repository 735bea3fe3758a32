package di

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssargent/statsdump/pkg/api"
)

type stubStarter struct{}

func (stubStarter) StartServer(context.Context, api.DumpArchive, api.ServerConfig, *slog.Logger) error {
	return nil
}

type stubFactory struct{}

func (stubFactory) CreateServerStarter() api.ServerStarter { return stubStarter{} }

func TestNewContainer(t *testing.T) {
	c := NewContainer()

	assert.IsType(t, &api.DefaultArchiveOpener{}, c.GetArchiveOpener())
	assert.IsType(t, &api.DefaultServerFactory{}, c.GetServerFactory())
	assert.IsType(t, &api.DefaultServerStarter{}, c.GetServerFactory().CreateServerStarter())
}

func TestContainerOverrides(t *testing.T) {
	c := NewContainer()
	c.SetServerFactory(stubFactory{})
	c.SetArchiveOpener(nil)

	assert.IsType(t, stubStarter{}, c.GetServerFactory().CreateServerStarter())
	assert.Nil(t, c.GetArchiveOpener())
}
