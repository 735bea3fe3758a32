package cmd

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/statsdump/pkg/api"
	"github.com/ssargent/statsdump/pkg/config"
	"github.com/ssargent/statsdump/pkg/di"
)

// testDump builds a dump carrying a game number and player 3's credits
func testDump(game int32) []byte {
	body := []byte("IDNO")
	body = binary.BigEndian.AppendUint32(body, 0)
	body = binary.BigEndian.AppendUint32(body, uint32(game))
	body = append(body, "CRD3"...)
	body = binary.BigEndian.AppendUint32(body, 0)
	body = binary.BigEndian.AppendUint32(body, 1500)
	out := binary.BigEndian.AppendUint16(nil, uint16(4+len(body)))
	out = append(out, 0, 0)
	return append(out, body...)
}

// testEnv writes a config file pointing at a temporary archive
func testEnv(t *testing.T) (configPath string, tmpDir string) {
	t.Helper()

	tmpDir = t.TempDir()
	configPath = filepath.Join(tmpDir, "config.yaml")

	cfg := config.DefaultConfig()
	cfg.Archive.Dir = filepath.Join(tmpDir, "archive")
	require.NoError(t, config.SaveConfig(cfg, configPath))

	SetContainer(di.NewContainer())
	return configPath, tmpDir
}

func writeDump(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func executeCommand(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	configPath, tmpDir := testEnv(t)
	path := writeDump(t, tmpDir, "stats.dmp", testDump(7))

	t.Run("text", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "parse", path)
		require.NoError(t, err)
		assert.Contains(t, out, "GameNumber = 7\n")
		assert.Contains(t, out, "Credits for player 3 = 1500\n")
		assert.NotContains(t, out, "MapName")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "parse", "--format", "json", path)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, float64(7), decoded["game_number"])
		assert.Equal(t, "UNPARSED", decoded["map_name"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "parse", "-f", "yaml", path)
		require.NoError(t, err)
		assert.Contains(t, out, "game_number: 7\n")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := executeCommand(t, "--config", configPath, "parse", "--format", "xml", path)
		assert.ErrorContains(t, err, "unknown output format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := executeCommand(t, "--config", configPath, "parse", filepath.Join(tmpDir, "missing.dmp"))
		assert.ErrorContains(t, err, "failed to open stats dump")
	})

	t.Run("unknown tag strict", func(t *testing.T) {
		data := append(testDump(7), "ZZZZ"...)
		binary.BigEndian.PutUint16(data, uint16(len(data)))
		odd := writeDump(t, tmpDir, "odd.dmp", data)

		out, stderr, err := executeCommand(t, "--config", configPath, "parse", odd)
		require.NoError(t, err)
		assert.Contains(t, out, `Unknown tag "ZZZZ" at offset 28`)
		assert.Contains(t, stderr, "skipping unknown stats dump tag")

		_, _, err = executeCommand(t, "--config", configPath, "parse", "--strict", odd)
		assert.ErrorContains(t, err, "unknown tag")
	})
}

func TestLogLevelFlag(t *testing.T) {
	configPath, tmpDir := testEnv(t)
	path := writeDump(t, tmpDir, "stats.dmp", testDump(1))

	_, _, err := executeCommand(t, "--config", configPath, "--log-level", "verbose", "parse", path)
	assert.ErrorContains(t, err, "invalid log level")

	_, _, err = executeCommand(t, "--config", configPath, "--log-level", "debug", "parse", path)
	assert.NoError(t, err)
}

func TestTagsCommand(t *testing.T) {
	configPath, _ := testEnv(t)

	out, _, err := executeCommand(t, "--config", configPath, "tags")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+29+28)
	assert.True(t, strings.HasPrefix(lines[0], "TAG"))
	assert.True(t, strings.HasPrefix(lines[1], "ADR1"))
	assert.Contains(t, out, "CRA (not [CRAT])")
}

func TestInitCommand(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "statsdump", "config.yaml")
	archiveDir := filepath.Join(tmpDir, "dumps")

	t.Run("creates config", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "init", "--archive-dir", archiveDir)
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration written to")

		cfg, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, archiveDir, cfg.Archive.Dir)
		assert.Len(t, cfg.Server.APIKey, 64)
		assert.Contains(t, out, cfg.Server.APIKey)
	})

	t.Run("keeps existing config", func(t *testing.T) {
		before, err := config.LoadConfig(configPath)
		require.NoError(t, err)

		out, _, err := executeCommand(t, "--config", configPath, "init")
		require.NoError(t, err)
		assert.Contains(t, out, "already exists")

		after, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, before.Server.APIKey, after.Server.APIKey)
	})

	t.Run("force regenerates key", func(t *testing.T) {
		before, err := config.LoadConfig(configPath)
		require.NoError(t, err)

		_, _, err = executeCommand(t, "--config", configPath, "init", "--force")
		require.NoError(t, err)

		after, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.NotEqual(t, before.Server.APIKey, after.Server.APIKey)
	})
}

func TestArchiveCommands(t *testing.T) {
	configPath, tmpDir := testEnv(t)
	first := writeDump(t, tmpDir, "first.dmp", testDump(1))
	second := writeDump(t, tmpDir, "second.dmp", testDump(2))
	broken := writeDump(t, tmpDir, "broken.dmp", []byte{0, 4})

	out, _, err := executeCommand(t, "--config", configPath, "archive", "put", first, second)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	firstID := strings.Fields(lines[0])[0]
	assert.Contains(t, lines[0], "stored")

	t.Run("duplicate", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "archive", "put", first)
		require.NoError(t, err)
		assert.Contains(t, out, firstID+"\tduplicate")
	})

	t.Run("undecodable file", func(t *testing.T) {
		_, _, err := executeCommand(t, "--config", configPath, "archive", "put", broken)
		assert.ErrorContains(t, err, "broken.dmp")
	})

	t.Run("list", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "archive", "list")
		require.NoError(t, err)
		assert.Contains(t, out, firstID)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
	})

	t.Run("get", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "archive", "get", firstID)
		require.NoError(t, err)
		assert.Contains(t, out, "GameNumber = 1\n")

		raw, _, err := executeCommand(t, "--config", configPath, "archive", "get", "--raw", firstID)
		require.NoError(t, err)
		assert.Equal(t, string(testDump(1)), raw)
	})

	t.Run("rm", func(t *testing.T) {
		out, _, err := executeCommand(t, "--config", configPath, "archive", "rm", firstID)
		require.NoError(t, err)
		assert.Contains(t, out, "Removed")

		_, _, err = executeCommand(t, "--config", configPath, "archive", "get", firstID)
		assert.Error(t, err)
	})
}

func TestArchiveWithoutContainer(t *testing.T) {
	configPath, _ := testEnv(t)
	SetContainer(nil)
	defer SetContainer(di.NewContainer())

	_, _, err := executeCommand(t, "--config", configPath, "archive", "list")
	assert.ErrorContains(t, err, "dependency container not initialized")
}

// closeFailingArchive closes the real archive but reports a failure
type closeFailingArchive struct {
	api.DumpArchive
}

func (a closeFailingArchive) Close() error {
	if err := a.DumpArchive.Close(); err != nil {
		return err
	}
	return errors.New("sync failed")
}

type closeFailingOpener struct{}

func (closeFailingOpener) OpenArchive(dir string) (api.DumpArchive, error) {
	dumps, err := api.NewArchiveOpener().OpenArchive(dir)
	if err != nil {
		return nil, err
	}
	return closeFailingArchive{dumps}, nil
}

func TestArchiveCloseErrorIsLogged(t *testing.T) {
	configPath, _ := testEnv(t)

	starter := &recordingStarter{}
	c := di.NewContainer()
	c.SetArchiveOpener(closeFailingOpener{})
	c.SetServerFactory(&recordingFactory{starter: starter})
	SetContainer(c)
	defer SetContainer(di.NewContainer())

	t.Run("archive command", func(t *testing.T) {
		_, stderr, err := executeCommand(t, "--config", configPath, "archive", "list")
		require.NoError(t, err)
		assert.Contains(t, stderr, "failed to close archive")
		assert.Contains(t, stderr, "sync failed")
	})

	t.Run("serve", func(t *testing.T) {
		_, stderr, err := executeCommand(t, "--config", configPath, "serve")
		require.NoError(t, err)
		assert.Contains(t, stderr, "failed to close archive")
	})
}

type recordingStarter struct {
	config api.ServerConfig
}

func (s *recordingStarter) StartServer(ctx context.Context, dumps api.DumpArchive, config api.ServerConfig, logger *slog.Logger) error {
	s.config = config
	_, err := dumps.List()
	return err
}

type recordingFactory struct {
	starter *recordingStarter
}

func (f *recordingFactory) CreateServerStarter() api.ServerStarter {
	return f.starter
}

func TestServeCommand(t *testing.T) {
	configPath, _ := testEnv(t)

	starter := &recordingStarter{}
	c := di.NewContainer()
	c.SetServerFactory(&recordingFactory{starter: starter})
	SetContainer(c)

	t.Run("config values", func(t *testing.T) {
		_, stderr, err := executeCommand(t, "--config", configPath, "serve")
		require.NoError(t, err)
		assert.Equal(t, 8080, starter.config.Port)
		assert.Equal(t, "127.0.0.1", starter.config.Bind)
		assert.Equal(t, int64(config.DefaultMaxDumpSize), starter.config.MaxDumpSize)
		assert.Contains(t, stderr, "no API key configured")
	})

	t.Run("flags override config", func(t *testing.T) {
		_, _, err := executeCommand(t, "--config", configPath, "serve", "--port", "9090", "--bind", "0.0.0.0")
		require.NoError(t, err)
		assert.Equal(t, 9090, starter.config.Port)
		assert.Equal(t, "0.0.0.0", starter.config.Bind)
	})

	t.Run("invalid port", func(t *testing.T) {
		_, _, err := executeCommand(t, "--config", configPath, "serve", "--port", "70000")
		assert.ErrorContains(t, err, "invalid server port")
	})
}
