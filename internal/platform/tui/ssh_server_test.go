package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/logging"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.GameID = jumper.ID
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.Logger = logging.Discard()
	return cfg
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.GameID = "no-such-game"

	_, err := NewSSHServer(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-game")
}

func TestNewSSHServerInvalidGameConfig(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.GameConfig.Platforms.Count = 0

	_, err := NewSSHServer(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewSSHServer(t *testing.T) {
	cfg := testServerConfig(t)

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.DirExists(t, filepath.Dir(cfg.HostKeyPath))
}

func TestSessionUsesServerGameConfig(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.GameConfig.Player.MoveSpeed = 8
	cfg.GameConfig.Terminal.ReleaseTicks = 3

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)

	m, err := srv.newSessionModel("alice", 80, 24, nil)
	require.NoError(t, err)
	m.Init()

	g, ok := m.game.(*jumper.Game)
	require.True(t, ok)

	m = update(t, m, runeKey('d'))
	m = update(t, m, TickMsg{})
	assert.Equal(t, 8.0, g.Snapshot().Vel.X)

	for i := 0; i < 2; i++ {
		m = update(t, m, TickMsg{})
	}
	assert.Equal(t, 0.0, g.Snapshot().Vel.X, "released after the configured ticks")
}
