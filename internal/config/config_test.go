package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbots/internal/game"
	"github.com/lox/pokerbots/internal/transport"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerbot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, game.DefaultRules(), cfg.Rules())
}

func TestLoadConfigOverridesAndDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
slow_decision_share = 0.1

game {
  starting_stack = 200
  num_rounds     = 50
}

connection {
  port      = 4000
  transport = "websocket"
  path      = "/engine"
}

bot {
  name = "heuristic"
  seed = 7
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.Rules{StartingStack: 200, BigBlind: 2, SmallBlind: 1, NumRounds: 50}, cfg.Rules())
	assert.Equal(t, "heuristic", cfg.Bot.Name)
	assert.Equal(t, int64(7), cfg.Bot.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.InDelta(t, 0.1, cfg.SlowDecisionShare, 1e-9)

	assert.Equal(t, transport.Endpoint{
		Kind:    transport.KindWebSocket,
		Host:    "localhost",
		Port:    4000,
		Path:    "/engine",
		Timeout: 10 * time.Second,
	}, cfg.Endpoint())
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(writeConfig(t, `game {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")

	_, err = LoadConfig(writeConfig(t, `unknown_attr = 1`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero stack", func(c *Config) { c.Game.StartingStack = 0 }, "starting stack"},
		{"inverted blinds", func(c *Config) { c.Game.SmallBlind = 5 }, "blinds"},
		{"blind above stack", func(c *Config) { c.Game.BigBlind = 500 }, "exceeds starting stack"},
		{"no host", func(c *Config) { c.Connection.Host = "" }, "host is required"},
		{"bad port", func(c *Config) { c.Connection.Port = 70000 }, "invalid port"},
		{"bad transport", func(c *Config) { c.Connection.Transport = "udp" }, "unknown transport"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad share", func(c *Config) { c.SlowDecisionShare = 2 }, "slow_decision_share"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
