// Package config loads the bot's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerbots/internal/game"
	"github.com/lox/pokerbots/internal/transport"
)

// Config represents the complete bot configuration
type Config struct {
	Game              *GameSettings       `hcl:"game,block"`
	Connection        *ConnectionSettings `hcl:"connection,block"`
	Bot               *BotSettings        `hcl:"bot,block"`
	Log               *LogSettings        `hcl:"log,block"`
	SlowDecisionShare float64             `hcl:"slow_decision_share,optional"`
}

// GameSettings mirrors the engine's table constants
type GameSettings struct {
	StartingStack int `hcl:"starting_stack,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	SmallBlind    int `hcl:"small_blind,optional"`
	NumRounds     int `hcl:"num_rounds,optional"`
}

// ConnectionSettings describes how to reach the engine
type ConnectionSettings struct {
	Host           string `hcl:"host,optional"`
	Port           int    `hcl:"port,optional"`
	Transport      string `hcl:"transport,optional"`
	Path           string `hcl:"path,optional"`
	ConnectTimeout int    `hcl:"connect_timeout,optional"` // seconds
}

// BotSettings selects the strategy
type BotSettings struct {
	Name string `hcl:"name,optional"`
	Seed int64  `hcl:"seed,optional"`
}

// LogSettings controls log output
type LogSettings struct {
	Level   string `hcl:"level,optional"`
	JSON    bool   `hcl:"json,optional"`
	NoColor bool   `hcl:"no_color,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	rules := game.DefaultRules()
	return &Config{
		Game: &GameSettings{
			StartingStack: rules.StartingStack,
			BigBlind:      rules.BigBlind,
			SmallBlind:    rules.SmallBlind,
			NumRounds:     rules.NumRounds,
		},
		Connection: &ConnectionSettings{
			Host:           "localhost",
			Transport:      transport.KindTCP,
			Path:           "/",
			ConnectTimeout: 10,
		},
		Bot: &BotSettings{
			Name: "callingstation",
		},
		Log: &LogSettings{
			Level: "info",
		},
		SlowDecisionShare: 0.05,
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults(DefaultConfig())
	return &cfg, nil
}

func (c *Config) applyDefaults(d *Config) {
	if c.Game == nil {
		c.Game = d.Game
	} else {
		setInt(&c.Game.StartingStack, d.Game.StartingStack)
		setInt(&c.Game.BigBlind, d.Game.BigBlind)
		setInt(&c.Game.SmallBlind, d.Game.SmallBlind)
		setInt(&c.Game.NumRounds, d.Game.NumRounds)
	}

	if c.Connection == nil {
		c.Connection = d.Connection
	} else {
		setString(&c.Connection.Host, d.Connection.Host)
		setString(&c.Connection.Transport, d.Connection.Transport)
		setString(&c.Connection.Path, d.Connection.Path)
		setInt(&c.Connection.ConnectTimeout, d.Connection.ConnectTimeout)
	}

	if c.Bot == nil {
		c.Bot = d.Bot
	} else {
		setString(&c.Bot.Name, d.Bot.Name)
	}

	if c.Log == nil {
		c.Log = d.Log
	} else {
		setString(&c.Log.Level, d.Log.Level)
	}

	if c.SlowDecisionShare == 0 {
		c.SlowDecisionShare = d.SlowDecisionShare
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.StartingStack <= 0 {
		return fmt.Errorf("starting stack must be positive")
	}
	if c.Game.SmallBlind <= 0 || c.Game.BigBlind < c.Game.SmallBlind {
		return fmt.Errorf("blinds must satisfy 0 < small_blind <= big_blind")
	}
	if c.Game.BigBlind > c.Game.StartingStack {
		return fmt.Errorf("big blind %d exceeds starting stack %d", c.Game.BigBlind, c.Game.StartingStack)
	}
	if c.Game.NumRounds <= 0 {
		return fmt.Errorf("num_rounds must be positive")
	}

	if c.Connection.Host == "" {
		return fmt.Errorf("connection host is required")
	}
	if c.Connection.Port < 0 || c.Connection.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Connection.Port)
	}
	switch c.Connection.Transport {
	case transport.KindTCP, transport.KindWebSocket:
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)",
			c.Connection.Transport, transport.KindTCP, transport.KindWebSocket)
	}
	if c.Connection.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	if c.SlowDecisionShare <= 0 || c.SlowDecisionShare > 1 {
		return fmt.Errorf("slow_decision_share must be in (0, 1]")
	}
	return nil
}

// Rules converts the game block into table constants.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		StartingStack: c.Game.StartingStack,
		BigBlind:      c.Game.BigBlind,
		SmallBlind:    c.Game.SmallBlind,
		NumRounds:     c.Game.NumRounds,
	}
}

// Endpoint converts the connection block into a dial target.
func (c *Config) Endpoint() transport.Endpoint {
	return transport.Endpoint{
		Kind:    c.Connection.Transport,
		Host:    c.Connection.Host,
		Port:    c.Connection.Port,
		Path:    c.Connection.Path,
		Timeout: time.Duration(c.Connection.ConnectTimeout) * time.Second,
	}
}
