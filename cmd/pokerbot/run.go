package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerbots/internal/config"
	"github.com/lox/pokerbots/internal/runner"
	"github.com/lox/pokerbots/internal/statistics"
	"github.com/lox/pokerbots/internal/transport"
	"github.com/lox/pokerbots/sdk/bots"
)

// CLI is the single pokerbot command. Flags override values from the
// configuration file.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Port int    `arg:"" help:"Engine port"`
	Host string `env:"POKERBOTS_HOST" help:"Engine host (default from config, else localhost)"`

	Config       string `short:"c" default:"pokerbot.hcl" env:"POKERBOTS_CONFIG" help:"HCL configuration file (optional)"`
	Bot          string `env:"POKERBOTS_BOT" help:"Strategy to play (callingstation, random, heuristic)"`
	Seed         int64  `env:"POKERBOTS_SEED" help:"Random seed for the strategy (0 picks one)"`
	Transport    string `help:"Transport (tcp|websocket)"`
	EquityTrials int    `default:"400" help:"Monte Carlo trials per post-flop decision"`

	LogLevel string `env:"POKERBOTS_LOG_LEVEL" help:"Log level (debug|info|warn|error)"`
	LogJSON  bool   `help:"Output JSON logs instead of console format"`
	NoColor  bool   `env:"POKERBOTS_NO_COLOR" help:"Disable colored log output"`
}

// settings merges the configuration file with the command line.
func (c *CLI) settings() (*config.Config, error) {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}

	cfg.Connection.Port = c.Port
	if c.Host != "" {
		cfg.Connection.Host = c.Host
	}
	if c.Transport != "" {
		cfg.Connection.Transport = c.Transport
	}
	if c.Bot != "" {
		cfg.Bot.Name = c.Bot
	}
	if c.Seed != 0 {
		cfg.Bot.Seed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	cfg.Log.JSON = cfg.Log.JSON || c.LogJSON
	cfg.Log.NoColor = cfg.Log.NoColor || c.NoColor

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *CLI) Run() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, os.Stderr)

	strategy, err := bots.New(cfg.Bot.Name, bots.Options{
		Seed:         cfg.Bot.Seed,
		EquityTrials: c.EquityTrials,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	tracker := statistics.NewTracker(strategy, cfg.Game.BigBlind)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := transport.Dial(ctx, cfg.Endpoint(), logger)
	if err != nil {
		return err
	}

	r := runner.New(conn, tracker,
		runner.WithLogger(logger),
		runner.WithRules(cfg.Rules()),
		runner.WithSlowDecisionShare(cfg.SlowDecisionShare),
	)
	logger.Info("Starting match", "bot", cfg.Bot.Name, "endpoint", cfg.Endpoint().Address(), "rounds", cfg.Game.NumRounds)

	err = play(ctx, r, conn)
	tracker.LogSummary(logger)

	switch {
	case err == nil:
		logger.Info("Match complete", "bankroll", r.Match().Bankroll, "slow_decisions", r.SlowDecisions())
		return nil
	case ctx.Err() != nil:
		logger.Warn("Interrupted", "round", r.Match().RoundNum)
		return nil
	case errors.Is(err, runner.ErrConnectionClosed):
		return fmt.Errorf("engine went away during round %d: %w", r.Match().RoundNum, err)
	default:
		return err
	}
}

// play runs the match and closes the connection if ctx ends first, which
// unblocks the runner's pending read.
func play(ctx context.Context, r *runner.Runner, conn runner.Transport) error {
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		return r.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			_ = conn.Close()
		case <-done:
		}
		return nil
	})
	return g.Wait()
}
