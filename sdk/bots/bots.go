// Package bots is the registry of built-in strategies selectable by name.
package bots

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerbots/internal/runner"
	"github.com/lox/pokerbots/sdk/bots/callingstation"
	"github.com/lox/pokerbots/sdk/bots/heuristic"
	"github.com/lox/pokerbots/sdk/bots/random"
)

// Options are passed to every bot constructor.
type Options struct {
	Seed         int64
	EquityTrials int
	Logger       *log.Logger
}

var registry = map[string]func(Options) runner.Strategy{
	"callingstation": func(Options) runner.Strategy { return callingstation.Handler{} },
	"random":         func(o Options) runner.Strategy { return random.NewHandler(o.Seed) },
	"heuristic": func(o Options) runner.Strategy {
		return heuristic.NewHandler(heuristic.Config{Seed: o.Seed, EquityTrials: o.EquityTrials, Logger: o.Logger})
	},
}

// Names returns the registered bot names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the named bot.
func New(name string, opts Options) (runner.Strategy, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(opts), nil
}
