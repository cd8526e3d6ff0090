package poker

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerbots/internal/randutil"
)

// EquityOptions controls a Monte Carlo equity run.
type EquityOptions struct {
	Trials       int   // total simulated run-outs
	Workers      int   // 0 means GOMAXPROCS
	Seed         int64 // 0 draws a seed from the clock
	OpponentHole int   // cards the opponent holds, default 2
	BoardSize    int   // board size at showdown, default 5
}

// ErrNotEnoughCards is returned when the deck cannot supply a run-out.
var ErrNotEnoughCards = errors.New("not enough cards left to simulate")

// EquityResult reports how often the hero's hand won or split.
type EquityResult struct {
	Wins   int
	Ties   int
	Trials int
}

// Equity returns the share of pots won, counting splits as half.
func (r EquityResult) Equity() float64 {
	if r.Trials == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Ties)/2) / float64(r.Trials)
}

// Equity estimates the hero's showdown equity against one random hand by
// dealing random opponent cards and board run-outs. Cards in dead are known
// to be out of play.
func Equity(ctx context.Context, hole, board, dead []Card, opts EquityOptions) (EquityResult, error) {
	if opts.Trials <= 0 {
		return EquityResult{}, fmt.Errorf("trials must be positive, got %d", opts.Trials)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	opts.Workers = min(opts.Workers, opts.Trials)
	if opts.OpponentHole <= 0 {
		opts.OpponentHole = 2
	}
	if opts.BoardSize <= 0 {
		opts.BoardSize = 5
	}

	known := make([]Card, 0, len(hole)+len(board)+len(dead))
	known = append(append(append(known, hole...), board...), dead...)
	for _, c := range known {
		if !c.Valid() {
			return EquityResult{}, fmt.Errorf("invalid card %d", c)
		}
	}
	if NewCardSet(known...).Len() != len(known) {
		return EquityResult{}, fmt.Errorf("duplicate cards in %v", known)
	}
	base := NewDeck(known...)
	toBoard := max(0, opts.BoardSize-len(board))
	draw := opts.OpponentHole + toBoard
	if draw > base.Remaining() {
		return EquityResult{}, ErrNotEnoughCards
	}

	results := make([]EquityResult, opts.Workers)
	rngs := randutil.Split(opts.Seed, opts.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range opts.Workers {
		trials := opts.Trials / opts.Workers
		if w < opts.Trials%opts.Workers {
			trials++
		}
		g.Go(func() error {
			deck := base.Clone()
			rng := rngs[w]
			heroCards := make([]Card, 0, len(hole)+opts.BoardSize)
			villainCards := make([]Card, 0, opts.OpponentHole+opts.BoardSize)
			for i := range trials {
				if i%256 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				sample := deck.Sample(rng, draw)
				runout := append(append([]Card(nil), board...), sample[opts.OpponentHole:]...)

				hero, err := Evaluate(append(append(heroCards[:0], hole...), runout...))
				if err != nil {
					return err
				}
				villain, err := Evaluate(append(append(villainCards[:0], sample[:opts.OpponentHole]...), runout...))
				if err != nil {
					return err
				}
				switch {
				case hero > villain:
					results[w].Wins++
				case hero == villain:
					results[w].Ties++
				}
				results[w].Trials++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var total EquityResult
	for _, r := range results {
		total.Wins += r.Wins
		total.Ties += r.Ties
		total.Trials += r.Trials
	}
	return total, nil
}
