package heuristic

import (
	"fmt"

	"github.com/lox/pokerbots/internal/game"
)

const (
	// Hands remembered per statistic.
	opponentWindow = 60
	// Hands with a preflop decision needed before the opponent is classified.
	minClassifyHands = 10
	// Confidence below which no adjustments are made.
	minExploitConfidence = 0.25
)

// Style is the opponent's preflop tendency.
type Style int

const (
	StyleUnknown Style = iota
	StyleBalanced
	StyleFish  // loose and passive
	StyleLoose // loose and aggressive
	StyleNit   // rarely plays
	StyleTight // selective and aggressive
)

func (s Style) String() string {
	switch s {
	case StyleBalanced:
		return "balanced"
	case StyleFish:
		return "fish"
	case StyleLoose:
		return "lag"
	case StyleNit:
		return "nit"
	case StyleTight:
		return "tag"
	default:
		return "unknown"
	}
}

// Response is how the opponent reacts to bets after the flop.
type Response int

const (
	ResponseNormal Response = iota
	ResponseWeak            // folds to most bets
	ResponseSticky          // rarely folds
)

// Profile is the current read on the opponent.
type Profile struct {
	Style      Style
	Response   Response
	Confidence float64
}

func (p Profile) String() string {
	switch p.Response {
	case ResponseWeak:
		return p.Style.String() + "/weak"
	case ResponseSticky:
		return p.Style.String() + "/sticky"
	default:
		return p.Style.String()
	}
}

// Adjustments are the exploits applied against a profile.
type Adjustments struct {
	BluffMore      bool
	ValueBetBigger bool
	CallLighter    bool
	FoldMore       bool
}

// OpponentStats are the observed frequencies behind a profile.
type OpponentStats struct {
	Hands       int
	VPIP        float64
	PFR         float64
	FoldToRaise float64
	Aggression  float64
}

func (s OpponentStats) String() string {
	return fmt.Sprintf("hands=%d vpip=%.2f pfr=%.2f fold_to_raise=%.2f aggression=%.2f",
		s.Hands, s.VPIP, s.PFR, s.FoldToRaise, s.Aggression)
}

// window keeps the most recent outcomes of a yes/no statistic.
type window struct {
	size   int
	values []bool
}

func (w *window) add(v bool) {
	if len(w.values) == w.size {
		w.values = w.values[1:]
	}
	w.values = append(w.values, v)
}

func (w *window) rate(empty float64) float64 {
	if len(w.values) == 0 {
		return empty
	}
	n := 0
	for _, v := range w.values {
		if v {
			n++
		}
	}
	return float64(n) / float64(len(w.values))
}

// OpponentModel tracks how the opponent plays over a sliding window of hands.
type OpponentModel struct {
	size        int
	vpip        window
	pfr         window
	foldToRaise window
	aggression  window
	profile     Profile
}

// NewOpponentModel remembers the last size hands, or a default window when
// size is not positive.
func NewOpponentModel(size int) *OpponentModel {
	if size <= 0 {
		size = opponentWindow
	}
	return &OpponentModel{
		size:        size,
		vpip:        window{size: size},
		pfr:         window{size: size},
		foldToRaise: window{size: size},
		aggression:  window{size: size},
	}
}

// RecordPreflop notes the opponent's preflop play for one hand: whether
// chips went in voluntarily and whether it raised.
func (m *OpponentModel) RecordPreflop(voluntary, raised bool) {
	m.vpip.add(voluntary)
	m.pfr.add(raised)
}

// RecordFacingBet notes the opponent's answer to a bet after the flop.
func (m *OpponentModel) RecordFacingBet(kind game.Kind) {
	m.foldToRaise.add(kind == game.Fold)
	m.aggression.add(kind == game.Raise)
}

// Observe records every opponent decision in a finished round and
// reclassifies.
func (m *OpponentModel) Observe(terminal *game.TerminalState, active int) {
	opponent := 1 - active
	var acted, voluntary, raised bool
	for _, step := range game.History(terminal) {
		if step.Seat != opponent {
			continue
		}
		if step.Street == game.Preflop {
			acted = true
			switch step.Action.Kind {
			case game.Call:
				voluntary = true
			case game.Raise:
				voluntary, raised = true, true
			}
			continue
		}
		if step.Facing > 0 && step.Action.Kind != game.Discard {
			m.RecordFacingBet(step.Action.Kind)
		}
	}
	if acted {
		m.RecordPreflop(voluntary, raised)
	}
	m.Classify()
}

// Classify updates the profile from the current windows.
func (m *OpponentModel) Classify() {
	hands := len(m.vpip.values)
	if hands < minClassifyHands {
		m.profile = Profile{}
		return
	}

	vpip := m.vpip.rate(0)
	pfr := m.pfr.rate(0)
	foldToRaise := m.foldToRaise.rate(0.5)

	var p Profile
	switch {
	case vpip > 0.70 && pfr < 0.50:
		p.Style = StyleFish
	case vpip > 0.70:
		p.Style = StyleLoose
	case vpip < 0.25:
		p.Style = StyleNit
	case pfr > 0.40:
		p.Style = StyleTight
	default:
		p.Style = StyleBalanced
	}

	switch {
	case foldToRaise > 0.75:
		p.Response = ResponseWeak
	case foldToRaise < 0.20:
		p.Response = ResponseSticky
	}

	p.Confidence = min(1.0, float64(hands)/float64(m.size))
	m.profile = p
}

// Profile returns the latest classification.
func (m *OpponentModel) Profile() Profile {
	return m.profile
}

// Stats returns the observed frequencies.
func (m *OpponentModel) Stats() OpponentStats {
	return OpponentStats{
		Hands:       len(m.vpip.values),
		VPIP:        m.vpip.rate(0),
		PFR:         m.pfr.rate(0),
		FoldToRaise: m.foldToRaise.rate(0.5),
		Aggression:  m.aggression.rate(0),
	}
}

// Adjustments returns the exploits for the current profile. ok is false
// while the read is too uncertain to act on.
func (m *OpponentModel) Adjustments() (adj Adjustments, ok bool) {
	p := m.profile
	if p.Style == StyleUnknown || p.Confidence < minExploitConfidence {
		return Adjustments{}, false
	}

	switch {
	case p.Style == StyleFish:
		adj.ValueBetBigger = true
		adj.FoldMore = true
	case p.Style == StyleNit || p.Response == ResponseWeak:
		adj.BluffMore = true
	case p.Style == StyleLoose:
		adj.CallLighter = true
	}
	if p.Response == ResponseSticky {
		adj.BluffMore = false
	}
	return adj, true
}
