package protocol

import (
	"fmt"
	"strconv"

	"github.com/lox/pokerbots/internal/game"
)

// EncodeAction renders an action in wire form: F, C, K, D<card> or R<amount>.
// An unknown kind encodes as K.
func EncodeAction(a game.Action) string {
	switch a.Kind {
	case game.Fold:
		return string(TagFold)
	case game.Call:
		return string(TagCall)
	case game.Check:
		return string(TagCheck)
	case game.Discard:
		return string(TagDiscard) + strconv.Itoa(a.Card)
	case game.Raise:
		return string(TagRaise) + strconv.Itoa(a.Amount)
	default:
		return string(TagCheck)
	}
}

// DecodeAction parses a wire-form action. Payloads are only read for D and R.
func DecodeAction(s string) (game.Action, error) {
	if s == "" {
		return game.Action{}, fmt.Errorf("%w: empty", ErrUnknownAction)
	}
	c := Clause{Tag: s[0], Payload: s[1:]}
	switch c.Tag {
	case TagFold:
		return game.FoldAction(), nil
	case TagCall:
		return game.CallAction(), nil
	case TagCheck:
		return game.CheckAction(), nil
	case TagDiscard:
		n, err := c.Int()
		if err != nil {
			return game.Action{}, err
		}
		return game.DiscardAction(n), nil
	case TagRaise:
		n, err := c.Int()
		if err != nil {
			return game.Action{}, err
		}
		return game.RaiseAction(n), nil
	default:
		return game.Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// ClauseAction maps a betting clause to the action it reports. ok is false
// for tags that are not actions.
func ClauseAction(c Clause) (action game.Action, ok bool, err error) {
	switch c.Tag {
	case TagFold, TagCall, TagCheck:
		a, err := DecodeAction(string(c.Tag))
		return a, true, err
	case TagDiscard, TagRaise:
		n, err := c.Int()
		if err != nil {
			return game.Action{}, true, err
		}
		if c.Tag == TagDiscard {
			return game.DiscardAction(n), true, nil
		}
		return game.RaiseAction(n), true, nil
	default:
		return game.Action{}, false, nil
	}
}
