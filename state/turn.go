package state

import (
	"errors"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/msg"
)

type turn struct{}

// Next plays one action for the current player. A rejected action keeps the same player.
func (*turn) Next(session *Session) (consts.StateID, error) {
	g := session.game
	if g == nil {
		return 0, consts.ErrorsGameNotStarted
	}

	move, err := session.input.RequestAction(g.Snapshot(g.Current()))
	if err != nil {
		if err = session.writeError(err); err != nil {
			return 0, err
		}
		return consts.StateTurn, nil
	}

	outcome, err := g.Apply(move)
	if err != nil {
		if consts.IsExit(err) {
			return 0, err
		}
		if errors.Is(err, consts.ErrorsIllegalMove) || errors.Is(err, consts.ErrorsIndexOutOfRange) {
			session.output.Announce(msg.Message.IllegalMove(err))
			return consts.StateTurn, nil
		}
		return consts.StateTurn, session.writeError(err)
	}

	if outcome.GameOver {
		return consts.StateGameOver, nil
	}
	return consts.StateTurn, nil
}
