package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
)

type gameOver struct{}

func (*gameOver) Next(session *Session) (consts.StateID, error) {
	winner, ok := session.game.Winner()
	if !ok {
		return 0, consts.ErrorsGameNotStarted
	}
	log.Infof("%s won after %d turns\n", winner.Name(), session.game.Turn())
	return 0, nil
}
