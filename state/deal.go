package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
)

type deal struct{}

// beginner is a listener that wants the seating before the first card is turned.
type beginner interface {
	Begin(players []string, handSize int, seed int64)
}

func (*deal) Next(session *Session) (consts.StateID, error) {
	bus := event.NewBus()
	for _, listener := range session.listeners {
		bus.Subscribe(listener)
	}

	options := []game.Option{
		game.WithShuffler(game.SeededShuffler(session.config.Seed)),
		game.WithHandSize(session.config.HandSize),
		game.WithEvents(bus),
	}
	g, err := game.New(session.names, session.input, append(options, session.options...)...)
	if err != nil {
		return 0, err
	}

	for _, listener := range session.listeners {
		if b, ok := listener.(beginner); ok {
			b.Begin(session.names, session.config.HandSize, session.config.Seed)
		}
	}

	session.output.Announce(msg.Message.PlayersSeated(session.names))
	if err := g.Start(); err != nil {
		return 0, err
	}
	session.game = g

	log.Infof("dealt %d cards to %d players\n", session.config.HandSize, len(session.names))
	return consts.StateTurn, nil
}
