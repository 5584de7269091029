package event

import "github.com/ratel-online/uno/card"

// CardsDrawnPayload is sent whenever cards move from the deck into a hand.
// Forced is set when a draw-two or wild-draw-four made the player draw.
type CardsDrawnPayload struct {
	Turn       int
	PlayerName string
	Seat       int
	Cards      []card.Card
	Forced     bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
