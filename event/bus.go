package event

// Bus holds the emitters of one game. Every game owns its own Bus.
type Bus struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	CardsDrawn        *cardsDrawnEmitter
	ColorPicked       *colorPickedEmitter
	PlayerPassed      *playerPassedEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	GameWon           *gameWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		GameWon:           &gameWonEmitter{},
	}
}

// Subscribe adds listener to every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(GameWonListener); ok {
		b.GameWon.AddListener(l)
	}
}
