package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

// Pile is the discard pile. Its top card sets the color and kind the next play must match.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, consts.DeckSize)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

// Cards returns a copy, bottom card first.
func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) error {
	if len(p.cards) == 0 {
		return consts.ErrorsEmptyState
	}
	p.cards[len(p.cards)-1] = card
	return nil
}

func (p *Pile) Top() (card.Card, error) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, consts.ErrorsEmptyState
	}
	return p.cards[pileSize-1], nil
}

// DrainAllButTop removes every card below the top and returns them.
func (p *Pile) DrainAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	drained := make([]card.Card, len(p.cards)-1)
	copy(drained, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], top)
	return drained
}

func (p *Pile) Size() int {
	return len(p.cards)
}
