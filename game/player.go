package game

import (
	"github.com/ratel-online/uno/card"
)

// Player is a seated participant and the hand they hold.
type Player struct {
	name string
	seat int
	hand *Hand
}

func NewPlayer(name string, seat int) *Player {
	return &Player{
		name: name,
		seat: seat,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Seat() int {
	return p.seat
}

func (p *Player) AddCard(c card.Card) {
	p.hand.AddCards([]card.Card{c})
}

func (p *Player) AddCards(cards []card.Card) {
	p.hand.AddCards(cards)
}

func (p *Player) RemoveCardAt(index int) (card.Card, error) {
	return p.hand.RemoveCardAt(index)
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

func (p *Player) String() string {
	return p.name
}
