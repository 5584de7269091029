package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

// Hand keeps cards in the order they were received so listed positions stay stable.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) CardAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, h.outOfRange(index)
	}
	return h.cards[index], nil
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableCards returns the positions of every card that may be played on lastPlayedCard.
func (h *Hand) PlayableCards(lastPlayedCard card.Card) []int {
	var playable []int
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playable = append(playable, index)
		}
	}
	return playable
}

func (h *Hand) RemoveCardAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, h.outOfRange(index)
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

// InsertCardAt puts a card back at index, clamped to the hand bounds.
func (h *Hand) InsertCardAt(index int, c card.Card) {
	if index < 0 {
		index = 0
	}
	if index >= len(h.cards) {
		h.cards = append(h.cards, c)
		return
	}
	h.cards = append(h.cards[:index+1], h.cards[index:]...)
	h.cards[index] = c
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) outOfRange(index int) error {
	return fmt.Errorf("hand position %d of %d: %w", index+1, len(h.cards), consts.ErrorsIndexOutOfRange)
}
