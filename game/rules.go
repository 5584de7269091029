package game

import (
	"github.com/ratel-online/uno/card"
)

// Playable reports whether candidateCard may be played on lastPlayedCard. A played wild's
// chosen color is carried by lastPlayedCard.Color().
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.IsWild() {
		return true
	}

	if candidateCard.Color() == lastPlayedCard.Color() {
		return true
	}

	switch candidateCard.Kind() {
	case card.Number:
		return lastPlayedCard.Kind() == card.Number && lastPlayedCard.Number() == candidateCard.Number()
	default:
		return lastPlayedCard.Kind() != card.Number && lastPlayedCard.Kind() == candidateCard.Kind()
	}
}
