package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
)

// State is a read-only snapshot of the table as seen by one player.
type State struct {
	Turn              int
	PlayerName        string
	Seat              int
	LastPlayedCard    card.Card
	CurrentPlayerHand []card.Card
	PlayableIndexes   []int
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	Direction         Direction
	DeckSize          int
	PileSize          int
}

func (s State) Playable(index int) bool {
	for _, playable := range s.PlayableIndexes {
		if playable == index {
			return true
		}
	}
	return false
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", s.Direction, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Draw pile: %d, discard pile: %d", s.DeckSize, s.PileSize))

	return strings.Join(lines, "\n")
}
