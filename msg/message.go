package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter builds every line the table sees. Each message ends with a newline.
type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) PlayersSeated(names []string) string {
	return Sprintfln("Players: %s", strings.Join(names, ", "))
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return Sprintfln("First card is %s", c)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card, cardsLeft int) string {
	if cardsLeft == 1 {
		return Sprintfln("%s played %s! UNO!", playerName, c)
	}
	return Sprintfln("%s played %s!", playerName, c)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, c)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(clockwise bool) string {
	if clockwise {
		return Sprintln("Turn order has been reversed! Play goes clockwise.")
	}
	return Sprintln("Turn order has been reversed! Play goes counter-clockwise.")
}

func (m MessageWriter) WinnerFound(playerName string, turns int) string {
	return Sprintfln("%s wins after %d turn(s)!", playerName, turns)
}

// HandListing numbers the hand from 1 and stars every card that can be played.
func (m MessageWriter) HandListing(hand []card.Card, playable func(index int) bool) string {
	lines := []string{"Your hand:"}
	for index, c := range hand {
		marker := " "
		if playable(index) {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %2d. %s", marker, index+1, c))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) NoPlayableCards(playerName string, top card.Card) string {
	return Sprintfln("%s, none of your cards match %s!", playerName, top)
}

func (m MessageWriter) CardSelection(handSize int) string {
	return Sprintfln("Select a card to play (1-%d), or 0 to draw:", handSize)
}

func (m MessageWriter) ColorSelection() string {
	names := make([]string, 0, len(color.Selectable))
	for _, c := range color.Selectable {
		names = append(names, fmt.Sprintf("'%s'", c))
	}
	return Sprintfln("Select a color: %s?", strings.Join(names, ", "))
}

func (m MessageWriter) NameRequest(seat int) string {
	return Sprintfln("Name of player %d:", seat+1)
}

func (m MessageWriter) IllegalMove(reason error) string {
	return Sprintfln("%s Try again.", strings.TrimSpace(reason.Error()))
}

func (m MessageWriter) InvalidNumber(input string) string {
	return Sprintfln("'%s' is not a number", input)
}

func (m MessageWriter) NumberOutOfRange(minimum, maximum int) string {
	return Sprintfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
}

func (m MessageWriter) UnknownColor(input string) string {
	return Sprintfln("Unknown color '%s'", input)
}

func (m MessageWriter) BlankName() string {
	return Sprintln("A name can't be blank")
}
