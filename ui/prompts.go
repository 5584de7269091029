package ui

import (
	"strconv"
	"strings"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
)

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", consts.ErrorsInputClosed
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *Console) promptString(message string) (string, error) {
	c.Announce(message)
	return c.readLine()
}

func (c *Console) promptIntegerInRange(minimum, maximum int, message string) (int, error) {
	for {
		input, err := c.promptString(message)
		if err != nil {
			return 0, err
		}
		number, err := strconv.Atoi(input)
		if err != nil {
			c.Announce(msg.Message.InvalidNumber(input))
			continue
		}
		if number < minimum || number > maximum {
			c.Announce(msg.Message.NumberOutOfRange(minimum, maximum))
			continue
		}
		return number, nil
	}
}

func (c *Console) RequestPlayerName(seat int) (string, error) {
	for {
		name, err := c.promptString(msg.Message.NameRequest(seat))
		if err != nil {
			return "", err
		}
		if name == "" {
			c.Announce(msg.Message.BlankName())
			continue
		}
		return name, nil
	}
}

// RequestAction shows the table and the hand, then reads a hand position. 0 means draw.
func (c *Console) RequestAction(gameState game.State) (game.Move, error) {
	c.Announce(msg.Message.PlayerTurnStarted(gameState.PlayerName))
	c.Announce(msg.Sprintln(gameState.String()))
	c.Announce(msg.Message.HandListing(gameState.CurrentPlayerHand, gameState.Playable))
	if len(gameState.PlayableIndexes) == 0 {
		c.Announce(msg.Message.NoPlayableCards(gameState.PlayerName, gameState.LastPlayedCard))
	}

	handSize := len(gameState.CurrentPlayerHand)
	selected, err := c.promptIntegerInRange(0, handSize, msg.Message.CardSelection(handSize))
	if err != nil {
		return game.Move{}, err
	}
	if selected == 0 {
		return game.Draw(), nil
	}
	return game.Play(selected - 1), nil
}

func (c *Console) RequestColorChoice(gameState game.State) (color.Color, error) {
	for {
		input, err := c.promptString(msg.Message.ColorSelection())
		if err != nil {
			return color.None, err
		}
		chosen, err := color.ByName(input)
		if err != nil {
			c.Announce(msg.Message.UnknownColor(input))
			continue
		}
		return chosen, nil
	}
}
