package ui

import (
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/msg"
)

// The Console announces every game event; subscribe it with event.Bus.Subscribe.

func (c *Console) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	c.Announce(msg.Message.FirstCardPlayed(payload.Card))
}

func (c *Console) OnCardPlayed(payload event.CardPlayedPayload) {
	c.Announce(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card, payload.HandSize))
}

func (c *Console) OnCardsDrawn(payload event.CardsDrawnPayload) {
	c.Announce(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (c *Console) OnColorPicked(payload event.ColorPickedPayload) {
	c.Announce(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (c *Console) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if !payload.Drew {
		c.Announce(msg.Message.PlayerPassed(payload.PlayerName))
	}
}

func (c *Console) OnTurnSkipped(payload event.TurnSkippedPayload) {
	c.Announce(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (c *Console) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	c.Announce(msg.Message.TurnOrderReversed(payload.Clockwise))
}

func (c *Console) OnGameWon(payload event.GameWonPayload) {
	c.Announce(msg.Message.WinnerFound(payload.PlayerName, payload.Turn))
}
