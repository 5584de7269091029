package game

import (
	"errors"
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// Game is the turn engine. It waits on one player at a time; Draw and Play are the only
// transitions and each of them ends the current player's turn when it succeeds.
type Game struct {
	players  *Roster
	deck     *Deck
	pile     *Pile
	cycler   *Cycler
	picker   ColorPicker
	events   *event.Bus
	handSize int
	turn     int
	started  bool
	winner   *Player
}

// Outcome reports what a successful Draw or Play did.
type Outcome struct {
	Player   *Player
	Played   *card.Card
	Drawn    []card.Card
	GameOver bool
}

type Option func(*settings)

type settings struct {
	shuffle  Shuffler
	stacked  []card.Card
	handSize int
	events   *event.Bus
}

func WithShuffler(shuffle Shuffler) Option {
	return func(s *settings) { s.shuffle = shuffle }
}

// WithStackedDeck deals from cards, in order, instead of a shuffled standard deck.
func WithStackedDeck(cards []card.Card) Option {
	return func(s *settings) { s.stacked = cards }
}

func WithHandSize(size int) Option {
	return func(s *settings) { s.handSize = size }
}

func WithEvents(bus *event.Bus) Option {
	return func(s *settings) { s.events = bus }
}

func New(names []string, picker ColorPicker, options ...Option) (*Game, error) {
	s := &settings{
		shuffle:  SeededShuffler(0),
		handSize: consts.HandSize,
	}
	for _, option := range options {
		option(s)
	}

	players, err := NewRoster(names)
	if err != nil {
		return nil, err
	}
	if picker == nil {
		return nil, fmt.Errorf("no color picker: %w", consts.ErrorsGamePlayersInvalid)
	}
	if s.handSize < 1 || s.handSize > consts.MaxHandSize(len(names)) {
		return nil, fmt.Errorf("hand size %d for %d players: %w", s.handSize, len(names), consts.ErrorsConfigInvalid)
	}
	if s.events == nil {
		s.events = event.NewBus()
	}

	pile := NewPile()
	deck := NewDeck(pile, s.shuffle)
	if s.stacked != nil {
		deck = NewStackedDeck(pile, s.shuffle, s.stacked)
	}

	return &Game{
		players:  players,
		deck:     deck,
		pile:     pile,
		cycler:   NewCycler(len(names)),
		picker:   picker,
		events:   s.events,
		handSize: s.handSize,
	}, nil
}

func (g *Game) Players() *Roster {
	return g.players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Current() *Player {
	return g.players.At(g.cycler.Current())
}

func (g *Game) Direction() Direction {
	return g.cycler.Direction()
}

// Turn counts the completed Draw and Play transitions.
func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) Top() (card.Card, error) {
	return g.pile.Top()
}

// Start deals every player a hand in seat order and turns over the first discard.
// A wild is never left as the first discard: it goes back into the deck and another card is turned.
func (g *Game) Start() error {
	if g.started {
		return nil
	}

	g.players.ForEach(func(player *Player) {
		player.AddCards(g.deck.DrawN(g.handSize))
	})

	firstCard, err := g.deck.Draw()
	if err != nil {
		return err
	}
	for attempts := 0; firstCard.IsWild() && attempts < consts.DeckSize; attempts++ {
		g.deck.Return(firstCard)
		if firstCard, err = g.deck.Draw(); err != nil {
			return err
		}
	}
	g.pile.Add(firstCard)
	g.started = true

	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	return nil
}

// Draw moves one card from the deck into the current player's hand and ends their turn.
// When every card is already in a hand the player passes without drawing.
func (g *Game) Draw() (Outcome, error) {
	if err := g.checkPlaying(); err != nil {
		return Outcome{}, err
	}

	player := g.Current()
	var drawn []card.Card
	c, err := g.deck.Draw()
	switch {
	case err == nil:
		drawn = []card.Card{c}
		player.AddCard(c)
	case !errors.Is(err, consts.ErrorsIndexOutOfRange):
		return Outcome{}, err
	}

	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
		Turn:       g.turn,
		PlayerName: player.Name(),
		Drew:       len(drawn) > 0,
	})
	if len(drawn) > 0 {
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			Turn:       g.turn,
			PlayerName: player.Name(),
			Seat:       player.Seat(),
			Cards:      drawn,
		})
	}

	g.endTurn()
	return Outcome{Player: player, Drawn: drawn, GameOver: g.IsGameOver()}, nil
}

// Play plays the card at handIndex for the current player. An invalid position returns
// ErrorsIndexOutOfRange and an unplayable card returns ErrorsIllegalMove; neither changes the game.
func (g *Game) Play(handIndex int) (Outcome, error) {
	if err := g.checkPlaying(); err != nil {
		return Outcome{}, err
	}

	player := g.Current()
	top, err := g.pile.Top()
	if err != nil {
		return Outcome{}, err
	}

	played, err := player.RemoveCardAt(handIndex)
	if err != nil {
		return Outcome{}, err
	}
	if !Playable(played, top) {
		player.hand.InsertCardAt(handIndex, played)
		return Outcome{}, fmt.Errorf("%s on %s: %w", played, top, consts.ErrorsIllegalMove)
	}

	chosen := color.None
	if needsColor(played) {
		chosen, err = g.pickColor(player)
		if err != nil {
			player.hand.InsertCardAt(handIndex, played)
			return Outcome{}, err
		}
	}

	g.pile.Add(played)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		Turn:       g.turn,
		PlayerName: player.Name(),
		Seat:       player.Seat(),
		Card:       played,
		HandSize:   player.HandSize(),
	})

	if err := g.performCardActions(player, played, chosen); err != nil {
		return Outcome{}, err
	}

	g.endTurn()
	return Outcome{Player: player, Played: &played, GameOver: g.IsGameOver()}, nil
}

// Apply runs a Move chosen at the input boundary.
func (g *Game) Apply(move Move) (Outcome, error) {
	switch move.Kind {
	case DrawMove:
		return g.Draw()
	case PlayMove:
		return g.Play(move.Index)
	default:
		return Outcome{}, fmt.Errorf("move kind %d: %w", move.Kind, consts.ErrorsInputInvalid)
	}
}

func (g *Game) performCardActions(player *Player, playedCard card.Card, chosen color.Color) error {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.SkipTurn:
			skipped := g.players.At(g.cycler.Next())
			g.events.TurnSkipped.Emit(event.TurnSkippedPayload{
				Turn:       g.turn,
				PlayerName: skipped.Name(),
			})
		case action.ReverseTurns:
			g.cycler.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				Turn:       g.turn,
				PlayerName: player.Name(),
				Clockwise:  g.cycler.Direction() == Clockwise,
			})
		case action.DrawCards:
			target := g.Current()
			cards := g.deck.DrawN(cardAction.Amount)
			target.AddCards(cards)
			g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
				Turn:       g.turn,
				PlayerName: target.Name(),
				Seat:       target.Seat(),
				Cards:      cards,
				Forced:     true,
			})
		case action.PickColor:
			if err := g.pile.ReplaceTop(playedCard.WithColor(chosen)); err != nil {
				return err
			}
			g.events.ColorPicked.Emit(event.ColorPickedPayload{
				Turn:       g.turn,
				PlayerName: player.Name(),
				Color:      chosen,
			})
		}
	}
	return nil
}

func (g *Game) pickColor(player *Player) (color.Color, error) {
	chosen, err := g.picker.RequestColorChoice(g.Snapshot(player))
	if err != nil {
		return color.None, err
	}
	if !chosen.Selectable() {
		return color.None, fmt.Errorf("%s: %w", chosen.Name(), consts.ErrorsInvalidColorChoice)
	}
	return chosen, nil
}

func needsColor(c card.Card) bool {
	for _, cardAction := range c.Actions() {
		if _, ok := cardAction.(action.PickColor); ok {
			return true
		}
	}
	return false
}

func (g *Game) endTurn() {
	g.turn++
	g.cycler.Next()
	g.checkWinner()
}

func (g *Game) checkWinner() {
	if g.winner != nil {
		return
	}
	for _, player := range g.players.Players() {
		if player.NoCards() {
			g.winner = player
			g.events.GameWon.Emit(event.GameWonPayload{
				Turn:       g.turn,
				PlayerName: player.Name(),
				Seat:       player.Seat(),
			})
			return
		}
	}
}

func (g *Game) checkPlaying() error {
	if !g.started {
		return consts.ErrorsGameNotStarted
	}
	if g.winner != nil {
		return consts.ErrorsGameOver
	}
	return nil
}

func (g *Game) IsGameOver() bool {
	return g.winner != nil
}

func (g *Game) Winner() (*Player, bool) {
	return g.winner, g.winner != nil
}

// CardCount totals the deck, the discard pile and every hand. It is consts.DeckSize for a whole deck.
func (g *Game) CardCount() int {
	total := g.deck.Size() + g.pile.Size()
	g.players.ForEach(func(player *Player) {
		total += player.HandSize()
	})
	return total
}

func (g *Game) Snapshot(player *Player) State {
	playerSequence := make([]string, 0, g.players.Size())
	playerHandCounts := make(map[string]int, g.players.Size())
	g.players.ForEach(func(p *Player) {
		playerSequence = append(playerSequence, p.Name())
		playerHandCounts[p.Name()] = p.HandSize()
	})

	top, _ := g.pile.Top()
	return State{
		Turn:              g.turn,
		PlayerName:        player.Name(),
		Seat:              player.Seat(),
		LastPlayedCard:    top,
		CurrentPlayerHand: player.Hand(),
		PlayableIndexes:   player.hand.PlayableCards(top),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		Direction:         g.cycler.Direction(),
		DeckSize:          g.deck.Size(),
		PileSize:          g.pile.Size(),
	}
}
