package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// Shuffler permutes cards in place.
type Shuffler func(cards []card.Card)

func RandomShuffler(r *rand.Rand) Shuffler {
	return func(cards []card.Card) {
		r.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	}
}

// SeededShuffler returns a time-seeded shuffler when seed is zero.
func SeededShuffler(seed int64) Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return RandomShuffler(rand.New(rand.NewSource(seed)))
}

// Deck is the draw pile. When it runs dry it takes back every discarded card except the top one.
type Deck struct {
	cards   []card.Card
	pile    *Pile
	shuffle Shuffler
}

func NewDeck(pile *Pile, shuffle Shuffler) *Deck {
	cards := StandardCards()
	shuffle(cards)
	return NewStackedDeck(pile, shuffle, cards)
}

// NewStackedDeck builds a deck that deals cards in the given order.
func NewStackedDeck(pile *Pile, shuffle Shuffler, cards []card.Card) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{
		cards:   stacked,
		pile:    pile,
		shuffle: shuffle,
	}
}

func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		if err := d.Reshuffle(); err != nil {
			return card.Card{}, err
		}
	}
	if len(d.cards) == 0 {
		return card.Card{}, fmt.Errorf("draw pile exhausted: %w", consts.ErrorsIndexOutOfRange)
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, nil
}

// DrawN draws up to amount cards, stopping early once nothing is left to draw.
func (d *Deck) DrawN(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn, err := d.Draw()
		if err != nil {
			break
		}
		cards = append(cards, drawn)
	}
	return cards
}

// Reshuffle moves every discarded card but the top back into the deck and shuffles it.
// Played wilds go back uncolored.
func (d *Deck) Reshuffle() error {
	if d.pile.Size() == 0 {
		return consts.ErrorsEmptyState
	}
	for _, discarded := range d.pile.DrainAllButTop() {
		d.cards = append(d.cards, discarded.Uncolored())
	}
	d.shuffle(d.cards)
	return nil
}

// Return puts a card back into the deck and shuffles it in.
func (d *Deck) Return(c card.Card) {
	d.cards = append(d.cards, c.Uncolored())
	d.shuffle(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// StandardCards returns the 108 cards of a standard deck in a fixed order.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createBlackCards()...)
	for _, cardColor := range color.Selectable {
		cards = append(cards, createColorCards(cardColor)...)
	}

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
