package card

import (
	"fmt"

	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var kindNames = map[Kind]string{
	Number:       "Number",
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "DrawTwo",
	Wild:         "Wild",
	WildDrawFour: "WildDrawFour",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// effects is the rule table applied after a legal play.
var effects = map[Kind][]action.Action{
	Number:       nil,
	Skip:         {action.SkipTurn{}},
	Reverse:      {action.ReverseTurns{}},
	DrawTwo:      {action.SkipTurn{}, action.DrawCards{Amount: consts.DrawTwo}},
	Wild:         {action.PickColor{}},
	WildDrawFour: {action.PickColor{}, action.SkipTurn{}, action.DrawCards{Amount: consts.DrawFour}},
}

// Card is an immutable value. Wild cards carry color.None until played.
type Card struct {
	kind   Kind
	color  color.Color
	number int
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{kind: Number, color: c, number: number}
}

func NewSkipCard(c color.Color) Card {
	return Card{kind: Skip, color: c, number: consts.NoNumber}
}

func NewReverseCard(c color.Color) Card {
	return Card{kind: Reverse, color: c, number: consts.NoNumber}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{kind: DrawTwo, color: c, number: consts.NoNumber}
}

func NewWildCard() Card {
	return Card{kind: Wild, color: color.None, number: consts.NoNumber}
}

func NewWildDrawFourCard() Card {
	return Card{kind: WildDrawFour, color: color.None, number: consts.NoNumber}
}

func (c Card) Kind() Kind {
	return c.kind
}

func (c Card) Color() color.Color {
	return c.color
}

// Number returns the face value, or consts.NoNumber for non-number cards.
func (c Card) Number() int {
	return c.number
}

func (c Card) IsWild() bool {
	return c.kind == Wild || c.kind == WildDrawFour
}

// WithColor returns a copy of a wild card resolved to the given color.
func (c Card) WithColor(chosen color.Color) Card {
	return Card{kind: c.kind, color: chosen, number: c.number}
}

// Uncolored returns the card as it was before any wild color was chosen.
func (c Card) Uncolored() Card {
	if !c.IsWild() {
		return c
	}
	return c.WithColor(color.None)
}

func (c Card) Actions() []action.Action {
	return append([]action.Action(nil), effects[c.kind]...)
}

func (c Card) String() string {
	face := c.face()
	if c.color == color.None {
		return face
	}
	return c.color.Paint(face) + fmt.Sprintf("(%s)", c.color.Name())
}

func (c Card) face() string {
	switch c.kind {
	case Number:
		return fmt.Sprintf("[%d]", c.number)
	case Skip:
		return "(/)"
	case Reverse:
		return "<=>"
	case DrawTwo:
		return "+2!"
	case Wild:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	default:
		return fmt.Sprintf("%s?", c.kind)
	}
}
