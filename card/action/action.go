package action

import "fmt"

// Action is one step of a played card's effect. The engine applies a card's actions in order.
type Action interface {
	Name() string
}

// SkipTurn moves the turn one seat further in the current direction.
type SkipTurn struct{}

func (SkipTurn) Name() string {
	return "skip"
}

// ReverseTurns flips the direction of play.
type ReverseTurns struct{}

func (ReverseTurns) Name() string {
	return "reverse"
}

// DrawCards makes the current player draw Amount cards.
type DrawCards struct {
	Amount int
}

func (a DrawCards) Name() string {
	return fmt.Sprintf("draw %d", a.Amount)
}

// PickColor resolves the color of the wild on top of the pile.
type PickColor struct{}

func (PickColor) Name() string {
	return "pick color"
}
