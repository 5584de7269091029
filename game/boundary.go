package game

import (
	"github.com/ratel-online/uno/card/color"
)

type MoveKind int

const (
	DrawMove MoveKind = iota
	PlayMove
)

// Move is a player's decision for one turn. Index is a zero-based hand position for PlayMove.
type Move struct {
	Kind  MoveKind
	Index int
}

func Draw() Move {
	return Move{Kind: DrawMove}
}

func Play(index int) Move {
	return Move{Kind: PlayMove, Index: index}
}

// ColorPicker supplies the color of a played wild. Implementations keep asking until they
// have one of color.Selectable or fail.
type ColorPicker interface {
	RequestColorChoice(gameState State) (color.Color, error)
}

// Input is everything the game loop needs from the people at the table.
type Input interface {
	ColorPicker
	RequestPlayerName(seat int) (string, error)
	RequestAction(gameState State) (Move, error)
}

type Output interface {
	Announce(message string)
}
