package consts

import "errors"

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateDeal
	StateTurn
	StateGameOver
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	DeckSize = 108
	HandSize = 7
	NoNumber = -1
	DrawTwo  = 2
	DrawFour = 4
)

// MaxHandSize keeps a full table dealable with one card left to seed the discard pile.
func MaxHandSize(players int) int {
	if players <= 0 {
		return 0
	}
	return (DeckSize - 1) / players
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// IsExit reports whether err, or any error it wraps, ends the game loop.
func IsExit(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return err != nil
}

var (
	ErrorsIllegalMove        = NewErr(1, false, "Illegal move. ")
	ErrorsIndexOutOfRange    = NewErr(2, false, "Index out of range. ")
	ErrorsEmptyState         = NewErr(3, true, "Discard pile is empty. ")
	ErrorsInvalidColorChoice = NewErr(4, false, "Invalid color choice. ")
	ErrorsInputInvalid       = NewErr(5, false, "Input invalid. ")
	ErrorsGamePlayersInvalid = NewErr(6, true, "Game players invalid. ")
	ErrorsGameOver           = NewErr(7, true, "Game is over. ")
	ErrorsInputClosed        = NewErr(8, true, "Input closed. ")
	ErrorsConfigInvalid      = NewErr(9, true, "Config invalid. ")
	ErrorsGameNotStarted     = NewErr(10, true, "Game not started. ")

	StateNames = map[StateID]string{
		StateWelcome:  "Welcome",
		StateDeal:     "Deal",
		StateTurn:     "Turn",
		StateGameOver: "GameOver",
	}
)
