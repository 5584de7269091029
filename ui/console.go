package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

var (
	_ game.Input  = (*Console)(nil)
	_ game.Output = (*Console)(nil)
)

// Console is a hot-seat table: every player reads the same output and types on the same input.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	pause   time.Duration
}

func NewConsole(in io.Reader, out io.Writer, pause time.Duration) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		pause:   pause,
	}
}

// NewStdConsole reads stdin and writes through fatih/color's output so colors work on every terminal.
func NewStdConsole(pause time.Duration) *Console {
	return NewConsole(os.Stdin, color.Stdout, pause)
}

func (c *Console) Announce(message string) {
	_, _ = fmt.Fprint(c.out, message)
	if c.pause > 0 {
		time.Sleep(c.pause)
	}
}
