package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/uno/consts"
)

type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

type paint struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var paints = map[Color]paint{
	None:   {name: "none", colorFunction: fmt.Sprintf},
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
}

// Selectable lists the colors a wild may resolve to, in prompt order.
var Selectable = []Color{Red, Green, Blue, Yellow}

var Stdout io.Writer = color.Output

// Disable turns off ANSI escapes for every painted string.
func Disable() {
	color.NoColor = true
}

func (c Color) Name() string {
	if p, ok := paints[c]; ok {
		return p.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := paints[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...)
}

func (c Color) Selectable() bool {
	return c != None && c.Valid()
}

func (c Color) Valid() bool {
	_, ok := paints[c]
	return ok
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Selectable {
		if paints[c].name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("unknown color '%s': %w", name, consts.ErrorsInvalidColorChoice)
}
