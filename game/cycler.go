package game

type Direction int

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// Cycler walks seat indexes in the current direction, wrapping at both ends.
type Cycler struct {
	size      int
	current   int
	direction Direction
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: Clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

// Peek returns the seat Next would move to without moving.
func (c *Cycler) Peek() int {
	return (c.current + int(c.direction) + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case Clockwise:
		c.direction = CounterClockwise
	case CounterClockwise:
		c.direction = Clockwise
	}
}
