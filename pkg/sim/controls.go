package sim

// Direction is a steering input
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Controls holds the two steering flags. Pressing one direction releases
// the other, so at most one is ever set.
type Controls struct {
	Left  bool
	Right bool
}

// Press sets d and clears the opposite direction
func (c *Controls) Press(d Direction) {
	switch d {
	case Left:
		c.Left, c.Right = true, false
	case Right:
		c.Right, c.Left = true, false
	}
}

// Release clears d
func (c *Controls) Release(d Direction) {
	switch d {
	case Left:
		c.Left = false
	case Right:
		c.Right = false
	}
}
