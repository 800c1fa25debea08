package solver

import "fmt"

// Direction is a unit step across the grid.
type Direction struct {
	DRow int
	DCol int
}

var (
	Right     = Direction{0, 1}
	DownRight = Direction{1, 1}
	Down      = Direction{1, 0}
	DownLeft  = Direction{1, -1}
	Left      = Direction{0, -1}
	UpLeft    = Direction{-1, -1}
	Up        = Direction{-1, 0}
	UpRight   = Direction{-1, 1}
)

// Directions lists the eight directions in the order the solver tries them.
// The order decides which occurrence wins when a word appears more than once
// starting from the same cell.
var Directions = [8]Direction{Right, DownRight, Down, DownLeft, Left, UpLeft, Up, UpRight}

var directionNames = map[Direction]string{
	Right:     "right",
	DownRight: "down-right",
	Down:      "down",
	DownLeft:  "down-left",
	Left:      "left",
	UpLeft:    "up-left",
	Up:        "up",
	UpRight:   "up-right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// ParseDirection returns the direction with the given name.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return Direction{}, fmt.Errorf("unknown direction %q", name)
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
