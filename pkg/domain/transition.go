package domain

// Direction is the movement of the head after a transition fires.
type Direction int

const (
	Stay Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "stay"
	}
}

// Delta returns the head offset for the direction.
func (d Direction) Delta() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

// ParseDirection interprets a raw move value.
// "left"/"l" and "right"/"r" are recognized; anything else means no movement.
func ParseDirection(move string) Direction {
	switch move {
	case "left", "l":
		return Left
	case "right", "r":
		return Right
	default:
		return Stay
	}
}

// Transition defines a rule of the transition table.
// Move keeps the raw text of the description; use Direction to interpret it.
type Transition struct {
	From  StateID `json:"from" yaml:"from"`
	Read  Symbol  `json:"read" yaml:"read"`
	Write Symbol  `json:"write" yaml:"write"`
	Goto  StateID `json:"goto" yaml:"goto"`
	Move  string  `json:"move" yaml:"move"`
}

// Direction returns the interpreted head movement.
func (t Transition) Direction() Direction {
	return ParseDirection(t.Move)
}

// Matches reports whether the transition applies to the given state and symbol.
func (t Transition) Matches(state StateID, read Symbol) bool {
	return t.From == state && t.Read == read
}
