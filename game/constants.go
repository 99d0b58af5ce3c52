package game

type CellState int
type BoardState int

const (
	Covered CellState = iota
	Flagged
	Uncovered
)

var cellStateNames = map[CellState]string{
	Covered:   "covered",
	Flagged:   "flagged",
	Uncovered: "uncovered",
}

func (state CellState) String() string {
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return "unknown"
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// Finished returns whether no further play is expected
func (state BoardState) Finished() bool {
	return state == Lost || state == Won
}

type GameMode int

const (
	Classic GameMode = iota
	Win7
)

// Default board, based on the expert difficulty
const (
	DefaultWidth  = 30
	DefaultHeight = 16
	DefaultBombs  = 99
)
