package game

import (
	"fmt"
	"strings"
	"sync"
)

type cell struct {
	tile  Tile
	state CellState
}

// CellView is a read-only copy of a cell's content and state
type CellView struct {
	At    Coordinates
	State CellState
	Tile  Tile
}

type Board struct {
	width, height int // in number of cells
	numBombs      int
	cells         []cell

	numFlags         int
	numUncoveredSafe int
}

type RevealResult int

const (
	// The cell was already uncovered; nothing changed
	AlreadyUncovered RevealResult = iota
	// The cell is flagged, and flags guard against reveals; nothing changed
	FlagGuarded
	// The cell held a bomb
	Exploded
	// One or more safe cells were uncovered
	Revealed
)

func (result RevealResult) String() string {
	switch result {
	case AlreadyUncovered:
		return "already uncovered"
	case FlagGuarded:
		return "flagged"
	case Exploded:
		return "exploded"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

type RevealOutcome struct {
	Result RevealResult
	// Cells transitioned from Covered to Uncovered, in flood order.
	// Only set when Result is Revealed.
	Uncovered []Coordinates
}

type FlagResult int

const (
	// The cell is uncovered; flags only apply to covered cells
	NoOp FlagResult = iota
	FlagPlaced
	FlagRemoved
)

func (result FlagResult) String() string {
	switch result {
	case NoOp:
		return "no-op"
	case FlagPlaced:
		return "flagged"
	case FlagRemoved:
		return "unflagged"
	default:
		return "unknown"
	}
}

// NewBoard creates a fully covered width×height board with bombs at the given
// coordinates. Every other cell holds the number of its neighbouring bombs.
func NewBoard(width, height int, bombs []Coordinates) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, width, height)
	}
	if len(bombs) >= width*height {
		return nil, fmt.Errorf("%w: %d bombs leave no safe cell on a %dx%d board", ErrInvalidConfiguration, len(bombs), width, height)
	}

	isBomb := make([]bool, width*height)
	for _, c := range bombs {
		if !c.In(width, height) {
			return nil, fmt.Errorf("%w: bomb at %v outside %dx%d board", ErrInvalidConfiguration, c, width, height)
		}
		idx := c.Y*width + c.X
		if isBomb[idx] {
			return nil, fmt.Errorf("%w: duplicate bomb at %v", ErrInvalidConfiguration, c)
		}
		isBomb[idx] = true
	}

	board := &Board{
		width:    width,
		height:   height,
		numBombs: len(bombs),
		cells:    make([]cell, width*height),
	}

	// Each row is counted in its own goroutine. Workers only read isBomb and
	// write their own row of cells.
	wg := sync.WaitGroup{}
	for y := 0; y < height; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()

			for x := 0; x < width; x++ {
				idx := y*width + x
				c := &board.cells[idx]
				c.state = Covered

				if isBomb[idx] {
					c.tile = Bomb
					continue
				}

				numBombs := 0
				for _, neighbor := range (Coordinates{X: x, Y: y}).NeighborsIn(width, height) {
					if isBomb[neighbor.Y*width+neighbor.X] {
						numBombs++
					}
				}
				c.tile = BombNeighbor(numBombs)
			}
		}(y)
	}
	wg.Wait()

	return board, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumBombs() int {
	return board.numBombs
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// SafeTilesRemaining returns how many safe cells are still to be uncovered
func (board *Board) SafeTilesRemaining() int {
	return board.NumCells() - board.numBombs - board.numUncoveredSafe
}

func (board *Board) cellAt(c Coordinates) *cell {
	if c.In(board.width, board.height) {
		return &board.cells[c.Y*board.width+c.X]
	}
	return nil
}

func (board *Board) CellAt(c Coordinates) (CellView, bool) {
	cell := board.cellAt(c)
	if cell == nil {
		return CellView{}, false
	}
	return CellView{At: c, State: cell.state, Tile: cell.tile}, true
}

// Cells returns every cell of the board, row by row
func (board *Board) Cells() []CellView {
	views := make([]CellView, 0, len(board.cells))
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			view, _ := board.CellAt(Coordinates{X: x, Y: y})
			views = append(views, view)
		}
	}
	return views
}

// Bombs returns the coordinates of every bomb, row by row
func (board *Board) Bombs() []Coordinates {
	bombs := make([]Coordinates, 0, board.numBombs)
	for _, view := range board.Cells() {
		if view.Tile.IsBomb() {
			bombs = append(bombs, view.At)
		}
	}
	return bombs
}

func (board *Board) Neighbors(c Coordinates) []Coordinates {
	return c.NeighborsIn(board.width, board.height)
}

// Reveal uncovers the cell at c. Revealing an Empty cell floods outwards
// through all connected Empty cells, stopping at numbered cells and flags.
func (board *Board) Reveal(c Coordinates) (RevealOutcome, error) {
	target := board.cellAt(c)
	if target == nil {
		return RevealOutcome{}, fmt.Errorf("reveal %v: %w", c, ErrCoordinateOutOfBounds)
	}

	switch target.state {
	case Flagged:
		return RevealOutcome{Result: FlagGuarded}, nil
	case Uncovered:
		return RevealOutcome{Result: AlreadyUncovered}, nil
	}

	if target.tile.IsBomb() {
		target.state = Uncovered
		return RevealOutcome{Result: Exploded}, nil
	}

	return RevealOutcome{Result: Revealed, Uncovered: board.cascadeEmpty(c)}, nil
}

func (board *Board) cascadeEmpty(start Coordinates) []Coordinates {
	var uncovered []Coordinates

	flood(
		start,
		func(c Coordinates) bool {
			cell := board.cellAt(c)
			if cell.state != Covered || cell.tile.IsBomb() {
				return false
			}

			cell.state = Uncovered
			board.numUncoveredSafe++
			uncovered = append(uncovered, c)

			return cell.tile.IsEmpty()
		},
		board.Neighbors,
	)

	return uncovered
}

// ToggleFlag alternates a covered cell between Covered and Flagged
func (board *Board) ToggleFlag(c Coordinates) (FlagResult, error) {
	target := board.cellAt(c)
	if target == nil {
		return NoOp, fmt.Errorf("toggle flag %v: %w", c, ErrCoordinateOutOfBounds)
	}

	switch target.state {
	case Covered:
		target.state = Flagged
		board.numFlags++
		return FlagPlaced, nil
	case Flagged:
		target.state = Covered
		board.numFlags--
		return FlagRemoved, nil
	default:
		return NoOp, nil
	}
}

// ChordTargets returns the neighbours of c which a chord would reveal: when c
// is an uncovered number with exactly that many flagged neighbours, all of
// its covered, unflagged neighbours. Otherwise nothing.
func (board *Board) ChordTargets(c Coordinates) ([]Coordinates, error) {
	target := board.cellAt(c)
	if target == nil {
		return nil, fmt.Errorf("chord %v: %w", c, ErrCoordinateOutOfBounds)
	}
	if target.state != Uncovered || target.tile.IsBomb() || target.tile.IsEmpty() {
		return nil, nil
	}

	flagged := 0
	var covered []Coordinates
	for _, neighbor := range board.Neighbors(c) {
		switch board.cellAt(neighbor).state {
		case Flagged:
			flagged++
		case Covered:
			covered = append(covered, neighbor)
		}
	}

	if flagged != target.tile.NeighborBombs() {
		return nil, nil
	}
	return covered, nil
}

// IsWon returns whether every safe cell has been uncovered. Flags on bombs
// don't matter.
func (board *Board) IsWon() bool {
	return board.SafeTilesRemaining() == 0
}

// IsExploded returns whether any bomb has been uncovered
func (board *Board) IsExploded() bool {
	for _, cell := range board.cells {
		if cell.tile.IsBomb() && cell.state == Uncovered {
			return true
		}
	}
	return false
}

// String renders the board in the snapshot notation, one row per line
func (board *Board) String() string {
	var rows strings.Builder
	for y := 0; y < board.height; y++ {
		if y > 0 {
			rows.WriteByte('\n')
		}
		for x := 0; x < board.width; x++ {
			rows.WriteString(board.cellAt(Coordinates{X: x, Y: y}).serialize())
		}
	}
	return rows.String()
}
