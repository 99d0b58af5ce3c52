package game

// Snapshot notation of a single cell
const (
	symbolCovered     = "#"
	symbolUncovered   = "."
	symbolFlagged     = "f"
	symbolBomb        = "O"
	symbolFlaggedBomb = "F"
	symbolExploded    = "*"
)

func (cell *cell) serialize() string {
	switch {
	case cell.tile.IsBomb():
		switch cell.state {
		case Uncovered:
			return symbolExploded
		case Flagged:
			return symbolFlaggedBomb
		default:
			return symbolBomb
		}
	case cell.state == Flagged:
		return symbolFlagged
	case cell.state == Uncovered:
		return symbolUncovered
	default:
		return symbolCovered
	}
}

// deserializeCell parses the snapshot notation of a cell into whether it
// holds a bomb, and its state
func deserializeCell(c string) (isBomb bool, state CellState, ok bool) {
	switch c {
	case symbolExploded:
		return true, Uncovered, true
	case symbolFlaggedBomb:
		return true, Flagged, true
	case symbolBomb:
		return true, Covered, true
	case symbolFlagged:
		return false, Flagged, true
	case symbolUncovered:
		return false, Uncovered, true
	case symbolCovered:
		return false, Covered, true
	default:
		return false, Covered, false
	}
}

// restoreState forces a cell into state, keeping the board's counters in
// line. Only used when rebuilding boards from snapshots.
func (board *Board) restoreState(c Coordinates, state CellState) {
	cell := board.cellAt(c)
	if cell.state == state {
		return
	}

	switch cell.state {
	case Flagged:
		board.numFlags--
	case Uncovered:
		if !cell.tile.IsBomb() {
			board.numUncoveredSafe--
		}
	}

	cell.state = state

	switch state {
	case Flagged:
		board.numFlags++
	case Uncovered:
		if !cell.tile.IsBomb() {
			board.numUncoveredSafe++
		}
	}
}
