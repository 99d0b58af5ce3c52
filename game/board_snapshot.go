package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot captures a board's layout and cell states as text, one row
// per line. See cell.go for the notation.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: board.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CreateBoard rebuilds the snapshotted board. With fresh, every cell starts
// out covered again, keeping only the bomb layout.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Fields(snapshot.SerializedBoard)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty board snapshot", ErrInvalidConfiguration)
	}

	height, width := len(rows), len(rows[0])
	var bombs []Coordinates
	states := make(map[Coordinates]CellState)

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: snapshot row %d has %d cells, expected %d", ErrInvalidConfiguration, y, len(row), width)
		}

		for x, symbol := range row {
			isBomb, state, ok := deserializeCell(string(symbol))
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidConfiguration, symbol, x, y)
			}

			c := Coordinates{X: x, Y: y}
			if isBomb {
				bombs = append(bombs, c)
			}
			if state != Covered {
				states[c] = state
			}
		}
	}

	board, err := NewBoard(width, height, bombs)
	if err != nil {
		return nil, err
	}

	if !fresh {
		for c, state := range states {
			board.restoreState(c, state)
		}
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
