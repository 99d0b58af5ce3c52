package game

import "strconv"

// Tile is the fixed content of a cell: Empty, Bomb, or the number of
// neighbouring bombs (1-8).
type Tile uint8

const (
	Empty Tile = 0
	Bomb  Tile = 0xff
)

// BombNeighbor returns the tile of a safe cell with n neighbouring bombs.
// Zero neighbours is the Empty tile.
func BombNeighbor(n int) Tile {
	if n < 0 || n > 8 {
		panic("game: bomb neighbour count out of range: " + strconv.Itoa(n))
	}
	return Tile(n)
}

func (tile Tile) IsBomb() bool {
	return tile == Bomb
}

func (tile Tile) IsEmpty() bool {
	return tile == Empty
}

// NeighborBombs returns the number of bombs surrounding a safe tile, or 0 for
// a bomb
func (tile Tile) NeighborBombs() int {
	if tile.IsBomb() {
		return 0
	}
	return int(tile)
}

func (tile Tile) String() string {
	switch {
	case tile.IsBomb():
		return "Bomb"
	case tile.IsEmpty():
		return "Empty"
	default:
		return "BombNeighbor(" + strconv.Itoa(int(tile)) + ")"
	}
}
