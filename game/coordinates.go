package game

import "fmt"

// Coordinates identify a single cell of a board. X grows to the right and Y
// grows downwards, so (0, 0) is the top-left cell.
type Coordinates struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func C(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

var neighborOffsets = [8]Coordinates{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func (c Coordinates) Add(other Coordinates) Coordinates {
	return Coordinates{X: c.X + other.X, Y: c.Y + other.Y}
}

// In returns whether the coordinates lie within a width×height grid
func (c Coordinates) In(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

// Neighbors returns all 8 surrounding coordinates, regardless of any bounds
func (c Coordinates) Neighbors() []Coordinates {
	neighbors := make([]Coordinates, len(neighborOffsets))
	for i, offset := range neighborOffsets {
		neighbors[i] = c.Add(offset)
	}
	return neighbors
}

// NeighborsIn returns the surrounding coordinates which lie within a
// width×height grid
func (c Coordinates) NeighborsIn(width, height int) []Coordinates {
	neighbors := make([]Coordinates, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor := c.Add(offset); neighbor.In(width, height) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// IsAdjacent returns whether other is one of the 8 cells surrounding c
func (c Coordinates) IsAdjacent(other Coordinates) bool {
	dx, dy := absDiff(c.X, other.X), absDiff(c.Y, other.Y)
	return dx <= 1 && dy <= 1 && c != other
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
