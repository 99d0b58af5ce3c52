package game

import "testing"

func TestNeighborsIn(t *testing.T) {
	tests := []struct {
		name string
		at   Coordinates
		want int
	}{
		{"corner", C(0, 0), 3},
		{"opposite corner", C(4, 3), 3},
		{"edge", C(2, 0), 5},
		{"interior", C(2, 2), 8},
		{"outside", C(-2, -2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := tt.at.NeighborsIn(5, 4)
			if len(neighbors) != tt.want {
				t.Fatalf("expected %d neighbours, got %v", tt.want, neighbors)
			}
			for _, neighbor := range neighbors {
				if !neighbor.In(5, 4) {
					t.Fatalf("neighbour %v out of bounds", neighbor)
				}
				if !tt.at.IsAdjacent(neighbor) {
					t.Fatalf("neighbour %v not adjacent to %v", neighbor, tt.at)
				}
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	c := C(0, 0)
	neighbors := c.Neighbors()
	if len(neighbors) != 8 {
		t.Fatalf("expected 8 neighbours, got %d", len(neighbors))
	}

	seen := make(map[Coordinates]bool)
	for _, neighbor := range neighbors {
		if neighbor == c || seen[neighbor] {
			t.Fatalf("unexpected neighbour %v", neighbor)
		}
		seen[neighbor] = true
	}

	if c.IsAdjacent(c) || c.IsAdjacent(C(2, 0)) || !c.IsAdjacent(C(-1, 1)) {
		t.Fatalf("IsAdjacent misbehaves")
	}
	if got := C(1, 2).Add(C(-3, 4)); got != C(-2, 6) {
		t.Fatalf("Add: got %v", got)
	}
	if got := C(3, -1).String(); got != "(3, -1)" {
		t.Fatalf("String: got %q", got)
	}
}

func TestTile(t *testing.T) {
	tests := []struct {
		tile          Tile
		isBomb, empty bool
		count         int
		str           string
	}{
		{Empty, false, true, 0, "Empty"},
		{Bomb, true, false, 0, "Bomb"},
		{BombNeighbor(0), false, true, 0, "Empty"},
		{BombNeighbor(3), false, false, 3, "BombNeighbor(3)"},
		{BombNeighbor(8), false, false, 8, "BombNeighbor(8)"},
	}

	for _, tt := range tests {
		if tt.tile.IsBomb() != tt.isBomb || tt.tile.IsEmpty() != tt.empty || tt.tile.NeighborBombs() != tt.count {
			t.Errorf("%v: unexpected classification", tt.tile)
		}
		if tt.tile.String() != tt.str {
			t.Errorf("String: got %q, want %q", tt.tile.String(), tt.str)
		}
	}
}
