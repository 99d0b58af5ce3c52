package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/they4kman/gosweep/util/collections"
)

func TestPlaceBombs(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		count         int
		safe          *Coordinates
	}{
		{"no bombs", 4, 4, 0, nil},
		{"expert", 30, 16, 99, nil},
		{"all but one", 3, 3, 8, nil},
		{"interior safe start", 9, 9, 72, &Coordinates{4, 4}},
		{"corner safe start", 9, 9, 77, &Coordinates{0, 0}},
		{"edge safe start", 9, 9, 75, &Coordinates{8, 3}},
		{"single row", 10, 1, 7, &Coordinates{5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 25; seed++ {
				bombs, err := PlaceBombs(tt.width, tt.height, tt.count, tt.safe, rand.New(rand.NewSource(seed)))
				if err != nil {
					t.Fatalf("seed %d: unexpected error: %v", seed, err)
				}

				unique := collections.NewSet(bombs...)
				if len(bombs) != tt.count || unique.Len() != tt.count {
					t.Fatalf("seed %d: expected %d distinct bombs, got %v", seed, tt.count, bombs)
				}

				for _, bomb := range bombs {
					if !bomb.In(tt.width, tt.height) {
						t.Fatalf("seed %d: bomb %v out of bounds", seed, bomb)
					}
				}

				if tt.safe != nil {
					zone := SafeZone(tt.width, tt.height, *tt.safe)
					if inter := zone.Intersection(unique); inter.Len() > 0 {
						t.Fatalf("seed %d: bombs %v inside safe zone", seed, inter.Values())
					}
				}
			}
		})
	}
}

func TestPlaceBombsReproducible(t *testing.T) {
	first, err := PlaceBombs(16, 16, 40, nil, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PlaceBombs(16, 16, 40, nil, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("placements differ at %d: %v != %v", i, first[i], second[i])
		}
	}
}

func TestPlaceBombsCoversEveryEligibleCell(t *testing.T) {
	safe := C(0, 0)
	hit := make(collections.Set[Coordinates])
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		bombs, err := PlaceBombs(4, 4, 1, &safe, rnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hit.Add(bombs[0])
	}

	// 16 cells, less the 4 in the corner's safe zone
	if hit.Len() != 12 {
		t.Fatalf("expected all 12 eligible cells to receive a bomb, got %d", hit.Len())
	}
}

func TestPlaceBombsInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		count         int
		safe          *Coordinates
	}{
		{"zero size", 0, 0, 0, nil},
		{"negative count", 5, 5, -1, nil},
		{"board full", 3, 3, 9, nil},
		{"too many", 3, 3, 10, nil},
		{"safe zone too big", 9, 9, 73, &Coordinates{4, 4}},
		{"corner safe zone too big", 3, 3, 6, &Coordinates{0, 0}},
		{"safe out of bounds", 5, 5, 1, &Coordinates{5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bombs, err := PlaceBombs(tt.width, tt.height, tt.count, tt.safe, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
			if bombs != nil {
				t.Fatalf("expected no bombs, got %v", bombs)
			}
		})
	}
}

func TestSafeZone(t *testing.T) {
	tests := []struct {
		at   Coordinates
		want int
	}{
		{C(0, 0), 4},
		{C(2, 0), 6},
		{C(2, 2), 9},
		{C(4, 4), 4},
	}
	for _, tt := range tests {
		if got := SafeZone(5, 5, tt.at).Len(); got != tt.want {
			t.Errorf("SafeZone at %v: got %d cells, want %d", tt.at, got, tt.want)
		}
	}

	if got := maxSafeZone(2, 10); got != 6 {
		t.Fatalf("maxSafeZone(2, 10): got %d, want 6", got)
	}
}
