package game

import (
	"fmt"

	"github.com/they4kman/gosweep/util/collections"
)

// Rand is the source of randomness used to place bombs. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// SafeZone returns the cells which must stay free of bombs when starting at
// safe: the cell itself and its in-bounds neighbours.
func SafeZone(width, height int, safe Coordinates) collections.Set[Coordinates] {
	zone := collections.NewSet(safe.NeighborsIn(width, height)...)
	zone.Add(safe)
	return zone
}

// maxSafeZone is the size of the largest safe zone a width×height board can
// have, i.e. the zone of an interior cell.
func maxSafeZone(width, height int) int {
	return minInt(width, 3) * minInt(height, 3)
}

// PlaceBombs picks count distinct cells of a width×height grid, uniformly at
// random, to hold bombs. When safe is non-nil, neither it nor its neighbours
// are eligible.
func PlaceBombs(width, height, count int, safe *Coordinates, rnd Rand) ([]Coordinates, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, width, height)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative bomb count %d", ErrInvalidConfiguration, count)
	}

	var excluded collections.Set[Coordinates]
	if safe != nil {
		if !safe.In(width, height) {
			return nil, fmt.Errorf("%w: safe start %v outside %dx%d board", ErrInvalidConfiguration, *safe, width, height)
		}
		excluded = SafeZone(width, height, *safe)
	}

	candidates := make([]Coordinates, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coordinates{X: x, Y: y}
			if !excluded.Contains(c) {
				candidates = append(candidates, c)
			}
		}
	}

	// At least one safe cell must remain to be revealed
	available := len(candidates)
	if safe == nil {
		available--
	}
	if count > available {
		return nil, fmt.Errorf(
			"%w: %d bombs do not fit a %dx%d board with %d excluded cells",
			ErrInvalidConfiguration, count, width, height, excluded.Len(),
		)
	}

	// Partial Fisher-Yates: the first count slots end up holding the sample
	for i := 0; i < count; i++ {
		j := i + rnd.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	bombs := make([]Coordinates, count)
	copy(bombs, candidates[:count])
	return bombs, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
