package constraint

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

// Director plays by deduction. Every uncovered number yields an observation:
// how many bombs hide among its covered neighbours. Observations which pin
// down their cells are acted on; otherwise the least likely bomb is clicked,
// and failing that a random cell.
type Director struct {
	session  *game.Session
	fallback *random.Director
}

type Observation struct {
	origin   *game.Coordinates
	numBombs int
	cells    collections.Set[game.Coordinates]
}

func (observation Observation) String() string {
	cells := observation.sortedCells()
	cellsRepr := make([]string, len(cells))
	for i, c := range cells {
		cellsRepr[i] = c.String()
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numBombs, strings.Join(cellsRepr, ", "))
}

func (observation Observation) sortedCells() []game.Coordinates {
	cells := observation.cells.Values()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

func (observation Observation) BombProbability() float64 {
	return float64(observation.numBombs) / float64(observation.cells.Len())
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.fallback = &random.Director{}
	director.fallback.Init(session)
}

func (director *Director) Act() []game.CellAction {
	observations := director.observe()

	actors := []func([]*Observation) []game.CellAction{
		director.actChord,
		director.actDeliberate,
		director.actSubsets,
		director.actLowestProbability,
	}
	for _, actor := range actors {
		if actions := actor(observations); len(actions) > 0 {
			return actions
		}
	}

	return director.fallback.Act()
}

func (director *Director) End() {
	director.fallback.End()
	director.session = nil
}

// observe builds an observation for every uncovered number still bordering
// covered cells
func (director *Director) observe() []*Observation {
	var observations []*Observation

	for _, cell := range director.session.Cells() {
		if cell.State != game.Uncovered || cell.Tile.IsBomb() || cell.Tile.IsEmpty() {
			continue
		}

		origin := cell.At
		observation := &Observation{
			origin:   &origin,
			numBombs: cell.Tile.NeighborBombs(),
			cells:    make(collections.Set[game.Coordinates]),
		}

		for _, neighbor := range director.session.Neighbors(origin) {
			neighborCell, _ := director.session.CellAt(neighbor)
			switch neighborCell.State {
			case game.Flagged:
				observation.numBombs--
			case game.Covered:
				observation.cells.Add(neighbor)
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

// actChord middle-clicks numbers whose bombs are all flagged
func (director *Director) actChord(observations []*Observation) []game.CellAction {
	var actions []game.CellAction
	for _, observation := range observations {
		if observation.numBombs == 0 {
			actions = append(actions, game.CellAction{At: *observation.origin, Action: game.MiddleClick})
		}
	}
	return actions
}

// actDeliberate flags the cells of observations with as many bombs as cells
func (director *Director) actDeliberate(observations []*Observation) []game.CellAction {
	toFlag := make(collections.Set[game.Coordinates])
	for _, observation := range observations {
		if observation.numBombs == observation.cells.Len() {
			for c := range observation.cells {
				toFlag.Add(c)
			}
		}
	}
	return director.actions(toFlag, make(collections.Set[game.Coordinates]))
}

// actSubsets compares overlapping observations. When one observation's cells
// are a subset of another's, the cells outside the subset hold the difference
// in bombs.
func (director *Director) actSubsets(observations []*Observation) []game.CellAction {
	toFlag := make(collections.Set[game.Coordinates])
	toClick := make(collections.Set[game.Coordinates])

	for _, observation := range observations {
		for _, other := range observations {
			if other == observation || !observation.cells.IsSubset(other.cells) {
				continue
			}

			split := Observation{
				numBombs: other.numBombs - observation.numBombs,
				cells:    other.cells.Difference(observation.cells),
			}
			if split.cells.Len() == 0 {
				continue
			}

			switch split.numBombs {
			case 0:
				for c := range split.cells {
					toClick.Add(c)
				}
			case split.cells.Len():
				for c := range split.cells {
					toFlag.Add(c)
				}
			}
		}
	}

	return director.actions(toFlag, toClick)
}

// actLowestProbability clicks the cell least likely to hold a bomb, judging by
// observations alone
func (director *Director) actLowestProbability(observations []*Observation) []game.CellAction {
	cellProbabilities := make(map[game.Coordinates]float64)
	for _, observation := range observations {
		probability := observation.BombProbability()
		for c := range observation.cells {
			if past, ok := cellProbabilities[c]; !ok || probability > past {
				cellProbabilities[c] = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return nil
	}

	lowestProbability := math.Inf(1)
	var lowestProbabilityCells []game.Coordinates
	for c, probability := range cellProbabilities {
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowestProbabilityCells = []game.Coordinates{c}
		case probability == lowestProbability:
			lowestProbabilityCells = append(lowestProbabilityCells, c)
		}
	}

	// Map iteration order is random; sort before using the session's seeded rand
	sort.Slice(lowestProbabilityCells, func(i, j int) bool {
		a, b := lowestProbabilityCells[i], lowestProbabilityCells[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	pick := lowestProbabilityCells[director.session.Rand().Intn(len(lowestProbabilityCells))]

	return []game.CellAction{{At: pick, Action: game.Click}}
}

func (director *Director) actions(toFlag, toClick collections.Set[game.Coordinates]) []game.CellAction {
	var actions []game.CellAction
	for _, c := range (Observation{cells: toFlag}).sortedCells() {
		actions = append(actions, game.CellAction{At: c, Action: game.RightClick})
	}
	for _, c := range (Observation{cells: toClick.Difference(toFlag)}).sortedCells() {
		actions = append(actions, game.CellAction{At: c, Action: game.Click})
	}
	return actions
}
