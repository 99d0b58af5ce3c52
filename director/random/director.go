package random

import (
	"github.com/they4kman/gosweep/game"
)

// Director clicks covered cells in a random order, fixed when the game starts
type Director struct {
	session *game.Session
	order   []game.Coordinates
}

func (director *Director) Init(session *game.Session) {
	director.session = session

	director.order = make([]game.Coordinates, 0, session.NumCells())
	for _, cell := range session.Cells() {
		director.order = append(director.order, cell.At)
	}

	session.Rand().Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

// Act clicks the next covered, unflagged cell
func (director *Director) Act() []game.CellAction {
	for len(director.order) > 0 {
		c := director.order[0]
		director.order = director.order[1:]

		cell, _ := director.session.CellAt(c)
		if cell.State == game.Covered {
			return []game.CellAction{{At: c, Action: game.Click}}
		}
	}
	return nil
}

func (director *Director) End() {
	director.session = nil
	director.order = nil
}
