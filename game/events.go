package game

import "fmt"

// Event notifies the presentation layer of a change in the game
type Event interface {
	fmt.Stringer
	isEvent()
}

// TileTriggerEvent reports a cell which became uncovered
type TileTriggerEvent struct {
	At Coordinates
}

// TileMarkEvent reports a flag being placed on or removed from a cell
type TileMarkEvent struct {
	At      Coordinates
	Flagged bool
}

// BoardCompletedEvent reports that every safe cell has been uncovered
type BoardCompletedEvent struct{}

// BoardExplosionEvent reports a bomb being uncovered
type BoardExplosionEvent struct {
	At Coordinates
}

func (TileTriggerEvent) isEvent()    {}
func (TileMarkEvent) isEvent()       {}
func (BoardCompletedEvent) isEvent() {}
func (BoardExplosionEvent) isEvent() {}

func (event TileTriggerEvent) String() string {
	return fmt.Sprintf("TileTrigger%v", event.At)
}

func (event TileMarkEvent) String() string {
	if event.Flagged {
		return fmt.Sprintf("TileMark%v flagged", event.At)
	}
	return fmt.Sprintf("TileMark%v unflagged", event.At)
}

func (BoardCompletedEvent) String() string {
	return "BoardCompleted"
}

func (event BoardExplosionEvent) String() string {
	return fmt.Sprintf("BoardExplosion%v", event.At)
}
