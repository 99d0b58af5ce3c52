package game

import "errors"

// ErrDirectorStuck is returned by Play when a director stops making progress
// before the game is over
var ErrDirectorStuck = errors.New("director made no progress")

type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Session)

	/**
	 * Decide on the next actions to take, based on the session's visible state
	 */
	Act() []CellAction

	/**
	 * Stop acting
	 */
	End()
}

// Play lets director drive session until the game is won or lost. Every
// event produced along the way is passed to onEvent, if set.
func Play(session *Session, director Director, onEvent func(CellAction, Event)) error {
	director.Init(session)
	defer director.End()

	for !session.State().Finished() {
		progressed := false

		for _, action := range director.Act() {
			events, err := session.Apply(action)
			if err != nil {
				return err
			}

			for _, event := range events {
				progressed = true
				if onEvent != nil {
					onEvent(action, event)
				}
			}
		}

		if !progressed {
			return ErrDirectorStuck
		}
	}

	return nil
}
