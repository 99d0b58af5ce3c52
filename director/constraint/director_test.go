package constraint

import (
	"strings"
	"testing"

	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

func sessionFromRows(t *testing.T, rows ...string) *game.Session {
	t.Helper()

	config := game.NewGameConfig()
	config.Snapshot = &game.BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
	config.LoadSnapshotFresh = false

	session, err := game.NewSession(config)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session
}

func TestDirectorFlagsForcedBombs(t *testing.T) {
	// Both 1s on the left have a single covered neighbour left
	session := sessionFromRows(t,
		"..O#",
		"....",
	)

	director := &Director{}
	director.Init(session)
	defer director.End()

	actions := director.Act()
	want := game.CellAction{At: game.C(2, 0), Action: game.RightClick}
	if len(actions) != 1 || actions[0] != want {
		t.Fatalf("expected %v, got %v", want, actions)
	}
}

func TestDirectorChordsSatisfiedNumbers(t *testing.T) {
	session := sessionFromRows(t,
		"F##",
		"#.#",
		"###",
	)

	director := &Director{}
	director.Init(session)
	defer director.End()

	actions := director.Act()
	if len(actions) != 1 || actions[0] != (game.CellAction{At: game.C(1, 1), Action: game.MiddleClick}) {
		t.Fatalf("expected a chord on the centre, got %v", actions)
	}
}

func TestDirectorSubsets(t *testing.T) {
	// Row of numbers under a covered row: 1 2 1 pins the bombs to the sides
	session := sessionFromRows(t,
		"O#O",
		"...",
	)

	director := &Director{}
	director.Init(session)
	defer director.End()

	flagged := make(collections.Set[game.Coordinates])
	clicked := make(collections.Set[game.Coordinates])
	for _, action := range director.Act() {
		switch action.Action {
		case game.RightClick:
			flagged.Add(action.At)
		case game.Click:
			clicked.Add(action.At)
		}
	}

	if !flagged.Equal(collections.NewSet(game.C(0, 0), game.C(2, 0))) {
		t.Fatalf("expected both bombs flagged, got %v", flagged.Values())
	}
	if clicked.Contains(game.C(0, 0)) || clicked.Contains(game.C(2, 0)) {
		t.Fatalf("clicked a bomb: %v", clicked.Values())
	}
}

func TestDirectorWinsDeducibleBoard(t *testing.T) {
	// B 2 B 1: both bombs follow from the 2, leaving the last cell to chance
	session := sessionFromRows(t, "O#O#")
	if _, err := session.HandleReveal(game.C(1, 0)); err != nil {
		t.Fatalf("reveal: %v", err)
	}

	if err := game.Play(session, &Director{}, nil); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if session.State() != game.Won {
		t.Fatalf("expected Won, got %v\n%s", session.State(), session.Snapshot().SerializedBoard)
	}
}

func TestDirectorFinishesGames(t *testing.T) {
	wins := 0
	for seed := int64(1); seed <= 20; seed++ {
		session, err := game.NewSession(game.GameConfig{Width: 9, Height: 9, NumBombs: 10, Mode: game.Win7, Seed: seed})
		if err != nil {
			t.Fatalf("seed %d: NewSession: %v", seed, err)
		}

		if err := game.Play(session, &Director{}, nil); err != nil {
			t.Fatalf("seed %d: Play: %v", seed, err)
		}
		if !session.State().Finished() {
			t.Fatalf("seed %d: game not finished", seed)
		}
		if session.State() == game.Won {
			wins++
		}
	}

	if wins == 0 {
		t.Fatalf("expected the director to win some beginner games")
	}
}

func TestObservationString(t *testing.T) {
	origin := game.C(1, 1)
	observation := Observation{
		origin:   &origin,
		numBombs: 1,
		cells:    collections.NewSet(game.C(2, 0), game.C(0, 0)),
	}

	want := "Obs[  (1, 1), 1 ε (0, 0), (2, 0)]"
	if got := observation.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if observation.BombProbability() != 0.5 {
		t.Fatalf("expected probability 0.5, got %v", observation.BombProbability())
	}
}
