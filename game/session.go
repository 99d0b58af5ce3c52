package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/util/collections"
)

// Session plays a single game on one board, translating commands into board
// operations and reporting their effects as events.
//
// A Session is not safe for concurrent use.
type Session struct {
	id     uuid.UUID
	config GameConfig
	rand   *rand.Rand
	log    logrus.FieldLogger

	state BoardState

	// nil until the first reveal when the safe start cell isn't known up front
	board *Board
	// Flags placed before the board exists
	pendingFlags collections.Set[Coordinates]
}

type SessionOption func(*Session)

// WithLogger sets the logger session activity is reported to. By default
// nothing is logged.
func WithLogger(logger logrus.FieldLogger) SessionOption {
	return func(session *Session) {
		session.log = logger
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

// NewSession starts a game from config. Bombs are placed right away, unless
// the safe start cell is only decided by the first reveal.
func NewSession(config GameConfig, opts ...SessionOption) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	session := &Session{
		id:           uuid.New(),
		config:       config,
		rand:         rand.New(rand.NewSource(config.Seed)),
		log:          discardLogger(),
		state:        Ongoing,
		pendingFlags: make(collections.Set[Coordinates]),
	}
	for _, opt := range opts {
		opt(session)
	}
	session.log = session.log.WithField("session", session.id.String())

	switch {
	case config.Snapshot != nil:
		board, err := config.Snapshot.CreateBoard(config.LoadSnapshotFresh)
		if err != nil {
			return nil, err
		}
		session.board = board
		session.config.Width, session.config.Height = uint(board.Width()), uint(board.Height())
		session.config.NumBombs = uint(board.NumBombs())

		switch {
		case board.IsExploded():
			session.state = Lost
		case board.IsWon():
			session.state = Won
		}

	case !config.SafeStart():
		if err := session.generate(nil); err != nil {
			return nil, err
		}

	case config.Start != nil:
		if err := session.generate(config.Start); err != nil {
			return nil, err
		}
	}

	session.log.WithFields(logrus.Fields{
		"width":  session.config.Width,
		"height": session.config.Height,
		"bombs":  session.config.NumBombs,
		"mode":   session.config.Mode,
		"seed":   session.config.Seed,
	}).Debug("session started")

	return session, nil
}

func (session *Session) generate(safe *Coordinates) error {
	width, height, numBombs := session.config.dimensions()

	bombs, err := PlaceBombs(width, height, numBombs, safe, session.rand)
	if err != nil {
		return err
	}
	board, err := NewBoard(width, height, bombs)
	if err != nil {
		return err
	}

	for c := range session.pendingFlags {
		if _, err := board.ToggleFlag(c); err != nil {
			return err
		}
	}
	session.pendingFlags = nil
	session.board = board

	if safe != nil {
		session.log.WithField("start", safe.String()).Debug("bombs placed around safe start")
	} else {
		session.log.Debug("bombs placed")
	}
	return nil
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) State() BoardState {
	return session.state
}

// Rand returns the session's source of randomness, seeded from the config
func (session *Session) Rand() *rand.Rand {
	return session.rand
}

func (session *Session) Seed() int64 {
	return session.config.Seed
}

func (session *Session) Width() int {
	return int(session.config.Width)
}

func (session *Session) Height() int {
	return int(session.config.Height)
}

func (session *Session) NumCells() int {
	return session.Width() * session.Height()
}

func (session *Session) BombCount() int {
	return int(session.config.NumBombs)
}

func (session *Session) NumFlags() int {
	if session.board == nil {
		return session.pendingFlags.Len()
	}
	return session.board.NumFlags()
}

// BombsRemaining is the number of bombs less the number of flags placed. It
// goes negative when more flags are placed than there are bombs.
func (session *Session) BombsRemaining() int {
	return session.BombCount() - session.NumFlags()
}

func (session *Session) SafeTilesRemaining() int {
	if session.board == nil {
		return session.NumCells() - session.BombCount()
	}
	return session.board.SafeTilesRemaining()
}

func (session *Session) inBounds(c Coordinates) bool {
	return c.In(session.Width(), session.Height())
}

// CellAt returns the visible state of a cell. Tile is only meaningful for
// uncovered cells, and is reported as Empty otherwise.
func (session *Session) CellAt(c Coordinates) (CellView, bool) {
	if !session.inBounds(c) {
		return CellView{}, false
	}

	if session.board == nil {
		view := CellView{At: c, State: Covered}
		if session.pendingFlags.Contains(c) {
			view.State = Flagged
		}
		return view, true
	}

	view, ok := session.board.CellAt(c)
	if view.State != Uncovered {
		view.Tile = Empty
	}
	return view, ok
}

// Cells returns the visible state of every cell, row by row
func (session *Session) Cells() []CellView {
	views := make([]CellView, 0, session.NumCells())
	for y := 0; y < session.Height(); y++ {
		for x := 0; x < session.Width(); x++ {
			view, _ := session.CellAt(Coordinates{X: x, Y: y})
			views = append(views, view)
		}
	}
	return views
}

// Neighbors returns the coordinates surrounding c on the session's board
func (session *Session) Neighbors(c Coordinates) []Coordinates {
	return c.NeighborsIn(session.Width(), session.Height())
}

// Bombs returns where the bombs are, once the game has finished
func (session *Session) Bombs() []Coordinates {
	if !session.state.Finished() || session.board == nil {
		return nil
	}
	return session.board.Bombs()
}

// Snapshot captures the board, or nil if no bombs have been placed yet
func (session *Session) Snapshot() *BoardSnapshot {
	if session.board == nil {
		return nil
	}
	return session.board.Snapshot(session.config.Seed)
}

func (session *Session) checkCommand(command string, c Coordinates) error {
	if !session.inBounds(c) {
		return fmt.Errorf("%s %v: %w", command, c, ErrCoordinateOutOfBounds)
	}
	return nil
}

// HandleReveal uncovers the cell at c. Commands received after the game has
// finished are ignored.
func (session *Session) HandleReveal(c Coordinates) ([]Event, error) {
	if err := session.checkCommand("reveal", c); err != nil {
		return nil, err
	}
	if session.state.Finished() {
		return nil, nil
	}

	if session.board == nil {
		if session.pendingFlags.Contains(c) {
			return nil, nil
		}
		if err := session.generate(&c); err != nil {
			return nil, err
		}
	}

	outcome, err := session.board.Reveal(c)
	if err != nil {
		return nil, err
	}

	log := session.log.WithField("at", c.String())

	var events []Event
	switch outcome.Result {
	case Exploded:
		events = append(events, BoardExplosionEvent{At: c})
		session.state = Lost
		log.Info("board exploded")

	case Revealed:
		for _, uncovered := range outcome.Uncovered {
			events = append(events, TileTriggerEvent{At: uncovered})
		}
		log.WithField("uncovered", len(outcome.Uncovered)).Debug("tiles revealed")

		if session.board.IsWon() {
			events = append(events, BoardCompletedEvent{})
			session.state = Won
			log.Info("board completed")
		}

	default:
		log.WithField("result", outcome.Result).Debug("reveal ignored")
	}

	return events, nil
}

// HandleToggleFlag places or removes a flag on the covered cell at c
func (session *Session) HandleToggleFlag(c Coordinates) ([]Event, error) {
	if err := session.checkCommand("toggle flag", c); err != nil {
		return nil, err
	}
	if session.state.Finished() {
		return nil, nil
	}

	var flagged bool
	if session.board == nil {
		flagged = !session.pendingFlags.Contains(c)
		if flagged {
			session.pendingFlags.Add(c)
		} else {
			session.pendingFlags.Remove(c)
		}
	} else {
		result, err := session.board.ToggleFlag(c)
		if err != nil {
			return nil, err
		}
		if result == NoOp {
			return nil, nil
		}
		flagged = result == FlagPlaced
	}

	session.log.WithFields(logrus.Fields{
		"at":        c.String(),
		"flagged":   flagged,
		"remaining": session.BombsRemaining(),
	}).Debug("tile marked")

	return []Event{TileMarkEvent{At: c, Flagged: flagged}}, nil
}

// HandleChord reveals every unflagged neighbour of the uncovered number at c,
// provided exactly that many of its neighbours are flagged
func (session *Session) HandleChord(c Coordinates) ([]Event, error) {
	if err := session.checkCommand("chord", c); err != nil {
		return nil, err
	}
	if session.state.Finished() || session.board == nil {
		return nil, nil
	}

	targets, err := session.board.ChordTargets(c)
	if err != nil {
		return nil, err
	}

	var events []Event
	for _, target := range targets {
		revealEvents, err := session.HandleReveal(target)
		if err != nil {
			return events, err
		}
		events = append(events, revealEvents...)
	}
	return events, nil
}

type Action int

const (
	Click Action = iota
	RightClick
	MiddleClick
)

func (action Action) String() string {
	switch action {
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case MiddleClick:
		return "middle-click"
	default:
		return "unknown"
	}
}

// CellAction is a command aimed at a single cell
type CellAction struct {
	At     Coordinates
	Action Action
}

func (action CellAction) String() string {
	return fmt.Sprintf("%s%v", action.Action, action.At)
}

// Apply performs a CellAction: Click reveals, RightClick toggles a flag and
// MiddleClick chords
func (session *Session) Apply(action CellAction) ([]Event, error) {
	switch action.Action {
	case Click:
		return session.HandleReveal(action.At)
	case RightClick:
		return session.HandleToggleFlag(action.At)
	case MiddleClick:
		return session.HandleChord(action.At)
	default:
		return nil, fmt.Errorf("unknown action %d", action.Action)
	}
}
