// Package local provides a GameEngine for two players sharing one terminal.
package local

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"chessttt-local/engine"
	"chessttt-local/engine/rules"
	"chessttt-local/notation"
	"chessttt-local/types"
)

// LocalEngine implements the GameEngine interface for a local session.
// It holds the only reference to the current snapshot and swaps it for
// the resolver's result after every accepted action.
type LocalEngine struct {
	config    engine.GameConfig
	log       *logrus.Entry
	sessionID string

	state     *types.GameState
	selection engine.Selection
	history   []engine.MoveEntry

	moveCallback func(entry engine.MoveEntry, state *types.GameState)
	endCallback  func(winner types.Winner)

	mu sync.Mutex
}

var _ engine.GameEngine = (*LocalEngine)(nil)

// NewLocalEngine creates a local engine. A nil logger discards output.
func NewLocalEngine(cfg engine.GameConfig, logger *logrus.Logger) *LocalEngine {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &LocalEngine{
		config:    cfg,
		log:       logrus.NewEntry(logger),
		state:     types.NewGameState(),
		selection: engine.NoSelection(),
	}
}

// Connect starts a fresh game with a new session id.
func (l *LocalEngine) Connect() error {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("failed to create session id: %w", err)
	}

	l.mu.Lock()
	l.sessionID = id.String()
	l.state = types.NewGameState()
	l.selection = engine.NoSelection()
	l.history = nil
	l.log = l.log.WithField("session", l.sessionID)
	l.mu.Unlock()

	l.log.WithFields(logrus.Fields{
		"p1": l.config.Player1Name,
		"p2": l.config.Player2Name,
	}).Info("game started")
	return nil
}

// SessionID returns the id of the current game.
func (l *LocalEngine) SessionID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessionID
}

// GetState returns a copy of the current snapshot.
func (l *LocalEngine) GetState() *types.GameState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Selection returns the current selection context.
func (l *LocalEngine) Selection() engine.Selection {
	l.mu.Lock()
	defer l.mu.Unlock()
	sel := l.selection
	sel.ValidMoves = slices.Clone(sel.ValidMoves)
	return sel
}

// History returns a copy of the move list.
func (l *LocalEngine) History() []engine.MoveEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.history)
}

// PlayerName returns the configured name of p.
func (l *LocalEngine) PlayerName(p types.Player) string {
	if p == types.Player2 {
		return l.config.Player2Name
	}
	return l.config.Player1Name
}

// ClearSelection drops the current selection.
func (l *LocalEngine) ClearSelection() {
	l.mu.Lock()
	l.selection = engine.NoSelection()
	l.mu.Unlock()
}

// SelectHandPiece selects a piece from the current player's hand. Every
// empty square becomes a valid destination.
func (l *LocalEngine) SelectHandPiece(pieceID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Finished() {
		return rules.ErrGameOver
	}
	if l.state.Hand(l.state.Turn).Find(pieceID) < 0 {
		return fmt.Errorf("select %s: %w", pieceID, rules.ErrNotInHand)
	}
	l.selection = engine.Selection{
		Square:      -1,
		HandPieceID: pieceID,
		ValidMoves:  rules.PlacementTargets(&l.state.Board),
	}
	return nil
}

// SelectSquare interprets a click on index against the current selection.
func (l *LocalEngine) SelectSquare(index int) error {
	l.mu.Lock()

	s := l.state
	if s.Finished() {
		l.mu.Unlock()
		return rules.ErrGameOver
	}
	if !types.InBounds(index) {
		l.mu.Unlock()
		return fmt.Errorf("select square %d: %w", index, rules.ErrOutOfRange)
	}

	clicked := s.Board.At(index)
	mine := clicked != nil && clicked.Owner == s.Turn
	placing := rules.InPlacementPhase(&s.Board, s.Turn)
	sel := l.selection

	switch {
	case sel.HandPieceID != "" && sel.Allows(index):
		return l.applyLocked(rules.PlaceAction(sel.HandPieceID, index))
	case sel.HandPieceID != "" && mine && !placing:
		l.selectBoardPieceLocked(index)
	case sel.HandPieceID != "":
		l.selection = engine.NoSelection()
	case mine && placing:
		l.mu.Unlock()
		return fmt.Errorf("select %s: %w", clicked.ID, rules.ErrPlacementPhase)
	case mine:
		l.selectBoardPieceLocked(index)
	case sel.Square >= 0 && sel.Allows(index):
		return l.applyLocked(rules.MoveAction(sel.Square, index))
	default:
		l.selection = engine.NoSelection()
	}
	l.mu.Unlock()
	return nil
}

// selectBoardPieceLocked selects the piece on index. Must be called while
// holding the lock.
func (l *LocalEngine) selectBoardPieceLocked(index int) {
	pc := l.state.Board.At(index)
	l.selection = engine.Selection{
		Square:     index,
		ValidMoves: rules.LegalDestinations(&l.state.Board, index, *pc),
	}
}

// Place places a hand piece on an empty square.
func (l *LocalEngine) Place(pieceID string, to int) error {
	l.mu.Lock()
	return l.applyLocked(rules.PlaceAction(pieceID, to))
}

// Move moves a board piece.
func (l *LocalEngine) Move(from, to int) error {
	l.mu.Lock()
	return l.applyLocked(rules.MoveAction(from, to))
}

// applyLocked resolves a against the current state. It must be called
// with the lock held and releases it before running callbacks.
func (l *LocalEngine) applyLocked(a rules.Action) error {
	prev := l.state
	mover := prev.Turn
	log := l.log.WithFields(logrus.Fields{
		"player": mover.String(),
		"action": a.String(),
	})

	next, err := rules.Apply(prev, a)
	if err != nil {
		l.mu.Unlock()
		log.WithError(err).Debug("action rejected")
		return err
	}

	entry := engine.MoveEntry{
		Number:   len(l.history) + 1,
		Player:   mover,
		Action:   a,
		Notation: notation.Format(prev, a),
	}
	l.state = next
	l.history = append(l.history, entry)
	l.selection = engine.NoSelection()

	stateCopy := next.Clone()
	moveCallback := l.moveCallback
	endCallback := l.endCallback
	l.mu.Unlock()

	log.WithField("notation", entry.Notation).Debug("action applied")

	// Notify callbacks outside the lock so they may call back into the engine.
	if moveCallback != nil {
		moveCallback(entry, stateCopy)
	}
	if next.Finished() {
		log.WithField("winner", next.Winner.String()).Info("game over")
		if endCallback != nil {
			endCallback(next.Winner)
		}
	}
	return nil
}

// OnMove registers a callback for every accepted action.
func (l *LocalEngine) OnMove(callback func(entry engine.MoveEntry, state *types.GameState)) {
	l.mu.Lock()
	l.moveCallback = callback
	l.mu.Unlock()
}

// OnGameEnd registers a callback for when the game ends.
func (l *LocalEngine) OnGameEnd(callback func(winner types.Winner)) {
	l.mu.Lock()
	l.endCallback = callback
	l.mu.Unlock()
}

// Close ends the session. The local engine has nothing to release besides
// the registered callbacks.
func (l *LocalEngine) Close() {
	l.mu.Lock()
	l.moveCallback = nil
	l.endCallback = nil
	l.mu.Unlock()
	l.log.Debug("session closed")
}
