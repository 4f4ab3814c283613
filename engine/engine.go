// Package engine defines the interface the UI uses to drive a game.
package engine

import (
	"slices"

	"chessttt-local/engine/rules"
	"chessttt-local/types"
)

// GameEngine is a single game session. Implementations own the current
// GameState and replace it wholesale after every accepted action.
type GameEngine interface {
	// Connect starts a new game, discarding any game in progress.
	Connect() error

	// SessionID identifies the game started by the last Connect.
	SessionID() string

	// GetState returns a copy of the current snapshot.
	GetState() *types.GameState

	// Selection returns the current selection context.
	Selection() Selection

	// SelectHandPiece selects a piece from the current player's hand.
	SelectHandPiece(pieceID string) error

	// SelectSquare handles a click on a board square: it selects, places,
	// moves or clears depending on the current selection.
	SelectSquare(index int) error

	// ClearSelection drops the current selection.
	ClearSelection()

	// Place places a hand piece directly.
	Place(pieceID string, to int) error

	// Move moves a board piece directly.
	Move(from, to int) error

	// History returns the moves played so far.
	History() []MoveEntry

	// PlayerName returns the display name configured for p.
	PlayerName(p types.Player) string

	// OnMove registers a callback for every accepted action.
	// state is a copy and may be kept by the callee.
	OnMove(func(entry MoveEntry, state *types.GameState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(winner types.Winner))

	// Close ends the session.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Player1Name string
	Player2Name string
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Player1Name: "Player 1",
		Player2Name: "Player 2",
	}
}

// Selection is the caller-side interaction state: which hand piece or
// board square is picked and where it may go. It is not part of the
// rules state.
type Selection struct {
	Square      int    // -1 when no board square is selected
	HandPieceID string // empty when no hand piece is selected
	ValidMoves  []int
}

// NoSelection returns an empty selection.
func NoSelection() Selection {
	return Selection{Square: -1}
}

// Empty returns true if nothing is selected.
func (s Selection) Empty() bool {
	return s.Square < 0 && s.HandPieceID == ""
}

// Allows returns true if index is one of the selection's valid moves.
func (s Selection) Allows(index int) bool {
	return slices.Contains(s.ValidMoves, index)
}

// MoveEntry is one line of the in-memory move list.
type MoveEntry struct {
	Number   int
	Player   types.Player
	Action   rules.Action
	Notation string
}
