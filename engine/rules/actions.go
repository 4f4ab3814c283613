package rules

import (
	"fmt"

	"chessttt-local/types"
)

// ActionKind distinguishes placing from hand and moving on the board.
type ActionKind uint8

const (
	Place ActionKind = iota
	Move
)

func (k ActionKind) String() string {
	if k == Place {
		return "place"
	}
	return "move"
}

// Action is one turn's choice. PieceID is used by Place, From by Move.
type Action struct {
	Kind    ActionKind
	PieceID string
	From    int
	To      int
}

// PlaceAction builds a placement of pieceID on to.
func PlaceAction(pieceID string, to int) Action {
	return Action{Kind: Place, PieceID: pieceID, From: -1, To: to}
}

// MoveAction builds a move from one square to another.
func MoveAction(from, to int) Action {
	return Action{Kind: Move, From: from, To: to}
}

func (a Action) String() string {
	if a.Kind == Place {
		return fmt.Sprintf("place %s@%d", a.PieceID, a.To)
	}
	return fmt.Sprintf("move %d-%d", a.From, a.To)
}

// Apply resolves a through ResolvePlacement or ResolveMove.
func Apply(s *types.GameState, a Action) (*types.GameState, error) {
	switch a.Kind {
	case Place:
		return ResolvePlacement(s, a.PieceID, a.To)
	case Move:
		return ResolveMove(s, a.From, a.To)
	}
	return s, fmt.Errorf("unknown action kind %d: %w", a.Kind, ErrInvalidAction)
}

// LegalActions lists every action the side to move may take: placements
// in hand order and square order, then moves in source and destination
// order. A finished game has none.
func LegalActions(s *types.GameState) []Action {
	if s.Finished() {
		return nil
	}
	var actions []Action
	targets := PlacementTargets(&s.Board)
	for _, pc := range s.Hand(s.Turn) {
		for _, to := range targets {
			actions = append(actions, PlaceAction(pc.ID, to))
		}
	}
	if InPlacementPhase(&s.Board, s.Turn) {
		return actions
	}
	for from := 0; from < types.CellCount; from++ {
		pc := s.Board.At(from)
		if pc == nil || pc.Owner != s.Turn {
			continue
		}
		for _, to := range LegalDestinations(&s.Board, from, *pc) {
			actions = append(actions, MoveAction(from, to))
		}
	}
	return actions
}
