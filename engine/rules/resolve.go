package rules

import (
	"fmt"
	"slices"

	"chessttt-local/types"
)

// PlacementThreshold is the number of own pieces a player needs on the
// board before moving pieces is allowed.
const PlacementThreshold = 3

// InPlacementPhase returns true while p has fewer than PlacementThreshold
// pieces on the board and may therefore only place from hand.
func InPlacementPhase(b *types.Board, p types.Player) bool {
	return b.CountOwned(p) < PlacementThreshold
}

// ResolvePlacement places the piece pieceID from the current player's hand
// on the empty square to. On rejection the input state is returned with an
// error and nothing is modified.
func ResolvePlacement(s *types.GameState, pieceID string, to int) (*types.GameState, error) {
	if s.Finished() {
		return s, ErrGameOver
	}
	if !types.InBounds(to) {
		return s, fmt.Errorf("place %s at %d: %w", pieceID, to, ErrOutOfRange)
	}
	hand := s.Hand(s.Turn)
	pos := hand.Find(pieceID)
	if pos < 0 {
		return s, fmt.Errorf("place %s: %w", pieceID, ErrNotInHand)
	}
	if !s.Board.Empty(to) {
		return s, fmt.Errorf("place %s at %d: %w", pieceID, to, ErrSquareOccupied)
	}

	next := s.Clone()
	pc := hand[pos]
	next.Board[to] = &pc
	next.SetHand(s.Turn, hand.Without(pos))
	return finishTurn(next), nil
}

// ResolveMove moves the current player's piece from one square to another.
// A captured opponent piece goes back to its owner's hand, and a pawn that
// reaches the far row in its direction of travel turns around. On rejection
// the input state is returned with an error and nothing is modified.
func ResolveMove(s *types.GameState, from, to int) (*types.GameState, error) {
	if s.Finished() {
		return s, ErrGameOver
	}
	if !types.InBounds(from) || !types.InBounds(to) {
		return s, fmt.Errorf("move %d to %d: %w", from, to, ErrOutOfRange)
	}
	if InPlacementPhase(&s.Board, s.Turn) {
		return s, fmt.Errorf("move %d to %d: %w", from, to, ErrPlacementPhase)
	}
	pc := s.Board.At(from)
	if pc == nil {
		return s, fmt.Errorf("move %d to %d: %w", from, to, ErrEmptySquare)
	}
	if pc.Owner != s.Turn {
		return s, fmt.Errorf("move %s: %w", pc.ID, ErrNotYourPiece)
	}
	if !slices.Contains(LegalDestinations(&s.Board, from, *pc), to) {
		return s, fmt.Errorf("move %s to %d: %w", pc.ID, to, ErrIllegalDestination)
	}

	next := s.Clone()
	if captured := s.Board.At(to); captured != nil {
		next.SetHand(captured.Owner, next.Hand(captured.Owner).With(*captured))
	}
	moved := turnAround(*pc, to)
	next.Board[from] = nil
	next.Board[to] = &moved
	return finishTurn(next), nil
}

// turnAround flips a pawn's direction when to is the last row in the
// direction it was travelling. Other pieces are returned unchanged.
func turnAround(pc types.Piece, to int) types.Piece {
	if pc.Type != types.Pawn {
		return pc
	}
	_, row := types.Coords(to)
	dir := pc.Heading()
	if (dir == types.Up && row == 0) || (dir == types.Down && row == types.GridSize-1) {
		dir = dir.Reverse()
	}
	pc.Direction = dir
	return pc
}

// finishTurn records the new board, settles the outcome and hands the
// turn to the opponent.
func finishTurn(next *types.GameState) *types.GameState {
	next.History = append(next.History, next.Board.Serialize())
	next.Winner = outcomeOf(&next.Board, next.History)
	next.Turn = next.Turn.Opponent()
	return next
}
