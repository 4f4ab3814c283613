package rules

import (
	"testing"

	"chessttt-local/types"
)

// piece returns the starting piece of owner with type t.
func piece(owner types.Player, t types.PieceType) types.Piece {
	pc := types.Piece{
		ID:    owner.String() + "-" + t.String(),
		Type:  t,
		Owner: owner,
	}
	if t == types.Pawn {
		pc.Direction = types.DefaultDirection(owner)
	}
	return pc
}

// stateWith builds a position from a square → piece layout. Every piece
// not on the board is put in its owner's hand so both sides keep four.
func stateWith(t *testing.T, turn types.Player, layout map[int]types.Piece) *types.GameState {
	t.Helper()
	s := &types.GameState{Turn: turn, History: []string{}}
	placed := map[string]bool{}
	for idx, pc := range layout {
		pc := pc
		if !types.InBounds(idx) {
			t.Fatalf("layout index %d out of range", idx)
		}
		s.Board[idx] = &pc
		placed[pc.ID] = true
	}
	for _, owner := range []types.Player{types.Player1, types.Player2} {
		hand := types.Hand{}
		for _, pt := range types.PieceTypes {
			pc := piece(owner, pt)
			if !placed[pc.ID] {
				hand = append(hand, pc)
			}
		}
		s.SetHand(owner, hand)
	}
	return s
}

func boardWith(layout map[int]types.Piece) *types.Board {
	var b types.Board
	for idx, pc := range layout {
		pc := pc
		b[idx] = &pc
	}
	return &b
}

func assertConserved(t *testing.T, s *types.GameState) {
	t.Helper()
	for _, p := range []types.Player{types.Player1, types.Player2} {
		seen := map[string]int{}
		for _, pc := range s.Board {
			if pc != nil && pc.Owner == p {
				seen[pc.ID]++
			}
		}
		for _, pc := range s.Hand(p) {
			if pc.Owner != p {
				t.Fatalf("%s hand holds %s owned by %s", p, pc.ID, pc.Owner)
			}
			seen[pc.ID]++
		}
		if len(seen) != types.PiecesPerPlayer {
			t.Fatalf("%s has %d distinct pieces, want %d", p, len(seen), types.PiecesPerPlayer)
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("piece %s appears %d times", id, n)
			}
		}
	}
}
