// Package rules implements the rules of the 4x4 hand chess variant: legal
// destinations per piece, placement and movement resolution, and win and
// repetition detection. Every function is pure over its input snapshot.
package rules

import "chessttt-local/types"

type offset struct {
	dx, dy int
}

var (
	rookRays   = [...]offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopRays = [...]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightJumps = [...]offset{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
)

// LegalDestinations returns the squares pc may move to from index from,
// given the occupancy of b. Turn order and placement phase are not
// considered. The order is stable for a given piece type and position.
func LegalDestinations(b *types.Board, from int, pc types.Piece) []int {
	x, y := types.Coords(from)
	var moves []int

	switch pc.Type {
	case types.Rook:
		for _, ray := range rookRays {
			moves = slide(b, pc.Owner, x, y, ray, moves)
		}
	case types.Bishop:
		for _, ray := range bishopRays {
			moves = slide(b, pc.Owner, x, y, ray, moves)
		}
	case types.Knight:
		for _, j := range knightJumps {
			if idx, ok := reachable(b, pc.Owner, x+j.dx, y+j.dy); ok {
				moves = append(moves, idx)
			}
		}
	case types.Pawn:
		if idx, ok := reachable(b, pc.Owner, x, y+int(pc.Heading())); ok {
			moves = append(moves, idx)
		}
	}
	return moves
}

// slide walks one ray until it leaves the board or hits a piece.
// An opponent piece ends the ray as a capture.
func slide(b *types.Board, owner types.Player, x, y int, ray offset, moves []int) []int {
	for cx, cy := x+ray.dx, y+ray.dy; ; cx, cy = cx+ray.dx, cy+ray.dy {
		idx, ok := types.Index(cx, cy)
		if !ok {
			return moves
		}
		target := b.At(idx)
		if target == nil {
			moves = append(moves, idx)
			continue
		}
		if target.Owner != owner {
			moves = append(moves, idx)
		}
		return moves
	}
}

// reachable reports whether a single step onto (x, y) lands on the board
// and on a square that is empty or holds an opponent piece.
func reachable(b *types.Board, owner types.Player, x, y int) (int, bool) {
	idx, ok := types.Index(x, y)
	if !ok {
		return -1, false
	}
	if target := b.At(idx); target != nil && target.Owner == owner {
		return -1, false
	}
	return idx, true
}

// PlacementTargets returns every empty square in index order.
func PlacementTargets(b *types.Board) []int {
	var targets []int
	for i := 0; i < types.CellCount; i++ {
		if b.Empty(i) {
			targets = append(targets, i)
		}
	}
	return targets
}
