package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chessttt-local/types"
)

func TestPlaceFromHand(t *testing.T) {
	s := types.NewGameState()
	before := s.Clone()

	next, err := ResolvePlacement(s, "p1-rook", 5)
	require.NoError(t, err)

	require.NotNil(t, next.Board.At(5))
	assert.Equal(t, "p1-rook", next.Board.At(5).ID)
	assert.Equal(t, -1, next.Hand(types.Player1).Find("p1-rook"))
	assert.Len(t, next.Hand(types.Player1), 3)
	assert.Len(t, next.Hand(types.Player2), 4)
	assert.Equal(t, types.Player2, next.Turn)
	assert.Equal(t, types.WinnerNone, next.Winner)
	assert.Equal(t, []string{next.Board.Serialize()}, next.History)

	// The input snapshot is left as it was.
	assert.Equal(t, before, s)
}

func TestPlacementRejections(t *testing.T) {
	base := stateWith(t, types.Player1, map[int]types.Piece{
		0: piece(p2, types.Rook),
	})
	over := base.Clone()
	over.Winner = types.WinnerDraw

	tests := []struct {
		name    string
		state   *types.GameState
		pieceID string
		to      int
		want    error
	}{
		{"occupied square", base, "p1-pawn", 0, ErrSquareOccupied},
		{"opponent's piece", base, "p2-pawn", 1, ErrNotInHand},
		{"piece already on board", base, "p2-rook", 1, ErrNotInHand},
		{"unknown piece", base, "p1-queen", 1, ErrNotInHand},
		{"finished game", over, "p1-pawn", 1, ErrGameOver},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state.Clone()
			got, err := ResolvePlacement(tt.state, tt.pieceID, tt.to)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrInvalidAction)
			assert.Same(t, tt.state, got)
			assert.Equal(t, before, tt.state)
		})
	}
}

func TestOutOfRangeIsNotAnInvalidAction(t *testing.T) {
	s := types.NewGameState()
	for _, idx := range []int{-1, types.CellCount} {
		got, err := ResolvePlacement(s, "p1-pawn", idx)
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.False(t, errors.Is(err, ErrInvalidAction))
		assert.Same(t, s, got)
	}
	s = moveReadyState(t)
	_, err := ResolveMove(s, 0, 99)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMoveRejectedDuringPlacementPhase(t *testing.T) {
	s := stateWith(t, types.Player1, map[int]types.Piece{
		0: piece(p1, types.Rook),
		5: piece(p1, types.Knight),
	})
	before := s.Clone()

	got, err := ResolveMove(s, 0, 1)
	require.ErrorIs(t, err, ErrPlacementPhase)
	assert.Same(t, s, got)
	assert.Equal(t, before, s)
}

// moveReadyState has three pieces per side on the board with p1 to move:
//
//	N1 .  .  P2
//	.  R1 .  .
//	B2 .  .  .
//	.  N2 .  B1
func moveReadyState(t *testing.T) *types.GameState {
	return stateWith(t, types.Player1, map[int]types.Piece{
		0:  piece(p1, types.Knight),
		5:  piece(p1, types.Rook),
		15: piece(p1, types.Bishop),
		3:  piece(p2, types.Pawn),
		8:  piece(p2, types.Bishop),
		13: piece(p2, types.Knight),
	})
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     error
	}{
		{"empty source", 1, 2, ErrEmptySquare},
		{"opponent piece", 13, 9, ErrNotYourPiece},
		{"not a legal destination", 5, 10, ErrIllegalDestination},
		{"onto own piece", 5, 15, ErrIllegalDestination},
		{"knight jump for a rook", 5, 12, ErrIllegalDestination},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := moveReadyState(t)
			before := s.Clone()
			got, err := ResolveMove(s, tt.from, tt.to)
			require.ErrorIs(t, err, tt.want)
			assert.Same(t, s, got)
			assert.Equal(t, before, s)
		})
	}
}

func TestCaptureReturnsPieceToOwnersHand(t *testing.T) {
	s := moveReadyState(t)

	next, err := ResolveMove(s, 5, 13)
	require.NoError(t, err)

	require.NotNil(t, next.Board.At(13))
	assert.Equal(t, "p1-rook", next.Board.At(13).ID)
	assert.True(t, next.Board.Empty(5))

	assert.Len(t, next.Hand(types.Player2), len(s.Hand(types.Player2))+1)
	assert.Equal(t, "p2-knight", next.Hand(types.Player2)[len(next.Hand(types.Player2))-1].ID)
	assert.Equal(t, s.CountOnBoard(types.Player2)-1, next.CountOnBoard(types.Player2))
	assert.Equal(t, s.CountOnBoard(types.Player1), next.CountOnBoard(types.Player1))
	assertConserved(t, next)

	// Down to two pieces, p2 is back in the placement phase.
	assert.True(t, InPlacementPhase(&next.Board, types.Player2))
	_, err = ResolveMove(next, 3, 7)
	require.ErrorIs(t, err, ErrPlacementPhase)

	// The captured knight can be dropped again with its identity intact.
	after, err := ResolvePlacement(next, "p2-knight", 6)
	require.NoError(t, err)
	assert.Equal(t, types.Player2, after.Board.At(6).Owner)
}

func TestPawnTurnsAroundAtFarRow(t *testing.T) {
	s := stateWith(t, types.Player1, map[int]types.Piece{
		4:  piece(p1, types.Pawn),
		9:  piece(p1, types.Rook),
		14: piece(p1, types.Knight),
		2:  piece(p2, types.Bishop),
		7:  piece(p2, types.Rook),
		11: piece(p2, types.Knight),
	})

	next, err := ResolveMove(s, 4, 0)
	require.NoError(t, err)
	pawn := next.Board.At(0)
	require.NotNil(t, pawn)
	assert.Equal(t, types.Down, pawn.Direction)
	assert.Equal(t, []int{4}, LegalDestinations(&next.Board, 0, *pawn))

	// The pawn that was moved in the input snapshot keeps its old direction.
	assert.Equal(t, types.Up, s.Board.At(4).Direction)

	next, err = ResolveMove(next, 7, 6)
	require.NoError(t, err)
	next, err = ResolveMove(next, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, types.Down, next.Board.At(4).Direction)
}

func TestPawnTurnsAroundAtBottomRow(t *testing.T) {
	s := stateWith(t, types.Player2, map[int]types.Piece{
		8:  piece(p2, types.Pawn),
		1:  piece(p2, types.Rook),
		3:  piece(p2, types.Knight),
		5:  piece(p1, types.Rook),
		10: piece(p1, types.Knight),
		15: piece(p1, types.Bishop),
	})
	next, err := ResolveMove(s, 8, 12)
	require.NoError(t, err)
	assert.Equal(t, types.Up, next.Board.At(12).Direction)
}

func TestPawnMidBoardKeepsDirection(t *testing.T) {
	s := stateWith(t, types.Player1, map[int]types.Piece{
		8:  piece(p1, types.Pawn),
		9:  piece(p1, types.Rook),
		14: piece(p1, types.Knight),
		2:  piece(p2, types.Bishop),
		7:  piece(p2, types.Rook),
		11: piece(p2, types.Knight),
	})
	next, err := ResolveMove(s, 8, 4)
	require.NoError(t, err)
	assert.Equal(t, types.Up, next.Board.At(4).Direction)
}

func TestPlacementLineWins(t *testing.T) {
	s := types.NewGameState()
	steps := []struct {
		id string
		to int
	}{
		{"p1-pawn", 0}, {"p2-pawn", 4},
		{"p1-rook", 1}, {"p2-rook", 5},
		{"p1-knight", 2}, {"p2-knight", 6},
		{"p1-bishop", 3},
	}
	var err error
	for i, st := range steps {
		require.False(t, s.Finished(), "finished early at step %d", i)
		s, err = ResolvePlacement(s, st.id, st.to)
		require.NoError(t, err, "step %d", i)
	}
	assert.Equal(t, types.WinnerPlayer1, s.Winner)
	assert.Len(t, s.History, len(steps))

	// Terminal: nothing is accepted any more.
	_, err = ResolvePlacement(s, "p2-bishop", 7)
	require.ErrorIs(t, err, ErrGameOver)
	_, err = ResolveMove(s, 4, 8)
	require.ErrorIs(t, err, ErrGameOver)
	assert.Empty(t, LegalActions(s))
}

// repetitionState has every piece on the board and no complete line:
//
//	R1 .  N2 B1
//	.  P1 .  N1
//	B2 .  P2 .
//	.  .  .  R2
func repetitionState(t *testing.T) *types.GameState {
	return stateWith(t, types.Player1, map[int]types.Piece{
		0:  piece(p1, types.Rook),
		3:  piece(p1, types.Bishop),
		5:  piece(p1, types.Pawn),
		7:  piece(p1, types.Knight),
		2:  piece(p2, types.Knight),
		8:  piece(p2, types.Bishop),
		10: piece(p2, types.Pawn),
		15: piece(p2, types.Rook),
	})
}

func TestThirdRepetitionIsDraw(t *testing.T) {
	s := repetitionState(t)
	cycle := [][2]int{{0, 4}, {15, 11}, {4, 0}, {11, 15}}

	var err error
	for i := 0; i < 8; i++ {
		m := cycle[i%len(cycle)]
		s, err = ResolveMove(s, m[0], m[1])
		require.NoError(t, err, "move %d", i+1)
		require.Equal(t, types.WinnerNone, s.Winner, "move %d", i+1)
	}
	assert.Equal(t, 2, RepetitionCount(s.History))

	s, err = ResolveMove(s, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, types.WinnerDraw, s.Winner)
	assert.Equal(t, 3, RepetitionCount(s.History))
	assert.Empty(t, s.Hand(types.Player1))
	assert.Empty(t, s.Hand(types.Player2))

	_, err = ResolveMove(s, 15, 11)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestLineWinBeatsRepetition(t *testing.T) {
	layout := map[int]types.Piece{
		0: piece(p1, types.Pawn), 1: piece(p1, types.Rook), 2: piece(p1, types.Knight),
		4: piece(p2, types.Pawn), 5: piece(p2, types.Rook), 6: piece(p2, types.Knight),
	}
	s := stateWith(t, types.Player1, layout)

	final := map[int]types.Piece{3: piece(p1, types.Bishop)}
	for k, v := range layout {
		final[k] = v
	}
	won := boardWith(final).Serialize()
	s.History = []string{won, won}

	next, err := ResolvePlacement(s, "p1-bishop", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, RepetitionCount(next.History))
	assert.Equal(t, types.WinnerPlayer1, next.Winner)
}
