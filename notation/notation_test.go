package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chessttt-local/engine/rules"
	"chessttt-local/types"
)

func TestSquareName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "a4"},
		{3, "d4"},
		{5, "b3"},
		{12, "a1"},
		{15, "d1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SquareName(tt.index))
		idx, err := ParseSquare(tt.want)
		require.NoError(t, err)
		assert.Equal(t, tt.index, idx)
	}
}

func TestParseSquareAllIndices(t *testing.T) {
	for i := 0; i < types.CellCount; i++ {
		idx, err := ParseSquare(SquareName(i))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, in := range []string{"", "a", "e1", "a5", "a0", "11", "a44"} {
		_, err := ParseSquare(in)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", in)
	}
	idx, err := ParseSquare(" B3 ")
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
}

func TestFormatAndParsePlacement(t *testing.T) {
	s := types.NewGameState()

	a, err := Parse(s, "N@b3")
	require.NoError(t, err)
	assert.Equal(t, rules.PlaceAction("p1-knight", 5), a)
	assert.Equal(t, "N@b3", Format(s, a))

	_, err = Parse(s, "Q@b3")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = Parse(s, "NN@b3")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParsePlacementOfMissingPiece(t *testing.T) {
	s, err := Play(types.NewGameState(), "R@a4", "R@d1")
	require.NoError(t, err)
	_, err = Parse(s, "R@b4")
	assert.ErrorIs(t, err, rules.ErrNotInHand)
}

func TestFormatMoveAndCapture(t *testing.T) {
	s, err := Play(types.NewGameState(),
		"R@b3", "N@b1",
		"B@c3", "B@a2",
		"N@d4", "R@d2",
	)
	require.NoError(t, err)

	quiet := rules.MoveAction(5, 4)
	assert.Equal(t, "Rb3-a3", Format(s, quiet))

	capture := rules.MoveAction(5, 13)
	assert.Equal(t, "Rb3xb1", Format(s, capture))

	a, err := Parse(s, "Rb3xb1")
	require.NoError(t, err)
	assert.Equal(t, capture, a)

	a, err = Parse(s, "b3-a3")
	require.NoError(t, err)
	assert.Equal(t, quiet, a)

	_, err = Parse(s, "Nb3-a3")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = Parse(s, "b3a3")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestPlayStopsOnRejectedMove(t *testing.T) {
	start := types.NewGameState()
	s, err := Play(start, "P@a4", "a4-a3")
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrPlacementPhase)
	// The state after the last accepted move is returned.
	assert.Equal(t, types.Player2, s.Turn)
	assert.Len(t, s.History, 1)

	_, err = Play(start, "P@a4", "P@a4")
	assert.ErrorIs(t, err, rules.ErrSquareOccupied)
}

func TestPlayScriptedWin(t *testing.T) {
	s, err := Play(types.NewGameState(),
		"P@a4", "P@a3",
		"R@b4", "R@b3",
		"N@c4", "N@c3",
		"B@d4",
	)
	require.NoError(t, err)
	assert.Equal(t, types.WinnerPlayer1, s.Winner)
}
