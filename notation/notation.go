// Package notation converts between board indices, actions and a short
// text notation used by the move list and for scripting games.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"chessttt-local/engine/rules"
	"chessttt-local/types"
)

// Notation coordinate system:
// - Files: a-d (left to right, column 0-3)
// - Ranks: 4-1 (top to bottom, row 0-3)
// - Example: a4 is index 0, d1 is index 15
//
// Actions:
// - Placement: N@b3 (piece letter, '@', square)
// - Move:      Rb1-b3, capture Rb1xb3 (letter optional when parsing)

// ErrSyntax is returned for text that is not valid notation.
var ErrSyntax = errors.New("invalid notation")

var letters = map[types.PieceType]byte{
	types.Pawn:   'P',
	types.Rook:   'R',
	types.Knight: 'N',
	types.Bishop: 'B',
}

// Letter returns the notation letter for t.
func Letter(t types.PieceType) byte {
	return letters[t]
}

// PieceTypeOf returns the piece type for a notation letter.
func PieceTypeOf(letter byte) (types.PieceType, bool) {
	for t, l := range letters {
		if l == letter {
			return t, true
		}
	}
	return 0, false
}

// SquareName converts a board index to notation, e.g. 0 -> "a4".
func SquareName(index int) string {
	col, row := types.Coords(index)
	return fmt.Sprintf("%c%d", 'a'+rune(col), types.GridSize-row)
}

// ParseSquare converts notation like "b3" to a board index.
func ParseSquare(square string) (int, error) {
	square = strings.ToLower(strings.TrimSpace(square))
	if len(square) != 2 {
		return -1, fmt.Errorf("%w: square %q", ErrSyntax, square)
	}
	col := int(square[0] - 'a')
	rank := int(square[1] - '0')
	idx, ok := types.Index(col, types.GridSize-rank)
	if !ok {
		return -1, fmt.Errorf("%w: square %q out of bounds", ErrSyntax, square)
	}
	return idx, nil
}

// Format renders a in notation. s is the state before the action is applied,
// which supplies the piece type and whether the move captures.
func Format(s *types.GameState, a rules.Action) string {
	switch a.Kind {
	case rules.Place:
		letter := byte('?')
		hand := s.Hand(s.Turn)
		if i := hand.Find(a.PieceID); i >= 0 {
			letter = Letter(hand[i].Type)
		}
		return fmt.Sprintf("%c@%s", letter, SquareName(a.To))
	case rules.Move:
		letter := byte('?')
		if types.InBounds(a.From) {
			if pc := s.Board.At(a.From); pc != nil {
				letter = Letter(pc.Type)
			}
		}
		sep := '-'
		if types.InBounds(a.To) && !s.Board.Empty(a.To) {
			sep = 'x'
		}
		return fmt.Sprintf("%c%s%c%s", letter, SquareName(a.From), sep, SquareName(a.To))
	}
	return a.String()
}

// Parse resolves text into an action for the side to move in s.
// A placement picks the first hand piece of the named type.
func Parse(s *types.GameState, text string) (rules.Action, error) {
	text = strings.TrimSpace(text)
	if at := strings.IndexByte(text, '@'); at >= 0 {
		return parsePlacement(s, text, at)
	}
	return parseMove(s, text)
}

func parsePlacement(s *types.GameState, text string, at int) (rules.Action, error) {
	if at != 1 {
		return rules.Action{}, fmt.Errorf("%w: placement %q", ErrSyntax, text)
	}
	t, ok := PieceTypeOf(text[0])
	if !ok {
		return rules.Action{}, fmt.Errorf("%w: unknown piece %q", ErrSyntax, text[0])
	}
	to, err := ParseSquare(text[at+1:])
	if err != nil {
		return rules.Action{}, err
	}
	for _, pc := range s.Hand(s.Turn) {
		if pc.Type == t {
			return rules.PlaceAction(pc.ID, to), nil
		}
	}
	return rules.Action{}, fmt.Errorf("no %s in %s hand: %w", t, s.Turn, rules.ErrNotInHand)
}

func parseMove(s *types.GameState, text string) (rules.Action, error) {
	body := text
	var want *types.PieceType
	if len(body) == 6 {
		t, ok := PieceTypeOf(body[0])
		if !ok {
			return rules.Action{}, fmt.Errorf("%w: unknown piece %q", ErrSyntax, body[0])
		}
		want = &t
		body = body[1:]
	}
	if len(body) != 5 || (body[2] != '-' && body[2] != 'x') {
		return rules.Action{}, fmt.Errorf("%w: move %q", ErrSyntax, text)
	}
	from, err := ParseSquare(body[:2])
	if err != nil {
		return rules.Action{}, err
	}
	to, err := ParseSquare(body[3:])
	if err != nil {
		return rules.Action{}, err
	}
	if want != nil {
		if pc := s.Board.At(from); pc == nil || pc.Type != *want {
			return rules.Action{}, fmt.Errorf("%w: no %s on %s", ErrSyntax, *want, body[:2])
		}
	}
	return rules.MoveAction(from, to), nil
}

// Play parses and applies each move in turn, returning the final state.
// It stops at the first move that fails to parse or is rejected.
func Play(s *types.GameState, moves ...string) (*types.GameState, error) {
	for i, m := range moves {
		a, err := Parse(s, m)
		if err != nil {
			return s, fmt.Errorf("move %d %q: %w", i+1, m, err)
		}
		next, err := rules.Apply(s, a)
		if err != nil {
			return s, fmt.Errorf("move %d %q: %w", i+1, m, err)
		}
		s = next
	}
	return s, nil
}
