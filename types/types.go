// Package types contains shared data structures for chessttt-local.
package types

import (
	"slices"
	"strings"
)

const (
	// GridSize is the width and height of the board.
	GridSize = 4
	// CellCount is the number of squares on the board.
	CellCount = GridSize * GridSize
	// PiecesPerPlayer is the number of pieces each player owns for the whole game.
	PiecesPerPlayer = 4
)

// Player identifies one side of the game.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "p1"
	case Player2:
		return "p2"
	}
	return "none"
}

// PieceType is the kind of a piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
)

// PieceTypes lists every piece type in hand order.
var PieceTypes = [...]PieceType{Pawn, Rook, Knight, Bishop}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	}
	return "unknown"
}

// Direction is the row direction a pawn travels in.
// Up decreases the row index, Down increases it.
type Direction int8

const (
	NoDirection Direction = 0
	Up          Direction = -1
	Down        Direction = 1
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// DefaultDirection returns the direction a player's pawn starts with.
// Each side advances toward the opposite edge.
func DefaultDirection(p Player) Direction {
	if p == Player1 {
		return Up
	}
	return Down
}

// Piece is a single physical piece. ID stays the same through
// capture, hand and re-placement.
type Piece struct {
	ID        string
	Type      PieceType
	Owner     Player
	Direction Direction // pawns only
}

// Heading returns the pawn's travel direction, falling back to the owner's default.
func (p Piece) Heading() Direction {
	if p.Direction == NoDirection {
		return DefaultDirection(p.Owner)
	}
	return p.Direction
}

// Coords converts a board index to (col, row).
func Coords(index int) (int, int) {
	return index % GridSize, index / GridSize
}

// Index converts (col, row) to a board index.
// Returns false if the coordinate is off the board.
func Index(col, row int) (int, bool) {
	if col < 0 || col >= GridSize || row < 0 || row >= GridSize {
		return -1, false
	}
	return row*GridSize + col, true
}

// InBounds returns true if index addresses a board square.
func InBounds(index int) bool {
	return index >= 0 && index < CellCount
}

// Board is the 4x4 grid in row-major order. A nil cell is empty.
// Pieces on a board are never modified in place.
type Board [CellCount]*Piece

// At returns the piece at index, or nil.
func (b *Board) At(index int) *Piece {
	return b[index]
}

// Empty returns true if nothing occupies index.
func (b *Board) Empty(index int) bool {
	return b[index] == nil
}

// CountOwned returns the number of pieces player has on the board.
func (b *Board) CountOwned(p Player) int {
	n := 0
	for _, pc := range b {
		if pc != nil && pc.Owner == p {
			n++
		}
	}
	return n
}

// Find returns the index of the piece with id, or -1.
func (b *Board) Find(id string) int {
	for i, pc := range b {
		if pc != nil && pc.ID == id {
			return i
		}
	}
	return -1
}

// Serialize returns the canonical string form of the board used for
// repetition counting. Equal boards always produce equal strings.
func (b *Board) Serialize() string {
	var sb strings.Builder
	for i, pc := range b {
		if i > 0 {
			sb.WriteByte('|')
		}
		if pc == nil {
			sb.WriteByte('x')
			continue
		}
		sb.WriteString(pc.Owner.String())
		sb.WriteByte('-')
		sb.WriteString(pc.ID)
	}
	return sb.String()
}

// Hand is a player's reserve of off-board pieces.
type Hand []Piece

// Find returns the position of the piece with id, or -1.
func (h Hand) Find(id string) int {
	for i, pc := range h {
		if pc.ID == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of the hand with the piece at i removed.
func (h Hand) Without(i int) Hand {
	out := make(Hand, 0, len(h)-1)
	out = append(out, h[:i]...)
	return append(out, h[i+1:]...)
}

// With returns a copy of the hand with pc appended.
func (h Hand) With(pc Piece) Hand {
	out := make(Hand, 0, len(h)+1)
	out = append(out, h...)
	return append(out, pc)
}

// Winner is the result of a game.
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerPlayer1
	WinnerPlayer2
	WinnerDraw
)

// WinnerOf maps a player to the matching winner value.
func WinnerOf(p Player) Winner {
	switch p {
	case Player1:
		return WinnerPlayer1
	case Player2:
		return WinnerPlayer2
	}
	return WinnerNone
}

// Player returns the winning player, or NoPlayer for none and draw.
func (w Winner) Player() Player {
	switch w {
	case WinnerPlayer1:
		return Player1
	case WinnerPlayer2:
		return Player2
	}
	return NoPlayer
}

func (w Winner) String() string {
	switch w {
	case WinnerPlayer1:
		return "p1"
	case WinnerPlayer2:
		return "p2"
	case WinnerDraw:
		return "draw"
	}
	return "none"
}

// GameState is one turn snapshot. Transitions produce a new GameState;
// a published snapshot is never mutated.
type GameState struct {
	Board   Board
	Hands   [2]Hand // indexed by player, see Hand
	Turn    Player
	Winner  Winner
	History []string // board serializations, one per resolved action
}

// NewGameState creates the state a game starts from: an empty board,
// a full hand for each player and player 1 to move.
func NewGameState() *GameState {
	return &GameState{
		Hands: [2]Hand{
			startingHand(Player1),
			startingHand(Player2),
		},
		Turn:    Player1,
		Winner:  WinnerNone,
		History: []string{},
	}
}

func startingHand(p Player) Hand {
	hand := make(Hand, 0, PiecesPerPlayer)
	for _, t := range PieceTypes {
		pc := Piece{
			ID:    p.String() + "-" + t.String(),
			Type:  t,
			Owner: p,
		}
		if t == Pawn {
			pc.Direction = DefaultDirection(p)
		}
		hand = append(hand, pc)
	}
	return hand
}

// Hand returns the reserve of player p.
func (s *GameState) Hand(p Player) Hand {
	switch p {
	case Player1:
		return s.Hands[0]
	case Player2:
		return s.Hands[1]
	}
	return nil
}

// SetHand replaces the reserve of player p. Only used while building a new state.
func (s *GameState) SetHand(p Player, h Hand) {
	switch p {
	case Player1:
		s.Hands[0] = h
	case Player2:
		s.Hands[1] = h
	}
}

// Finished returns true once the game has a winner or is drawn.
func (s *GameState) Finished() bool {
	return s.Winner != WinnerNone
}

// CountOnBoard returns the number of pieces p has on the board.
func (s *GameState) CountOnBoard(p Player) int {
	return s.Board.CountOwned(p)
}

// Clone returns a deep copy. Pieces on the board are shared since they
// are never modified in place.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		Board:   s.Board,
		Turn:    s.Turn,
		Winner:  s.Winner,
		History: slices.Clone(s.History),
	}
	for i, h := range s.Hands {
		c.Hands[i] = slices.Clone(h)
	}
	return c
}
