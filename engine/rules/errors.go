package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is wrapped by every rule rejection. A rejected action
// leaves the input state untouched, so the caller can simply retry.
var ErrInvalidAction = errors.New("invalid action")

var (
	ErrGameOver           = fmt.Errorf("%w: game is over", ErrInvalidAction)
	ErrPlacementPhase     = fmt.Errorf("%w: player must place pieces from hand", ErrInvalidAction)
	ErrNotInHand          = fmt.Errorf("%w: piece is not in the current player's hand", ErrInvalidAction)
	ErrSquareOccupied     = fmt.Errorf("%w: square is occupied", ErrInvalidAction)
	ErrEmptySquare        = fmt.Errorf("%w: no piece at source square", ErrInvalidAction)
	ErrNotYourPiece       = fmt.Errorf("%w: piece belongs to the opponent", ErrInvalidAction)
	ErrIllegalDestination = fmt.Errorf("%w: destination is not a legal move", ErrInvalidAction)
)

// ErrOutOfRange reports a board index outside 0..15. It is a caller bug
// rather than a player mistake and does not wrap ErrInvalidAction.
var ErrOutOfRange = errors.New("board index out of range")
