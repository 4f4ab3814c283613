package rules

import "chessttt-local/types"

// RepetitionLimit is the number of occurrences of the same board that ends
// the game in a draw.
const RepetitionLimit = 3

// WinningLines are scanned in order: rows, columns, then both diagonals.
var WinningLines = [10][types.GridSize]int{
	{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}, {12, 13, 14, 15},
	{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15},
	{0, 5, 10, 15}, {3, 6, 9, 12},
}

// CheckWinner returns the owner of the first line whose four squares are
// all occupied by that owner, or NoPlayer.
func CheckWinner(b *types.Board) types.Player {
	for _, line := range WinningLines {
		first := b.At(line[0])
		if first == nil {
			continue
		}
		complete := true
		for _, idx := range line[1:] {
			if pc := b.At(idx); pc == nil || pc.Owner != first.Owner {
				complete = false
				break
			}
		}
		if complete {
			return first.Owner
		}
	}
	return types.NoPlayer
}

// RepetitionCount returns how many times the newest entry of history
// occurs in the whole history, itself included.
func RepetitionCount(history []string) int {
	if len(history) == 0 {
		return 0
	}
	last := history[len(history)-1]
	n := 0
	for _, h := range history {
		if h == last {
			n++
		}
	}
	return n
}

// IsRepetitionDraw returns true when the newest board has occurred
// RepetitionLimit times or more.
func IsRepetitionDraw(history []string) bool {
	return RepetitionCount(history) >= RepetitionLimit
}

// outcomeOf decides the winner for a freshly resolved board. A completed
// line takes precedence over repetition.
func outcomeOf(b *types.Board, history []string) types.Winner {
	if p := CheckWinner(b); p != types.NoPlayer {
		return types.WinnerOf(p)
	}
	if IsRepetitionDraw(history) {
		return types.WinnerDraw
	}
	return types.WinnerNone
}
