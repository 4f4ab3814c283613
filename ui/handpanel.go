package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessttt-local/config"
	"chessttt-local/types"
)

// HandPanel lists the off-board pieces of one player. The pieces of the
// side to move are numbered for selection with the digit keys.
type HandPanel struct {
	*tview.Box
	owner    types.Player
	pieces   types.Hand
	selected string
	active   bool
	symbols  config.PieceSymbols
	colors   [2]tcell.Color
	accent   tcell.Color
}

// NewHandPanel creates an empty hand panel for owner.
func NewHandPanel(owner types.Player) *HandPanel {
	h := &HandPanel{
		Box:   tview.NewBox(),
		owner: owner,
	}
	h.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		h.DrawHand(screen, x, y, width)
		return x, y, width, height
	})
	return h
}

// SetTheme sets the symbols and colors used to draw pieces.
func (h *HandPanel) SetTheme(symbols config.PieceSymbols, p1, p2, accent tcell.Color) {
	h.symbols = symbols
	h.colors = [2]tcell.Color{p1, p2}
	h.accent = accent
}

// Update copies the owner's hand out of s.
func (h *HandPanel) Update(s *types.GameState, selectedID string) {
	h.pieces = s.Hand(h.owner)
	h.active = !s.Finished() && s.Turn == h.owner
	h.selected = selectedID
}

// Pieces returns the pieces currently shown.
func (h *HandPanel) Pieces() types.Hand {
	return h.pieces
}

// DrawHand renders the hand at the given position.
// Returns the number of rows used.
func (h *HandPanel) DrawHand(screen tcell.Screen, x, y, width int) int {
	pieceColor := h.colors[0]
	if h.owner == types.Player2 {
		pieceColor = h.colors[1]
	}
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label)
	if h.active {
		labelStyle = labelStyle.Foreground(MenuColors.Selected).Bold(true)
	}
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint)
	pieceStyle := tcell.StyleDefault.Foreground(pieceColor)
	selectedStyle := pieceStyle.Background(h.accent)

	row := y
	col := x
	marker := ' '
	if h.active {
		marker = '▸'
	}
	screen.SetContent(col, row, marker, nil, labelStyle)
	col += 2
	col = drawText(screen, col, row, x+width, fmt.Sprintf("Hand %s", h.owner), labelStyle)
	row++

	if len(h.pieces) == 0 {
		drawText(screen, x+2, row, x+width, "(empty)", hintStyle)
		return row + 1 - y
	}
	for i, pc := range h.pieces {
		col = x + 2
		if h.active {
			screen.SetContent(col, row, rune('1'+i), nil, hintStyle)
		}
		col += 2
		style := pieceStyle
		if pc.ID == h.selected {
			style = selectedStyle
		}
		screen.SetContent(col, row, pieceRune(h.symbols, pc.Type), nil, style)
		col += 2
		drawText(screen, col, row, x+width, pc.Type.String(), hintStyle)
		row++
	}
	return row - y
}

// drawText writes text from col, clipped at limit. Returns the next column.
func drawText(screen tcell.Screen, col, row, limit int, text string, style tcell.Style) int {
	for _, ch := range text {
		if col >= limit {
			break
		}
		screen.SetContent(col, row, ch, nil, style)
		col++
	}
	return col
}
