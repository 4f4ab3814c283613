package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessttt-local/config"
	"chessttt-local/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()
	onError   func(error)

	selectedSquares int // index into squarePalettes
	selectedPieces  int // index into piecePalettes
	editingPieces   bool
}

// Square pairs, light then dark.
var squarePalettes = []struct {
	light, dark int
	name        string
}{
	{252, 244, "Stone"},
	{230, 180, "Maple"},
	{223, 137, "Walnut"},
	{194, 108, "Tournament"},
	{153, 67, "Ice"},
	{224, 174, "Coral"},
	{250, 240, "Slate"},
}

// Player 1 and player 2 piece colors.
var piecePalettes = []struct {
	p1, p2 int
	name   string
}{
	{35, 204, "Green / Pink"},
	{255, 16, "White / Black"},
	{33, 160, "Blue / Red"},
	{226, 93, "Yellow / Purple"},
	{51, 208, "Cyan / Orange"},
}

// NewColorConfig creates a new color configuration screen. Confirming a
// choice saves the config; onError receives save failures.
func NewColorConfig(cfg *config.Config, onDone func(), onError func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:     cfg,
		onDone:  onDone,
		onError: onError,
	}
	for i, p := range squarePalettes {
		if p.light == cfg.Theme.Colors.BoardLight && p.dark == cfg.Theme.Colors.BoardDark {
			cc.selectedSquares = i
		}
	}
	for i, p := range piecePalettes {
		if p.p1 == cfg.Theme.Colors.Player1 && p.p2 == cfg.Theme.Colors.Player2 {
			cc.selectedPieces = i
		}
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingPieces {
			cc.selectedPieces = index
		} else {
			cc.selectedSquares = index
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.apply()
		if err := cc.cfg.Save(); err != nil && cc.onError != nil {
			cc.onError(fmt.Errorf("failed to save config: %w", err))
			return
		}
		if cc.editingPieces {
			cc.ToggleMode()
			return
		}
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// apply copies the highlighted palettes into the config.
func (cc *ColorConfigUI) apply() {
	sq := squarePalettes[cc.selectedSquares]
	pc := piecePalettes[cc.selectedPieces]
	cc.cfg.Theme.Colors.BoardLight = sq.light
	cc.cfg.Theme.Colors.BoardDark = sq.dark
	cc.cfg.Theme.Colors.Player1 = pc.p1
	cc.cfg.Theme.Colors.Player2 = pc.p2
}

func (cc *ColorConfigUI) populateColorList() {
	// Adding the first item fires the changed func with index 0.
	squares, pieces := cc.selectedSquares, cc.selectedPieces
	defer func() {
		cc.selectedSquares, cc.selectedPieces = squares, pieces
		if cc.editingPieces {
			cc.colorList.SetCurrentItem(pieces)
		} else {
			cc.colorList.SetCurrentItem(squares)
		}
	}()
	cc.colorList.Clear()

	if cc.editingPieces {
		cc.colorList.SetTitle(" Piece Colors (Tab: squares) ")
		for i, p := range piecePalettes {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]██[#%06x]██[-] %s",
				tcell.PaletteColor(p.p1).Hex(), tcell.PaletteColor(p.p2).Hex(), p.name),
				"", rune('a'+i), nil)
		}
		return
	}
	cc.colorList.SetTitle(" Square Colors (Tab: pieces) ")
	for i, p := range squarePalettes {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]██[#%06x]██[-] %s",
			tcell.PaletteColor(p.light).Hex(), tcell.PaletteColor(p.dark).Hex(), p.name),
			"", rune('a'+i), nil)
	}
}

// previewPieces is a sample position shown in the preview.
var previewPieces = map[int]types.Piece{
	1:  {Type: types.Rook, Owner: types.Player2},
	6:  {Type: types.Knight, Owner: types.Player1},
	9:  {Type: types.Bishop, Owner: types.Player2},
	14: {Type: types.Pawn, Owner: types.Player1},
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < types.GridSize*cellWidth+4 || height < types.GridSize*cellHeight+3 {
		return x, y, width, height
	}
	sq := squarePalettes[cc.selectedSquares]
	pc := piecePalettes[cc.selectedPieces]
	symbols := cc.cfg.Symbols()

	startX := x + 2
	startY := y + 1
	for i := 0; i < types.CellCount; i++ {
		col, row := types.Coords(i)
		bg := tcell.PaletteColor(sq.light)
		if (col+row)%2 == 1 {
			bg = tcell.PaletteColor(sq.dark)
		}
		style := tcell.StyleDefault.Background(bg)
		r := ' '
		if p, ok := previewPieces[i]; ok {
			fg := tcell.PaletteColor(pc.p1)
			if p.Owner == types.Player2 {
				fg = tcell.PaletteColor(pc.p2)
			}
			style = style.Foreground(fg).Bold(true)
			r = pieceRune(symbols, p.Type)
		}
		drawCell(screen, style, r, col, row, startX, startY)
	}

	info := fmt.Sprintf("Squares: %s  Pieces: %s", sq.name, pc.name)
	drawText(screen, startX, startY+types.GridSize*cellHeight+1, x+width-1, info, tcell.StyleDefault)

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between square and piece color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingPieces = !cc.editingPieces
	cc.populateColorList()
}
