// Package ui specifies custom controls for tview to play chessttt in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessttt-local/config"
	"chessttt-local/engine"
	"chessttt-local/engine/rules"
	"chessttt-local/types"
)

const (
	cellWidth  = 5
	cellHeight = 2
	// left margin for rank labels
	boardLeft = 3
)

// Style slots, indexed into BoardUI.styles.
const (
	styleBoardLight = iota
	styleBoardDark
	stylePlayer1
	stylePlayer2
	styleCursorBG
	styleSelectedBG
	styleValidMoveBG
	styleLastPlayedBG
	styleCoordinatesFG
)

type BoardUI struct {
	Box       *tview.Box
	State     *types.GameState
	Selection engine.Selection
	hint      *tview.TextView
	cfg       *config.Config
	cursorX   int
	cursorY   int
	lastMove  int
	message   string
	app       *tview.Application
	eng       engine.GameEngine
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	hands     [2]*HandPanel
	history   []engine.MoveEntry
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:       tview.NewBox(),
		State:     types.NewGameState(),
		Selection: engine.NoSelection(),
		hint:      hint,
		app:       app,
		cursorX:   -1,
		cursorY:   -1,
		lastMove:  -1,
	}
	board.hands = [2]*HandPanel{
		NewHandPanel(types.Player1),
		NewHandPanel(types.Player2),
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

// Cursor returns the board index under the cursor, or -1.
func (b *BoardUI) Cursor() int {
	if b.cursorX < 0 || b.cursorY < 0 {
		return -1
	}
	i, _ := types.Index(b.cursorX, b.cursorY)
	return i
}

func (b *BoardUI) MoveCursor(h, v int) {
	if b.State.Finished() {
		b.ResetCursor()
		return
	}
	if b.Cursor() < 0 {
		if b.lastMove >= 0 {
			b.cursorX, b.cursorY = types.Coords(b.lastMove)
		} else {
			b.cursorX, b.cursorY = 1, 2
		}
		return
	}
	if _, ok := types.Index(b.cursorX+h, b.cursorY+v); !ok {
		return
	}
	b.cursorX += h
	b.cursorY += v
}

func (b *BoardUI) ResetCursor() {
	b.cursorX = -1
	b.cursorY = -1
}

// ConnectEngine starts a game on e and follows its updates.
func (b *BoardUI) ConnectEngine(e engine.GameEngine) error {
	b.eng = e
	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(entry engine.MoveEntry, state *types.GameState) {
		b.lastMove = entry.Action.To
		b.State = state
		b.message = ""
		// Spawn goroutine to avoid deadlock when called from the event loop
		go func() {
			b.app.QueueUpdateDraw(b.sync)
		}()
	})

	e.OnGameEnd(func(winner types.Winner) {
		go func() {
			b.app.QueueUpdateDraw(func() {
				b.ResetCursor()
				b.sync()
			})
		}()
	})

	b.lastMove = -1
	b.history = nil
	b.message = ""
	b.sync()
	return nil
}

// sync pulls the engine's state and selection into the widgets.
func (b *BoardUI) sync() {
	if b.eng == nil {
		return
	}
	b.State = b.eng.GetState()
	b.Selection = b.eng.Selection()
	b.history = b.eng.History()
	b.refreshHint()
}

// Activate clicks the square under the cursor.
func (b *BoardUI) Activate() {
	i := b.Cursor()
	if b.eng == nil || i < 0 || b.State.Finished() {
		return
	}
	b.report(b.eng.SelectSquare(i))
}

// SelectHandSlot selects the n-th piece (1-based) of the mover's hand.
func (b *BoardUI) SelectHandSlot(n int) {
	if b.eng == nil || b.State.Finished() {
		return
	}
	hand := b.State.Hand(b.State.Turn)
	if n < 1 || n > len(hand) {
		b.message = fmt.Sprintf("no piece in slot %d", n)
		b.refreshHint()
		return
	}
	b.report(b.eng.SelectHandPiece(hand[n-1].ID))
	if b.Cursor() < 0 {
		b.MoveCursor(0, 0)
	}
}

// Cancel drops the selection. Returns false if nothing was selected.
func (b *BoardUI) Cancel() bool {
	if b.eng == nil || b.Selection.Empty() {
		return false
	}
	b.eng.ClearSelection()
	b.message = ""
	b.sync()
	return true
}

// Rematch starts a new game against the same engine.
func (b *BoardUI) Rematch() error {
	if b.eng == nil {
		return nil
	}
	b.ResetCursor()
	return b.ConnectEngine(b.eng)
}

// Close ends the session.
func (b *BoardUI) Close() {
	if b.eng == nil {
		return
	}
	b.eng.Close()
}

func (b *BoardUI) report(err error) {
	switch {
	case err == nil:
		b.message = ""
	case errors.Is(err, rules.ErrPlacementPhase):
		b.message = "place all three pieces first"
	case errors.Is(err, rules.ErrInvalidAction):
		b.message = err.Error()
	default:
		b.message = "error: " + err.Error()
	}
	b.sync()
}

func (b *BoardUI) SetConfig(c *config.Config) {
	col := c.Theme.Colors
	b.styles = []tcell.Color{
		tcell.PaletteColor(col.BoardLight),
		tcell.PaletteColor(col.BoardDark),
		tcell.PaletteColor(col.Player1),
		tcell.PaletteColor(col.Player2),
		tcell.PaletteColor(col.CursorBG),
		tcell.PaletteColor(col.SelectedBG),
		tcell.PaletteColor(col.ValidMoveBG),
		tcell.PaletteColor(col.LastPlayedBG),
		tcell.PaletteColor(col.CoordinatesFG),
	}
	b.cfg = c
	for _, h := range b.hands {
		h.SetTheme(c.Symbols(), b.styles[stylePlayer1], b.styles[stylePlayer2], b.styles[styleSelectedBG])
	}
}

// Hands returns the hand panels of both players.
func (b *BoardUI) Hands() [2]*HandPanel {
	return b.hands
}

func (b *BoardUI) playerName(p types.Player) string {
	if b.eng != nil {
		return b.eng.PlayerName(p)
	}
	return p.String()
}

func (b *BoardUI) refreshHint() {
	for _, h := range b.hands {
		h.Update(b.State, b.Selection.HandPieceID)
	}
	if b.infoPanel != nil {
		b.infoPanel.Update(b.State, b.history, b.sessionID())
	}

	var statusLine, controlsLine string
	if b.State.Finished() {
		switch b.State.Winner {
		case types.WinnerDraw:
			statusLine = "  Draw by repetition"
		default:
			statusLine = fmt.Sprintf("  %s wins", b.playerName(b.State.Winner.Player()))
		}
		controlsLine = "\n  n · rematch   q · return to menu"
	} else {
		phase := "move"
		if rules.InPlacementPhase(&b.State.Board, b.State.Turn) {
			phase = "place"
		}
		statusLine = fmt.Sprintf("  %s to %s", b.playerName(b.State.Turn), phase)
		if b.message != "" {
			statusLine += "  · " + b.message
		}
		controlsLine = "\n  hjkl/↑↓←→ move   ⏎ select   1-4 hand   esc clear   q quit"
	}
	b.hint.SetText(statusLine + controlsLine)
}

func (b *BoardUI) sessionID() string {
	if b.eng == nil {
		return ""
	}
	return b.eng.SessionID()
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if b.State == nil {
		return x, y, 1, 1
	}
	symbols := b.cfg.Symbols()
	cursor := b.Cursor()

	for i := 0; i < types.CellCount; i++ {
		col, row := types.Coords(i)
		bg := b.styles[styleBoardLight]
		if (col+row)%2 == 1 {
			bg = b.styles[styleBoardDark]
		}
		switch {
		case i == cursor:
			bg = b.styles[styleCursorBG]
		case i == b.Selection.Square:
			bg = b.styles[styleSelectedBG]
		case b.cfg.Theme.ShowValidMoves && b.Selection.Allows(i):
			bg = b.styles[styleValidMoveBG]
		case b.cfg.Theme.DrawLastPlayedBG && i == b.lastMove:
			bg = b.styles[styleLastPlayedBG]
		}

		r := b.cfg.Theme.EmptySquareSymbol
		style := tcell.StyleDefault.Background(bg)
		if pc := b.State.Board.At(i); pc != nil {
			r = pieceRune(symbols, pc.Type)
			fg := b.styles[stylePlayer1]
			if pc.Owner == types.Player2 {
				fg = b.styles[stylePlayer2]
			}
			style = style.Foreground(fg).Bold(true)
		}
		drawCell(screen, style, r, col, row, x+boardLeft, y)
	}
	if b.cfg.Theme.ShowCoordinates {
		b.drawCoordinates(screen, x, y)
	}
	return x, y, types.GridSize*cellWidth + boardLeft, types.GridSize*cellHeight + 1
}

func pieceRune(s config.PieceSymbols, t types.PieceType) rune {
	switch t {
	case types.Rook:
		return s.Rook
	case types.Knight:
		return s.Knight
	case types.Bishop:
		return s.Bishop
	}
	return s.Pawn
}

// drawCell fills one square and puts r in its middle.
func drawCell(s tcell.Screen, c tcell.Style, r rune, col, row, l, t int) {
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			s.SetContent(l+col*cellWidth+dx, t+row*cellHeight+dy, ' ', nil, c)
		}
	}
	s.SetContent(l+col*cellWidth+cellWidth/2, t+row*cellHeight+cellHeight/2, r, nil, c)
}

func (b *BoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	style := tcell.StyleDefault.Foreground(b.styles[styleCoordinatesFG])
	highlight := style.Background(b.styles[styleCursorBG])

	for col := 0; col < types.GridSize; col++ {
		_style := style
		if col == b.cursorX {
			_style = highlight
		}
		s.SetContent(x+boardLeft+col*cellWidth+cellWidth/2, y+types.GridSize*cellHeight, rune('a'+col), nil, _style)
	}
	for row := 0; row < types.GridSize; row++ {
		_style := style
		if row == b.cursorY {
			_style = highlight
		}
		// rank 4 is the top row
		s.SetContent(x+1, y+row*cellHeight+cellHeight/2, rune('0'+types.GridSize-row), nil, _style)
	}
}
