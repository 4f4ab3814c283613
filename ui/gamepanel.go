package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"chessttt-local/engine"
	"chessttt-local/engine/rules"
	"chessttt-local/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box     *tview.TextView
	state   *types.GameState
	history []engine.MoveEntry
	session string
	names   func(types.Player) string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(names func(types.Player) string) *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		names: names,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// Update redraws the panel for the given state and move list.
func (p *GameInfoPanel) Update(state *types.GameState, history []engine.MoveEntry, session string) {
	p.state = state
	p.history = history
	p.session = session
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	if p.state == nil {
		p.box.SetText("")
		return
	}

	var text strings.Builder

	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	for _, pl := range []types.Player{types.Player1, types.Player2} {
		fmt.Fprintf(&text, "[white]%s:[-:-:-] %s (%d/%d)\n",
			pl, p.names(pl), p.state.CountOnBoard(pl), rules.PlacementThreshold)
	}
	fmt.Fprintf(&text, "[white]Move:[-:-:-] %d\n", len(p.state.History)+1)
	if n := rules.RepetitionCount(p.state.History); n > 1 {
		fmt.Fprintf(&text, "[white]Repeats:[-:-:-] %d/%d\n", n, rules.RepetitionLimit)
	}
	if p.session != "" {
		fmt.Fprintf(&text, "[dimgray]%.8s[-]\n", p.session)
	}

	if len(p.history) > 0 {
		text.WriteString("\n[white::b]Moves[-:-:-]\n")
		text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

		// Show the last moves that fit
		maxVisible := 12
		start := 0
		if len(p.history) > maxVisible {
			start = len(p.history) - maxVisible
		}
		for i := start; i < len(p.history); i++ {
			m := p.history[i]
			marker := " "
			if i == len(p.history)-1 {
				marker = "[white]>[-]"
			}
			side := "[white]1[-]"
			if m.Player == types.Player2 {
				side = "[dimgray]2[-]"
			}
			fmt.Fprintf(&text, "%s[dimgray]%3d.[-] %s %s\n", marker, m.Number, side, m.Notation)
		}
		if start > 0 {
			fmt.Fprintf(&text, "[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text.String())
}

// CreateGameLayout creates the main game layout: hands, board and info panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel(board.playerName)
	board.infoPanel = infoPanel

	hands := tview.NewFlex().SetDirection(tview.FlexRow)
	for _, h := range board.Hands() {
		hands.AddItem(h, types.PiecesPerPlayer+2, 0, false)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(hands, 16, 0, false)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}
