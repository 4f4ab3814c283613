package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessttt-local/config"
	"chessttt-local/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onTheme  func()

	player1 string
	player2 string
}

// NewGameSetup creates a new game setup form. Piece set changes are
// written to cfg directly.
func NewGameSetup(cfg *config.Config, onStart func(engine.GameConfig), onCancel func(), onTheme func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onTheme:  onTheme,
		player1:  cfg.Players.Player1,
		player2:  cfg.Players.Player2,
	}

	sets := make([]string, 0, len(config.PieceSets))
	for name := range config.PieceSets {
		sets = append(sets, name)
	}
	sort.Strings(sets)
	current := slices.Index(sets, cfg.Theme.PieceSet)
	if current < 0 {
		current = 0
	}

	form := tview.NewForm()

	form.AddInputField("Player 1", setup.player1, 20, nil, func(text string) {
		setup.player1 = strings.TrimSpace(text)
	})
	form.AddInputField("Player 2", setup.player2, 20, nil, func(text string) {
		setup.player2 = strings.TrimSpace(text)
	})

	form.AddDropDown("Piece Set", sets, current, func(option string, index int) {
		cfg.Theme.PieceSet = option
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig())
	})

	form.AddButton("Board Colors", func() {
		if onTheme != nil {
			onTheme()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the names entered in the form. Blank or identical
// names fall back to the defaults.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	cfg := engine.DefaultConfig()
	if s.player1 != "" {
		cfg.Player1Name = s.player1
	}
	if s.player2 != "" && s.player2 != cfg.Player1Name {
		cfg.Player2Name = s.player2
	}
	if cfg.Player1Name == cfg.Player2Name {
		cfg.Player2Name = engine.DefaultConfig().Player2Name + " (2)"
	}
	return cfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
