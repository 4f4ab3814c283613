// chessttt-local is a terminal application for two players to play 4x4
// hand chess on one keyboard.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"chessttt-local/config"
	"chessttt-local/engine"
	"chessttt-local/engine/local"
	"chessttt-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlayer1    = flag.String("p1", "", "Name of player 1")
	flagPlayer2    = flag.String("p2", "", "Name of player 2")
	flagPieceSet   = flag.String("pieceset", "", "Piece symbols (classic, geometric or retro)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagLogLevel   = flag.String("log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *logrus.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("chessttt-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var logFile io.Closer
	logger, logFile, err = config.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	logger.WithField("version", Version).Info("starting")

	quickStart := *flagQuickStart || *flagPlayer1 != "" || *flagPlayer2 != ""

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ♞ chessttt ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			gameBoard.Cancel()
			return nil
		case tcell.KeyUp:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyEnter:
			gameBoard.Activate()
		case tcell.KeyRune:
			switch r := event.Rune(); r {
			case 'q':
				if !gameBoard.Cancel() {
					gameBoard.Close()
					rootPage.SwitchToPage("setup")
				}
				return nil
			case 'h':
				gameBoard.MoveCursor(-1, 0)
			case 'j':
				gameBoard.MoveCursor(0, 1)
			case 'k':
				gameBoard.MoveCursor(0, -1)
			case 'l':
				gameBoard.MoveCursor(1, 0)
			case 'n':
				if gameBoard.State.Finished() {
					if err := gameBoard.Rematch(); err != nil {
						showError("Failed to start rematch", err)
					}
				}
			case '1', '2', '3', '4':
				gameBoard.SelectHandSlot(int(r - '0'))
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(cfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg,
		func() {
			gameBoard.SetConfig(cfg)
			rootPage.SwitchToPage("setup")
		},
		func(err error) {
			logger.WithError(err).Warn("config not saved")
			showError("Could not save colors", err)
		},
	)
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(setupUI.GameConfig())
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
	logger.Info("exiting")
}

// applyFlags overrides config values with command-line flags.
func applyFlags(c *config.Config) {
	if *flagPlayer1 != "" {
		c.Players.Player1 = *flagPlayer1
	}
	if *flagPlayer2 != "" {
		c.Players.Player2 = *flagPlayer2
	}
	if *flagPieceSet != "" {
		c.Theme.PieceSet = *flagPieceSet
	}
	if *flagLogLevel != "" {
		c.Log.Level = *flagLogLevel
	}
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.SetConfig(cfg)

	eng := local.NewLocalEngine(gameCfg, logger)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		showError("Failed to start game", err)
		return
	}
	rootPage.SwitchToPage("gameview")
}

func showError(title string, err error) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s:\n%s", title, err.Error())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
