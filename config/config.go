package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

var (
	cfgFile = "chessttt-local/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardLight    int `json:"board_light"`
	BoardDark     int `json:"board_dark"`
	Player1       int `json:"player1"`
	Player2       int `json:"player2"`
	CursorBG      int `json:"cursor_bg"`
	SelectedBG    int `json:"selected_bg"`
	ValidMoveBG   int `json:"valid_move_bg"`
	LastPlayedBG  int `json:"last_played_bg"`
	CoordinatesFG int `json:"coordinates_fg"`
}

// PieceSymbols are the runes drawn for each piece type.
type PieceSymbols struct {
	Pawn   rune `json:"pawn"`
	Rook   rune `json:"rook"`
	Knight rune `json:"knight"`
	Bishop rune `json:"bishop"`
}

type Theme struct {
	PieceSet          string       `json:"piece_set"`
	ShowValidMoves    bool         `json:"show_valid_moves"`
	DrawLastPlayedBG  bool         `json:"draw_last_played_bg"`
	ShowCoordinates   bool         `json:"show_coordinates"`
	Colors            ConfigColors `json:"colors"`
	EmptySquareSymbol rune         `json:"empty_square"`
}

// PlayersConfig holds the display names of both sides.
type PlayersConfig struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so
// logs always go to a file.
type LogConfig struct {
	Level string `json:"level"`
	Path  string `json:"path"` // empty uses the XDG state directory
}

type Config struct {
	Theme   Theme         `json:"theme"`
	Players PlayersConfig `json:"players"`
	Log     LogConfig     `json:"log"`
}

// InitConfig loads the config file if one exists, applies environment
// overrides and validates the result.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(env)
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Symbols returns the symbol table of the configured piece set.
func (c *Config) Symbols() PieceSymbols {
	if s, ok := PieceSets[c.Theme.PieceSet]; ok {
		return s
	}
	return PieceSets[DefaultPieceSet]
}

func (c *Config) Validate() error {
	set, ok := PieceSets[c.Theme.PieceSet]
	if !ok {
		return &InvalidConfig{fmt.Sprintf("unknown piece set %q", c.Theme.PieceSet)}
	}
	for _, r := range []rune{set.Pawn, set.Rook, set.Knight, set.Bishop, c.Theme.EmptySquareSymbol} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Players.Player1 == "" || c.Players.Player2 == "" {
		return &InvalidConfig{"player names must not be empty"}
	}
	if c.Players.Player1 == c.Players.Player2 {
		return &InvalidConfig{"player names must differ"}
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("log level: %s", err)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
