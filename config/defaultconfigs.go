package config

// DefaultPieceSet is used when the config names no piece set.
const DefaultPieceSet = "classic"

var DefaultConfig Config
var DefaultTheme Theme

// PieceSets are the selectable symbol tables.
var PieceSets map[string]PieceSymbols

func init() {
	PieceSets = map[string]PieceSymbols{
		"classic": {
			Pawn:   '♟',
			Rook:   '♜',
			Knight: '♞',
			Bishop: '♝',
		},
		"geometric": {
			Pawn:   '▲',
			Rook:   '■',
			Knight: '◆',
			Bishop: '●',
		},
		"retro": {
			Pawn:   'P',
			Rook:   'R',
			Knight: 'N',
			Bishop: 'B',
		},
	}

	DefaultTheme = Theme{
		PieceSet:          DefaultPieceSet,
		ShowValidMoves:    true,
		DrawLastPlayedBG:  true,
		ShowCoordinates:   true,
		EmptySquareSymbol: ' ',
		Colors: ConfigColors{
			BoardLight:    252,
			BoardDark:     244,
			Player1:       35,
			Player2:       204,
			CursorBG:      109,
			SelectedBG:    179,
			ValidMoveBG:   108,
			LastPlayedBG:  60,
			CoordinatesFG: 245,
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Players: PlayersConfig{
			Player1: "Player 1",
			Player2: "Player 2",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
