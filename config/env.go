package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvPlayer1  = "CHESSTTT_PLAYER1"
	EnvPlayer2  = "CHESSTTT_PLAYER2"
	EnvPieceSet = "CHESSTTT_PIECE_SET"
	EnvLogLevel = "CHESSTTT_LOG_LEVEL"
	EnvLogPath  = "CHESSTTT_LOG_PATH"
)

// LoadEnv returns the process environment merged over the given dotenv
// files (".env" when none are named). Missing files are skipped; variables
// already set in the process win over file values.
func LoadEnv(files ...string) (map[string]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	env := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &InvalidConfig{f + ": " + err.Error()}
		}
		for k, v := range vals {
			if _, set := env[k]; !set {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides config values from env. Empty values are ignored.
func (c *Config) ApplyEnv(env map[string]string) {
	set := func(key string, dst *string) {
		if v := strings.TrimSpace(env[key]); v != "" {
			*dst = v
		}
	}
	set(EnvPlayer1, &c.Players.Player1)
	set(EnvPlayer2, &c.Players.Player2)
	set(EnvPieceSet, &c.Theme.PieceSet)
	set(EnvLogLevel, &c.Log.Level)
	set(EnvLogPath, &c.Log.Path)
}
