package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig
	require.NoError(t, c.Validate())
	assert.Equal(t, PieceSets["classic"], c.Symbols())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown piece set", func(c *Config) { c.Theme.PieceSet = "wooden" }},
		{"control character", func(c *Config) { c.Theme.EmptySquareSymbol = '\t' }},
		{"empty player name", func(c *Config) { c.Players.Player2 = "" }},
		{"same player names", func(c *Config) { c.Players.Player2 = c.Players.Player1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.modify(&c)
			err := c.Validate()
			var invalid *InvalidConfig
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestSymbolsFallBackToDefault(t *testing.T) {
	c := DefaultConfig
	c.Theme.PieceSet = "missing"
	assert.Equal(t, PieceSets[DefaultPieceSet], c.Symbols())
	c.Theme.PieceSet = "retro"
	assert.Equal(t, 'N', c.Symbols().Knight)
}

func TestSaveAndReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig
	c.Players.Player1 = "Ada"
	c.Theme.PieceSet = "geometric"
	require.NoError(t, saveCfgFile(path, &c, 0644))

	loaded := DefaultConfig
	require.NoError(t, readCfgFile(path, &loaded))
	assert.Equal(t, c, loaded)
}

func TestReadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	c := DefaultConfig
	// A missing file keeps the defaults.
	require.NoError(t, readCfgFile(filepath.Join(dir, "missing.json"), &c))
	assert.Equal(t, DefaultConfig, c)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	var invalid *InvalidConfig
	require.ErrorAs(t, readCfgFile(bad, &c), &invalid)
}

func TestLoadEnvMergesDotenvAndProcess(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("CHESSTTT_PLAYER1=Ada\nCHESSTTT_PIECE_SET=retro\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("CHESSTTT_PLAYER1=Ignored\nCHESSTTT_LOG_LEVEL=debug\n"), 0644))
	t.Setenv(EnvPieceSet, "geometric")

	env, err := LoadEnv(first, second, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "Ada", env[EnvPlayer1])
	assert.Equal(t, "debug", env[EnvLogLevel])
	assert.Equal(t, "geometric", env[EnvPieceSet])
}

func TestApplyEnv(t *testing.T) {
	c := DefaultConfig
	c.ApplyEnv(map[string]string{
		EnvPlayer1:  "Ada",
		EnvPlayer2:  "  ",
		EnvPieceSet: "retro",
		EnvLogLevel: "debug",
		EnvLogPath:  "/tmp/x.log",
	})
	assert.Equal(t, "Ada", c.Players.Player1)
	assert.Equal(t, DefaultConfig.Players.Player2, c.Players.Player2)
	assert.Equal(t, "retro", c.Theme.PieceSet)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "/tmp/x.log", c.Log.Path)
	require.NoError(t, c.Validate())
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, closer, err := NewLogger(LogConfig{Level: "debug", Path: path})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("session", "abc").Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "session=abc")

	_, _, err = NewLogger(LogConfig{Level: "loud", Path: path})
	var invalid *InvalidConfig
	require.ErrorAs(t, err, &invalid)
}
