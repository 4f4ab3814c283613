package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

var logFile = "chessttt-local/chessttt.log"

// NewLogger builds a logger writing to the configured log file. The
// returned closer releases the file.
func NewLogger(lc LogConfig) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, &InvalidConfig{fmt.Sprintf("log level: %s", err)}
	}

	path := lc.Path
	if path == "" {
		path, err = xdg.StateFile(logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})
	return logger, f, nil
}
