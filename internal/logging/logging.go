// Package logging configures the application logger. The terminal belongs
// to the UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reels/internal/config"
)

const appName = "reels"

// Setup builds a logger from cfg. When logging is disabled the logger
// discards everything. The returned close function releases the log file.
func Setup(cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	dir := filepath.Join(xdg.StateHome, appName)
	return SetupIn(cfg, dir)
}

// SetupIn is Setup with an explicit log directory.
func SetupIn(cfg config.LogConfig, dir string) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	noop := func() error { return nil }

	if !cfg.Enabled {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		return log, noop, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, noop, fmt.Errorf("create log dir: %w", err)
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)

	if cfg.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log, f.Close, nil
}
