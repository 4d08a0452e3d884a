// Package logger configures the process-wide logrus logger and provides the
// gin request logging middleware.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Config struct {
	Level  string // panic, fatal, error, warn, info, debug, trace
	Format string // text or json

	// File enables rotating file output next to stdout. Empty means stdout only.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Setup applies cfg to the standard logrus logger. An unknown level falls back
// to info. The returned closer flushes the log file, if any.
func Setup(cfg Config) (io.Closer, error) {
	return configure(log.StandardLogger(), cfg, os.Stdout)
}

func configure(logger *log.Logger, cfg Config, stdout io.Writer) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&log.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: log.FieldMap{
				log.FieldKeyTime: "timestamp",
				log.FieldKeyMsg:  "message",
			},
		})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}

	if cfg.File == "" {
		logger.SetOutput(stdout)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	logger.SetOutput(io.MultiWriter(stdout, fileWriter))
	return fileWriter, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
