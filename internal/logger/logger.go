// Package logger wraps logrus with the service's formatting and output
// conventions.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

// Log wraps logrus.Logger.
type Log struct {
	*logrus.Logger
}

// Config selects level, format ("json" or "text") and output. Output is
// "stdout", "stderr" or a file path rotated by lumberjack.
type Config struct {
	Level      string
	Format     string
	Output     string
	MaxSizeMB  int
	MaxAgeDays int
}

var global = &Log{Logger: logrus.New()}

// New builds a logger from cfg.
func New(cfg Config) (*Log, error) {
	l := &Log{Logger: logrus.New()}
	if err := l.Configure(cfg); err != nil {
		return nil, err
	}
	return l, nil
}

// Configure applies cfg to an existing logger.
func (l *Log) Configure(cfg Config) error {
	level := strings.ToLower(cfg.Level)
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level '%s'", cfg.Level)
	}
	l.SetLevel(lvl)

	switch cfg.Format {
	case "json", "":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return fmt.Errorf("invalid log format '%s'", cfg.Format)
	}

	l.SetOutput(output(cfg))
	return nil
}

func output(cfg Config) io.Writer {
	switch cfg.Output {
	case "stdout", "":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 100
	}
	return &lumberjack.Logger{
		Filename: cfg.Output,
		MaxSize:  maxSize,
		MaxAge:   cfg.MaxAgeDays,
		Compress: true,
	}
}

// WithComponent tags entries with the emitting component.
func (l *Log) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}

// SetGlobal replaces the process-wide logger.
func SetGlobal(l *Log) {
	if l != nil {
		global = l
	}
}

// Get returns the process-wide logger.
func Get() *Log {
	return global
}
