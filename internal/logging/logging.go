package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	// DebugLevel for debug messages
	DebugLevel LogLevel = "debug"
	// InfoLevel for informational messages
	InfoLevel LogLevel = "info"
	// WarnLevel for warning messages
	WarnLevel LogLevel = "warn"
	// ErrorLevel for error messages
	ErrorLevel LogLevel = "error"
)

var zerologLevels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
}

// Format represents the output format for logs
type Format string

const (
	// JSONFormat outputs logs as JSON
	JSONFormat Format = "json"
	// HumanFormat outputs logs in human-readable format
	HumanFormat Format = "human"
)

// Config holds logger configuration
type Config struct {
	Format Format
	Level  LogLevel
	Output io.Writer // Optional, defaults to stderr

	// File, when set, receives a JSON copy of every entry. The file is
	// rotated once it grows past MaxSizeMB.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Logger provides structured logging
type Logger struct {
	config Config
	writer io.Writer
	zl     zerolog.Logger
	file   *lumberjack.Logger
}

// ParseLevel converts a string to a LogLevel.
// Returns InfoLevel for unrecognized strings.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// ParseFormat converts a string to a Format.
// Returns HumanFormat for unrecognized strings.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(JSONFormat)) {
		return JSONFormat
	}
	return HumanFormat
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) *Logger {
	writer := config.Output
	if writer == nil {
		writer = os.Stderr
	}

	var out io.Writer = writer
	if config.Format != JSONFormat {
		out = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    true,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				return fmt.Sprintf("[%v]", i)
			},
		}
	}

	l := &Logger{
		config: config,
		writer: writer,
	}

	if config.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
		}
		out = zerolog.MultiLevelWriter(out, l.file)
	}

	level, ok := zerologLevels[config.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	l.zl = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return l
}

// NewNop returns a logger that drops everything
func NewNop() *Logger {
	return &Logger{
		config: Config{Level: ErrorLevel},
		writer: io.Discard,
		zl:     zerolog.Nop(),
	}
}

func (l *Logger) log(level LogLevel, message string, fields map[string]interface{}) {
	zlevel, ok := zerologLevels[level]
	if !ok {
		zlevel = zerolog.InfoLevel
	}
	ev := l.zl.WithLevel(zlevel)
	if len(fields) > 0 {
		ev = ev.Fields(fields)
	}
	ev.Msg(message)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields map[string]interface{}) {
	l.log(DebugLevel, message, fields)
}

// Info logs an info message
func (l *Logger) Info(message string, fields map[string]interface{}) {
	l.log(InfoLevel, message, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields map[string]interface{}) {
	l.log(WarnLevel, message, fields)
}

// Error logs an error message
func (l *Logger) Error(message string, fields map[string]interface{}) {
	l.log(ErrorLevel, message, fields)
}

// Close flushes and closes the rotated log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
