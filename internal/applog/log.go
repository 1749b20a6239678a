// Package applog is a small leveled wrapper over the standard log package,
// used only by the reference CLI (cmd/catsim). The engine packages
// themselves never log: per spec §5 they are pure, synchronous, CPU-only
// calls with no suspension points, so there is nothing for them to report
// that the caller doesn't already see in the returned SessionState.
package applog

import (
	"log"
	"os"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger provides leveled logging. Construct one explicitly at startup and
// pass it by reference; there is no package-level default instance.
type Logger struct {
	level Level
}

// New creates a Logger at the given level.
func New(level Level) *Logger {
	return &Logger{level: level}
}

// FromEnv builds a Logger from the LOG_LEVEL environment variable,
// defaulting to Info.
func FromEnv() *Logger {
	level := LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		level = LevelError
	case "WARN":
		level = LevelWarn
	case "DEBUG":
		level = LevelDebug
	}
	return &Logger{level: level}
}

func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LevelError {
		log.Printf("[ERROR] "+format, args...)
	}
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LevelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}
